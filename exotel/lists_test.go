package exotel

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manyNumbers(n int) []string {
	numbers := make([]string, 0, n)
	for i := 0; i < n; i++ {
		numbers = append(numbers, fmt.Sprintf("+9198%011d", i))
	}
	return numbers
}

func TestCreateListBatchesContactsAtProviderCeiling(t *testing.T) {
	fake := newFakeProvider(t)
	client := newTestClient(t, fake)

	resp, err := client.CreateList(context.Background(), CreateListParams{
		Name:    "big-list",
		Numbers: manyNumbers(6000),
	})
	require.NoError(t, err)

	contactCalls := fake.log.matching(http.MethodPost, "/v2/accounts/"+testSID+"/contacts")
	require.Len(t, contactCalls, 2)

	var first, second struct {
		Contacts []any `json:"contacts"`
	}
	contactCalls[0].jsonBody(t, &first)
	contactCalls[1].jsonBody(t, &second)
	assert.Len(t, first.Contacts, 5000)
	assert.Len(t, second.Contacts, 1000)

	attachCalls := fake.log.matching(http.MethodPost, "/v2/accounts/"+testSID+"/lists/list_1/contacts")
	assert.Len(t, attachCalls, 2)

	require.NotNil(t, resp.Metadata)
	assert.Equal(t, 6000, resp.Metadata.Total)
	assert.Equal(t, 6000, resp.Metadata.Success)
	assert.Len(t, resp.Response, 6000)
	assert.Equal(t, "list_1", resp.listID())
}

func TestCreateListDuplicateNameStopsBeforeContacts(t *testing.T) {
	fake := newFakeProvider(t)
	fake.listsByName["taken"] = "list_0"
	fake.namesByList["list_0"] = "taken"
	client := newTestClient(t, fake)

	_, err := client.CreateList(context.Background(), CreateListParams{
		Name:    "taken",
		Numbers: []string{"+14155552671"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUniqueViolation)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "list name already exists", apiErr.Description)

	assert.Empty(t, fake.log.matching(http.MethodPost, "/v2/accounts/"+testSID+"/contacts"))
}

func TestCreateListValidatesNumbersBeforeAnyCall(t *testing.T) {
	fake := newFakeProvider(t)
	client := newTestClient(t, fake)

	_, err := client.CreateList(context.Background(), CreateListParams{
		Name:    "fresh",
		Numbers: []string{"not-a-number"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, fake.log.all())
}

func TestCreateListWithoutNumbersReturnsCreationResponse(t *testing.T) {
	fake := newFakeProvider(t)
	client := newTestClient(t, fake)

	resp, err := client.CreateList(context.Background(), CreateListParams{Name: "bare"})
	require.NoError(t, err)
	require.Len(t, resp.Response, 1)
	assert.Equal(t, "list_1", resp.Response[0].Data.SID)

	// only the list creation call, no contacts
	assert.Len(t, fake.log.all(), 1)
}

// An empty non-nil Numbers slice behaves like nil: the list is created and
// no contact calls are made.
func TestCreateListEmptyNumbersBehavesLikeNil(t *testing.T) {
	fake := newFakeProvider(t)
	client := newTestClient(t, fake)

	resp, err := client.CreateList(context.Background(), CreateListParams{
		Name:    "hollow",
		Numbers: []string{},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Len(t, resp.Response, 1)
	assert.Equal(t, "list_1", resp.Response[0].Data.SID)

	assert.Len(t, fake.log.all(), 1)
}

func TestCreateListDefaultsTag(t *testing.T) {
	fake := newFakeProvider(t)
	client := newTestClient(t, fake)

	_, err := client.CreateList(context.Background(), CreateListParams{Name: "tagged"})
	require.NoError(t, err)

	creates := fake.log.matching(http.MethodPost, "/v2/accounts/"+testSID+"/lists")
	require.Len(t, creates, 1)

	var body struct {
		Lists []struct {
			Name string `json:"name"`
			Tag  string `json:"tag"`
		} `json:"lists"`
	}
	creates[0].jsonBody(t, &body)
	assert.Equal(t, "demo", body.Lists[0].Tag)
}
