package exotel

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendBulkSMSValidatesRecipientsBeforeAnyCall(t *testing.T) {
	called := false
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		writeJSON(t, w, http.StatusOK, map[string]any{})
	}))

	_, err := client.SendBulkSMS(context.Background(), SendBulkSMSParams{
		From: "09513886363",
		To:   []string{"+14155552671", "nope"},
		Body: "hi",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, called)
}

func TestSendBulkSMSUsesLegacyFormEndpoint(t *testing.T) {
	log := &requestLog{}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.record(r)
		writeJSON(t, w, http.StatusOK, map[string]any{"SMSMessage": map[string]any{"Sid": "sms_1"}})
	}))

	_, err := client.SendBulkSMS(context.Background(), SendBulkSMSParams{
		From:     "09513886363",
		To:       []string{"+14155552671"},
		Body:     "hi",
		Priority: "high",
	})
	require.NoError(t, err)

	reqs := log.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/v1/Accounts/"+testSID+"/Sms/send.json", reqs[0].Path)

	form, err := url.ParseQuery(string(reqs[0].Body))
	require.NoError(t, err)
	assert.Equal(t, "high", form.Get("Priority"))
	assert.Empty(t, form.Get("SmsType")) // unset optionals stay out of the body
}
