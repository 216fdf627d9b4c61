package exotel

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
)

// fakeProvider emulates the subset of the provider API the compound
// operations touch: list creation with duplicate-name detection, contact
// creation and attachment, campaign creation with a scriptable outcome and
// the delete endpoints used by rollback.
type fakeProvider struct {
	t   *testing.T
	log *requestLog

	mu          sync.Mutex
	nextContact int
	nextList    int
	listsByName map[string]string
	namesByList map[string]string

	// campaignStatus scripts POST campaign outcomes; 0 means success.
	campaignStatus int
	// deleteListStatus scripts DELETE lists/{id}; 0 means success.
	deleteListStatus int
}

func newFakeProvider(t *testing.T) *fakeProvider {
	return &fakeProvider{
		t:           t,
		log:         &requestLog{},
		listsByName: map[string]string{},
		namesByList: map[string]string{},
	}
}

func (f *fakeProvider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := f.log.record(r)
	path := strings.TrimPrefix(r.URL.Path, "/v2/accounts/"+testSID+"/")

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodPost && path == "lists":
		f.createList(w, rec)
	case r.Method == http.MethodPost && path == "contacts":
		f.createContacts(w, rec)
	case r.Method == http.MethodPost && strings.HasPrefix(path, "lists/") && strings.HasSuffix(path, "/contacts"):
		listID := strings.TrimSuffix(strings.TrimPrefix(path, "lists/"), "/contacts")
		f.attachContacts(w, rec, listID)
	case r.Method == http.MethodDelete && strings.HasPrefix(path, "lists/"):
		f.deleteList(w, strings.TrimPrefix(path, "lists/"))
	case r.Method == http.MethodDelete && strings.HasPrefix(path, "contacts/"):
		writeJSON(f.t, w, http.StatusOK, map[string]any{})
	case r.Method == http.MethodPost && (path == "campaigns" || path == "sms-campaigns" || path == "message-campaigns"):
		f.createCampaign(w)
	default:
		f.t.Errorf("fake provider: unexpected request %s %s", r.Method, r.URL.Path)
		writeJSON(f.t, w, http.StatusNotFound, map[string]any{})
	}
}

func (f *fakeProvider) createList(w http.ResponseWriter, rec recordedRequest) {
	var body struct {
		Lists []struct {
			Name string `json:"name"`
			Tag  string `json:"tag"`
		} `json:"lists"`
	}
	rec.jsonBody(f.t, &body)

	name := body.Lists[0].Name
	if _, ok := f.listsByName[name]; ok {
		writeJSON(f.t, w, http.StatusOK, BulkResponse{Response: []ResponseEntry{{
			Code:      http.StatusConflict,
			ErrorData: &ErrorData{Code: http.StatusConflict, Description: "list name already exists"},
		}}})
		return
	}

	f.nextList++
	listID := fmt.Sprintf("list_%d", f.nextList)
	f.listsByName[name] = listID
	f.namesByList[listID] = name

	writeJSON(f.t, w, http.StatusOK, BulkResponse{Response: []ResponseEntry{{
		Code: http.StatusOK,
		Data: &EntryData{SID: listID},
	}}})
}

func (f *fakeProvider) createContacts(w http.ResponseWriter, rec recordedRequest) {
	var body struct {
		Contacts []struct {
			Number string `json:"number"`
		} `json:"contacts"`
	}
	rec.jsonBody(f.t, &body)

	entries := make([]ResponseEntry, 0, len(body.Contacts))
	for range body.Contacts {
		f.nextContact++
		entries = append(entries, ResponseEntry{
			Code: http.StatusOK,
			Data: &EntryData{SID: fmt.Sprintf("contact_%d", f.nextContact)},
		})
	}
	writeJSON(f.t, w, http.StatusOK, BulkResponse{
		Response: entries,
		Metadata: &BulkMetadata{Total: len(entries), Success: len(entries)},
	})
}

func (f *fakeProvider) attachContacts(w http.ResponseWriter, rec recordedRequest, listID string) {
	var body struct {
		ContactReferences []struct {
			ContactSID string `json:"contact_sid"`
		} `json:"contact_references"`
	}
	rec.jsonBody(f.t, &body)

	entries := make([]ResponseEntry, 0, len(body.ContactReferences))
	for _, ref := range body.ContactReferences {
		entries = append(entries, ResponseEntry{
			Code: http.StatusOK,
			Data: &EntryData{SID: ref.ContactSID, ListID: listID},
		})
	}
	writeJSON(f.t, w, http.StatusOK, BulkResponse{
		Response: entries,
		Metadata: &BulkMetadata{Total: len(entries), Success: len(entries)},
	})
}

func (f *fakeProvider) deleteList(w http.ResponseWriter, listID string) {
	if f.deleteListStatus != 0 {
		writeJSON(f.t, w, f.deleteListStatus, map[string]any{
			"response": map[string]any{"error_data": map[string]any{"description": "delete failed"}},
		})
		return
	}
	if name, ok := f.namesByList[listID]; ok {
		delete(f.namesByList, listID)
		delete(f.listsByName, name)
	}
	writeJSON(f.t, w, http.StatusOK, map[string]any{})
}

func (f *fakeProvider) createCampaign(w http.ResponseWriter) {
	if f.campaignStatus != 0 {
		writeJSON(f.t, w, f.campaignStatus, map[string]any{
			"response": []map[string]any{
				{"error_data": map[string]any{"description": "campaign rejected"}},
			},
		})
		return
	}
	writeJSON(f.t, w, http.StatusOK, BulkResponse{Response: []ResponseEntry{{
		Code: http.StatusOK,
		Data: &EntryData{SID: "campaign_1"},
	}}})
}
