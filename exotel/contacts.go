package exotel

import (
	"context"
	"encoding/json"
	"net/http"
)

// CreateContacts creates one contact per phone number. Numbers are validated
// locally before the call is issued.
func (c *Client) CreateContacts(ctx context.Context, numbers []string) (*BulkResponse, error) {
	if err := validateNumbers(numbers); err != nil {
		return nil, err
	}

	contacts := make([]map[string]any, 0, len(numbers))
	for _, num := range numbers {
		contacts = append(contacts, map[string]any{"number": num})
	}
	payload := map[string]any{"contacts": contacts}

	var out BulkResponse
	if err := c.call(ctx, http.MethodPost, "contacts", APIVersionV2, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContactDetails fetches a single contact by SID.
func (c *Client) GetContactDetails(ctx context.Context, contactSID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, "contacts/"+contactSID, APIVersionV2, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteContact deletes a single contact by SID.
func (c *Client) DeleteContact(ctx context.Context, contactSID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, http.MethodDelete, "contacts/"+contactSID, APIVersionV2, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteContacts deletes the given contacts one call at a time, in order.
// The first failure aborts the sequence.
func (c *Client) DeleteContacts(ctx context.Context, contactSIDs []string) ([]json.RawMessage, error) {
	responses := make([]json.RawMessage, 0, len(contactSIDs))
	for _, sid := range contactSIDs {
		resp, err := c.DeleteContact(ctx, sid)
		if err != nil {
			return responses, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
