package exotel

import (
	"context"
	"encoding/json"
	"net/http"
)

const defaultListTag = "demo"

// CreateListParams are the inputs to CreateList. Tag defaults to "demo" when
// left empty. Numbers is optional; when present the new list is populated
// with implicitly created contacts.
type CreateListParams struct {
	Name    string
	Tag     string
	Numbers []string
}

// ListFilter narrows GetBulkLists. Zero values are omitted from the request.
type ListFilter struct {
	Offset int
	Limit  int
	Name   string
	SortBy string
}

// CreateList creates a contact list and, when numbers are supplied, creates
// contacts in batches of 5000 and attaches each batch to the new list. The
// returned response covers every batch: entries concatenated, metadata
// counters summed.
//
// A provider-reported duplicate list name surfaces as ErrUniqueViolation and
// no contacts are created.
func (c *Client) CreateList(ctx context.Context, params CreateListParams) (*BulkResponse, error) {
	if len(params.Numbers) > 0 {
		if err := validateNumbers(params.Numbers); err != nil {
			return nil, err
		}
	}

	tag := params.Tag
	if tag == "" {
		tag = defaultListTag
	}
	payload := map[string]any{
		"lists": []map[string]any{
			{"name": params.Name, "tag": tag},
		},
	}

	var created BulkResponse
	if err := c.call(ctx, http.MethodPost, "lists", APIVersionV2, payload, &created); err != nil {
		return nil, err
	}

	if len(created.Response) > 0 && created.Response[0].Code == http.StatusConflict {
		description := ""
		if created.Response[0].ErrorData != nil {
			description = created.Response[0].ErrorData.Description
		}
		return nil, &APIError{Kind: ErrUniqueViolation, StatusCode: http.StatusConflict, Description: description}
	}

	if len(params.Numbers) == 0 {
		return &created, nil
	}

	listID := ""
	if len(created.Response) > 0 && created.Response[0].Data != nil {
		listID = created.Response[0].Data.SID
	}

	var combined *BulkResponse
	for _, batch := range batchNumbers(params.Numbers, batchLimit) {
		contacts, err := c.CreateContacts(ctx, batch)
		if err != nil {
			return nil, err
		}

		attached, err := c.AddContactsToList(ctx, contacts.contactSIDs(), listID)
		if err != nil {
			return nil, err
		}

		if combined == nil {
			combined = attached
		} else {
			combined.merge(attached)
		}
	}
	return combined, nil
}

// AddContactsToList attaches existing contacts to a list.
func (c *Client) AddContactsToList(ctx context.Context, contactSIDs []string, listID string) (*BulkResponse, error) {
	refs := make([]map[string]any, 0, len(contactSIDs))
	for _, sid := range contactSIDs {
		refs = append(refs, map[string]any{"contact_sid": sid})
	}
	payload := map[string]any{"contact_references": refs}

	var out BulkResponse
	if err := c.call(ctx, http.MethodPost, "lists/"+listID+"/contacts", APIVersionV2, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteList deletes a contact list.
func (c *Client) DeleteList(ctx context.Context, listID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, http.MethodDelete, "lists/"+listID, APIVersionV2, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetListDetails fetches a single contact list.
func (c *Client) GetListDetails(ctx context.Context, listID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, "lists/"+listID, APIVersionV2, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBulkLists fetches lists with optional paging, search and sorting.
func (c *Client) GetBulkLists(ctx context.Context, filter ListFilter) (json.RawMessage, error) {
	data := map[string]any{}
	if filter.Offset > 0 {
		data["offset"] = filter.Offset
	}
	if filter.Limit > 0 {
		data["limit"] = filter.Limit
	}
	if filter.Name != "" {
		data["name"] = filter.Name
	}
	if filter.SortBy != "" {
		data["sort_by"] = filter.SortBy
	}

	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, "lists", APIVersionV2, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetListContacts fetches the contacts of a list with optional paging.
func (c *Client) GetListContacts(ctx context.Context, listID string, offset, limit int) (json.RawMessage, error) {
	data := map[string]any{}
	if offset > 0 {
		data["offset"] = offset
	}
	if limit > 0 {
		data["limit"] = limit
	}

	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, "lists/"+listID+"/contacts", APIVersionV2, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
