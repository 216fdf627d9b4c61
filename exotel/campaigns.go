package exotel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CreateCampaignParams are the inputs to CreateCampaign. Exactly one of From
// and Lists must be set. Unset optional fields are left out of the payload.
type CreateCampaignParams struct {
	// CallerID is the ExoPhone placing the calls.
	CallerID string
	// AppID identifies the flow connected once the callee picks up.
	AppID string

	From  []string
	Lists []string

	Name                 string
	CallDuplicateNumbers *bool
	Schedule             *Schedule
	CampaignType         string
	CallStatusCallback   string
	CallScheduleCallback string
	StatusCallback       string
	Retry                *Retry
}

// CampaignFilter narrows GetBulkCampaignDetails. Zero values are omitted.
type CampaignFilter struct {
	Offset int
	Limit  int
	Name   string
	Status string
	SortBy string
}

// CallDetailsFilter narrows GetCampaignCallDetails. Zero values are omitted.
type CallDetailsFilter struct {
	Offset int
	Limit  int
	Status string
	SortBy string
}

func (p CreateCampaignParams) payload(sid string) (map[string]any, error) {
	if (p.From != nil) == (p.Lists != nil) {
		return nil, &APIError{
			Kind:        ErrValidation,
			Description: "exactly one of From and Lists must be provided",
		}
	}

	campaignType := p.CampaignType
	if campaignType == "" {
		campaignType = "static"
	}
	campaign := map[string]any{
		"caller_id":     p.CallerID,
		"campaign_type": campaignType,
		"url":           fmt.Sprintf("http://my.exotel.com/%s/exoml/start_voice/%s", sid, p.AppID),
	}

	if p.From != nil {
		if err := validateNumbers(p.From); err != nil {
			return nil, err
		}
		campaign["from"] = p.From
	}
	if p.Lists != nil {
		campaign["lists"] = p.Lists
	}
	if p.CallDuplicateNumbers != nil {
		campaign["call_duplicate_numbers"] = *p.CallDuplicateNumbers
	}
	if p.Name != "" {
		campaign["name"] = p.Name
	}
	if p.Schedule != nil {
		campaign["schedule"] = p.Schedule.payload(false)
	}
	if p.CallStatusCallback != "" {
		if err := ValidateURL(p.CallStatusCallback); err != nil {
			return nil, err
		}
		campaign["call_status_callback"] = p.CallStatusCallback
	}
	if p.CallScheduleCallback != "" {
		if err := ValidateURL(p.CallScheduleCallback); err != nil {
			return nil, err
		}
		campaign["call_schedule_callback"] = p.CallScheduleCallback
	}
	if p.StatusCallback != "" {
		if err := ValidateURL(p.StatusCallback); err != nil {
			return nil, err
		}
		campaign["status_callback"] = p.StatusCallback
	}
	if p.Retry != nil {
		campaign["retries"] = p.Retry.payload()
	}

	return map[string]any{"campaigns": []map[string]any{campaign}}, nil
}

// CreateCampaign creates a voice campaign.
func (c *Client) CreateCampaign(ctx context.Context, params CreateCampaignParams) (json.RawMessage, error) {
	payload, err := params.payload(c.sid)
	if err != nil {
		return nil, err
	}

	var out json.RawMessage
	if err := c.call(ctx, http.MethodPost, "campaigns", APIVersionV2, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCampaignWithList creates a contact list populated with the given
// numbers and then a voice campaign backed by it. params.From and
// params.Lists are ignored; the implicit list is used instead.
//
// When the campaign call fails with a kind in the client's voice rollback
// policy, the list and its contacts are deleted before the error is
// returned. Other failures propagate with the list left in place, owned by
// nobody; there is no idempotency key, so retrying with the same list name
// yields ErrUniqueViolation.
func (c *Client) CreateCampaignWithList(ctx context.Context, numbers []string, listName string, params CreateCampaignParams) (json.RawMessage, error) {
	listID, contactSIDs, err := c.createImplicitList(ctx, numbers, listName)
	if err != nil {
		return nil, err
	}

	params.From = nil
	params.Lists = []string{listID}

	out, err := c.CreateCampaign(ctx, params)
	if err != nil {
		if c.voiceRollback.triggersOn(err) {
			return nil, c.rollbackList(ctx, listID, contactSIDs, err)
		}
		return nil, err
	}
	return out, nil
}

// GetCampaignDetails fetches a single campaign.
func (c *Client) GetCampaignDetails(ctx context.Context, campaignID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, "campaigns/"+campaignID, APIVersionV2, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteCampaign deletes a campaign.
func (c *Client) DeleteCampaign(ctx context.Context, campaignID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, http.MethodDelete, "campaigns/"+campaignID, APIVersionV2, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBulkCampaignDetails fetches campaigns with optional paging, search and
// sorting.
func (c *Client) GetBulkCampaignDetails(ctx context.Context, filter CampaignFilter) (json.RawMessage, error) {
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
	if filter.Status != "" {
		data["status"] = filter.Status
	}
	if filter.SortBy != "" {
		data["sort_by"] = filter.SortBy
	}

	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, "campaigns", APIVersionV2, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCampaignCallDetails fetches the call outcomes of a campaign.
func (c *Client) GetCampaignCallDetails(ctx context.Context, campaignID string, filter CallDetailsFilter) (json.RawMessage, error) {
	data := map[string]any{}
	if filter.Offset > 0 {
		data["offset"] = filter.Offset
	}
	if filter.Limit > 0 {
		data["limit"] = filter.Limit
	}
	if filter.Status != "" {
		data["status"] = filter.Status
	}
	if filter.SortBy != "" {
		data["sort_by"] = filter.SortBy
	}

	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, "campaigns/"+campaignID+"/call-details", APIVersionV2, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
