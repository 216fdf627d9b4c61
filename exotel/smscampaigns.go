package exotel

import (
	"context"
	"encoding/json"
	"net/http"
)

// CreateSMSCampaignParams are the inputs to CreateSMSCampaign.
//
// Deprecated upstream in favor of message campaigns; kept because accounts on
// the old vocabulary still route through the sms-campaigns endpoint.
type CreateSMSCampaignParams struct {
	ContentType   string
	Lists         []string
	DLTEntityID   int64
	DLTTemplateID int64
	SenderID      string
	SMSType       string
	Template      string

	Name              string
	Schedule          *Schedule
	StatusCallback    string
	SMSStatusCallback string
}

// CreateMessageCampaignParams are the inputs to CreateMessageCampaign.
type CreateMessageCampaignParams struct {
	ContentType string
	Lists       []string
	DLTEntityID int64
	TemplateID  int64
	// SenderID is serialized under the wire name "from".
	SenderID    string
	MessageType string
	Template    string
	Name        string
	// Channel is SMS or Whatsapp.
	Channel string

	Schedule              *Schedule
	StatusCallback        string
	MessageStatusCallback string
}

func (p CreateSMSCampaignParams) payload() (map[string]any, error) {
	data := map[string]any{
		"content_type":    p.ContentType,
		"lists":           p.Lists,
		"dlt_entity_id":   p.DLTEntityID,
		"dlt_template_id": p.DLTTemplateID,
		"sender_id":       p.SenderID,
		"template":        p.Template,
		"sms_type":        p.SMSType,
	}

	if p.Name != "" {
		data["name"] = p.Name
	}
	if p.Schedule != nil {
		data["schedule"] = p.Schedule.payload(true)
	}
	if p.StatusCallback != "" {
		if err := ValidateURL(p.StatusCallback); err != nil {
			return nil, err
		}
		data["status_callback"] = p.StatusCallback
	}
	if p.SMSStatusCallback != "" {
		if err := ValidateURL(p.SMSStatusCallback); err != nil {
			return nil, err
		}
		data["sms_status_callback"] = p.SMSStatusCallback
	}
	return data, nil
}

func (p CreateMessageCampaignParams) payload() (map[string]any, error) {
	data := map[string]any{
		"content_type":  p.ContentType,
		"lists":         p.Lists,
		"dlt_entity_id": p.DLTEntityID,
		"template_id":   p.TemplateID,
		"from":          p.SenderID,
		"message_type":  p.MessageType,
		"template":      p.Template,
		"name":          p.Name,
		"channel":       p.Channel,
	}

	if p.Schedule != nil {
		data["schedule"] = p.Schedule.payload(true)
	}
	if p.StatusCallback != "" {
		if err := ValidateURL(p.StatusCallback); err != nil {
			return nil, err
		}
		data["status_callback"] = p.StatusCallback
	}
	if p.MessageStatusCallback != "" {
		if err := ValidateURL(p.MessageStatusCallback); err != nil {
			return nil, err
		}
		data["message_status_callback"] = p.MessageStatusCallback
	}
	return data, nil
}

// CreateSMSCampaign creates an SMS campaign through the legacy sms-campaigns
// endpoint.
func (c *Client) CreateSMSCampaign(ctx context.Context, params CreateSMSCampaignParams) (json.RawMessage, error) {
	payload, err := params.payload()
	if err != nil {
		return nil, err
	}

	var out json.RawMessage
	if err := c.call(ctx, http.MethodPost, "sms-campaigns", APIVersionV2, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMessageCampaign creates an SMS or Whatsapp campaign.
func (c *Client) CreateMessageCampaign(ctx context.Context, params CreateMessageCampaignParams) (json.RawMessage, error) {
	payload, err := params.payload()
	if err != nil {
		return nil, err
	}

	var out json.RawMessage
	if err := c.call(ctx, http.MethodPost, "message-campaigns", APIVersionV2, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSMSCampaignWithList creates a contact list populated with the given
// numbers and then an SMS campaign backed by it. params.Lists is ignored.
// Failures matching the client's messaging rollback policy delete the list
// and contacts before returning.
func (c *Client) CreateSMSCampaignWithList(ctx context.Context, numbers []string, listName string, params CreateSMSCampaignParams) (json.RawMessage, error) {
	listID, contactSIDs, err := c.createImplicitList(ctx, numbers, listName)
	if err != nil {
		return nil, err
	}

	params.Lists = []string{listID}
	out, err := c.CreateSMSCampaign(ctx, params)
	if err != nil {
		if c.messagingRollback.triggersOn(err) {
			return nil, c.rollbackList(ctx, listID, contactSIDs, err)
		}
		return nil, err
	}
	return out, nil
}

// CreateMessageCampaignWithList creates a contact list populated with the
// given numbers and then a message campaign backed by it. params.Lists is
// ignored. Failures matching the client's messaging rollback policy delete
// the list and contacts before returning.
func (c *Client) CreateMessageCampaignWithList(ctx context.Context, numbers []string, listName string, params CreateMessageCampaignParams) (json.RawMessage, error) {
	listID, contactSIDs, err := c.createImplicitList(ctx, numbers, listName)
	if err != nil {
		return nil, err
	}

	params.Lists = []string{listID}
	out, err := c.CreateMessageCampaign(ctx, params)
	if err != nil {
		if c.messagingRollback.triggersOn(err) {
			return nil, c.rollbackList(ctx, listID, contactSIDs, err)
		}
		return nil, err
	}
	return out, nil
}

// createImplicitList validates numbers and creates the backing contact list
// for the *WithList compound operations.
func (c *Client) createImplicitList(ctx context.Context, numbers []string, listName string) (listID string, contactSIDs []string, err error) {
	if len(numbers) == 0 {
		return "", nil, &APIError{
			Kind:        ErrValidation,
			Description: "at least one number is required",
		}
	}
	if err := validateNumbers(numbers); err != nil {
		return "", nil, err
	}

	created, err := c.CreateList(ctx, CreateListParams{Name: listName, Numbers: numbers})
	if err != nil {
		return "", nil, err
	}
	return created.listID(), created.contactSIDs(), nil
}

// GetSMSCampaignDetails fetches a single SMS campaign.
func (c *Client) GetSMSCampaignDetails(ctx context.Context, campaignID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, "sms-campaigns/"+campaignID, APIVersionV2, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBulkSMSCampaignDetails fetches SMS campaigns with optional paging,
// search and sorting.
func (c *Client) GetBulkSMSCampaignDetails(ctx context.Context, filter CampaignFilter) (json.RawMessage, error) {
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
	if err := c.call(ctx, http.MethodGet, "sms-campaigns", APIVersionV2, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSMSCampaignSMSDetails fetches the per-message outcomes of an SMS
// campaign.
func (c *Client) GetSMSCampaignSMSDetails(ctx context.Context, campaignID string, filter CallDetailsFilter) (json.RawMessage, error) {
	data := map[string]any{}
	if filter.Offset > 0 {
		data["offset"] = filter.Offset
	}
	if filter.Limit > 0 {
		data["limit"] = filter.Limit
	}
	if filter.SortBy != "" {
		data["sort_by"] = filter.SortBy
	}

	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, "sms-campaigns/"+campaignID+"/sms-details", APIVersionV2, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
