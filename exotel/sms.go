package exotel

import (
	"context"
	"encoding/json"
	"net/http"
)

// SendBulkSMSParams are the inputs to SendBulkSMS. The legacy v1 endpoint
// uses CamelCase wire names and a form-encoded body.
type SendBulkSMSParams struct {
	From string
	To   []string
	Body string

	EncodingType   string
	Priority       string
	StatusCallback string
	DLTEntityID    string
	DLTTemplateID  string
	SMSType        string
}

// SendBulkSMS sends one static SMS to every number in To.
func (c *Client) SendBulkSMS(ctx context.Context, params SendBulkSMSParams) (json.RawMessage, error) {
	if err := validateNumbers(params.To); err != nil {
		return nil, err
	}

	data := map[string]any{
		"From": params.From,
		"To":   params.To,
		"Body": params.Body,
	}
	if params.EncodingType != "" {
		data["EncodingType"] = params.EncodingType
	}
	if params.Priority != "" {
		data["Priority"] = params.Priority
	}
	if params.StatusCallback != "" {
		if err := ValidateURL(params.StatusCallback); err != nil {
			return nil, err
		}
		data["StatusCallback"] = params.StatusCallback
	}
	if params.DLTEntityID != "" {
		data["DltEntityId"] = params.DLTEntityID
	}
	if params.DLTTemplateID != "" {
		data["DltTemplateId"] = params.DLTTemplateID
	}
	if params.SMSType != "" {
		data["SmsType"] = params.SMSType
	}

	var out json.RawMessage
	if err := c.call(ctx, http.MethodPost, "Sms/send.json", APIVersionV1, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSMSDetails fetches a single sent SMS by its SID.
func (c *Client) GetSMSDetails(ctx context.Context, smsSID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, "SMS/Messages/"+smsSID+".json", APIVersionV1, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
