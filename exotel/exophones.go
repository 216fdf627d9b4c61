package exotel

import (
	"context"
	"encoding/json"
	"net/http"
)

// GetAllExophones lists the ExoPhone numbers assigned to the account.
func (c *Client) GetAllExophones(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, "IncomingPhoneNumbers", APIVersionV2Beta, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetExophoneDetails fetches a single ExoPhone.
func (c *Client) GetExophoneDetails(ctx context.Context, exophoneSID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, "IncomingPhoneNumbers/"+exophoneSID, APIVersionV2Beta, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetExophoneHeartbeat fetches an ExoPhone including connectivity
// information.
func (c *Client) GetExophoneHeartbeat(ctx context.Context, exophoneSID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, "incoming-phone-numbers/"+exophoneSID, APIVersionV2, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
