package exotel

import (
	"encoding/json"
	"fmt"
)

// APIVersion selects one of the three provider API generations. They differ
// in base path, account segment casing, body encoding and error body shape.
type APIVersion string

const (
	APIVersionV1     APIVersion = "v1"
	APIVersionV2     APIVersion = "v2"
	APIVersionV2Beta APIVersion = "v2_beta"
)

// basePath returns the versioned, account-scoped prefix for request URLs.
func (v APIVersion) basePath(sid string) string {
	switch v {
	case APIVersionV1:
		return fmt.Sprintf("v1/Accounts/%s", sid)
	case APIVersionV2Beta:
		return fmt.Sprintf("v2_beta/Accounts/%s", sid)
	default:
		return fmt.Sprintf("v2/accounts/%s", sid)
	}
}

// formEncoded reports whether request bodies for this generation are sent as
// form data instead of JSON.
func (v APIVersion) formEncoded() bool { return v == APIVersionV1 }

// restException is the error body of the v1 and v2_beta generations.
type restException struct {
	RestException struct {
		Message string `json:"Message"`
	} `json:"RestException"`
}

// errorEnvelope is the error body of the v2 generation. The response field is
// either a single result object or a list of per-item results.
type errorEnvelope struct {
	Response json.RawMessage `json:"response"`
}

type errorResult struct {
	ErrorData *ErrorData `json:"error_data"`
}

// errorDescription extracts the human-readable description from a provider
// error body, branching on the generation's body shape.
func (v APIVersion) errorDescription(body []byte) string {
	switch v {
	case APIVersionV1, APIVersionV2Beta:
		var exc restException
		if err := json.Unmarshal(body, &exc); err != nil {
			return ""
		}
		return exc.RestException.Message
	default:
		var env errorEnvelope
		if err := json.Unmarshal(body, &env); err != nil || len(env.Response) == 0 {
			return ""
		}

		var results []errorResult
		if err := json.Unmarshal(env.Response, &results); err != nil {
			var single errorResult
			if err := json.Unmarshal(env.Response, &single); err != nil {
				return ""
			}
			results = []errorResult{single}
		}
		if len(results) == 0 || results[0].ErrorData == nil {
			return ""
		}
		return results[0].ErrorData.Description
	}
}
