package exotel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// call performs exactly one HTTP exchange against the provider and normalizes
// the outcome. GET payloads become query parameters, everything else a JSON
// body, except the v1 generation which takes form-encoded bodies. Non-2xx
// statuses are mapped onto the package sentinels per the table in errors.go;
// unmapped non-2xx statuses decode the raw body into out with no error.
func (c *Client) call(ctx context.Context, method, endpoint string, version APIVersion, data map[string]any, out any) error {
	reqURL, err := url.JoinPath(c.baseURL, version.basePath(c.sid), endpoint)
	if err != nil {
		return fmt.Errorf("exotel: build url: %w", err)
	}

	ctx, span := c.tracer.Start(ctx, "exotel.api.call",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", reqURL),
			attribute.String("exotel.api_version", string(version)),
		),
	)
	defer span.End()

	req, err := c.buildRequest(ctx, method, reqURL, version, data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return fmt.Errorf("exotel: request failed: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return fmt.Errorf("exotel: read response body: %w", err)
	}

	c.logger.Debug("exotel api call",
		zap.String("method", method),
		zap.String("url", reqURL),
		zap.Any("payload", data),
		zap.ByteString("response", body),
	)

	if apiErr := mapStatus(resp.StatusCode, version, body); apiErr != nil {
		span.RecordError(apiErr)
		span.SetStatus(codes.Error, apiErr.Kind.Error())
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("exotel: decode response body: %w", err)
	}
	return nil
}

// buildRequest attaches the payload in the encoding the generation expects
// and sets HTTP Basic authentication on every request.
func (c *Client) buildRequest(ctx context.Context, method, reqURL string, version APIVersion, data map[string]any) (*http.Request, error) {
	var body io.Reader
	contentType := ""

	if data != nil {
		switch {
		case method == http.MethodGet:
			u, err := url.Parse(reqURL)
			if err != nil {
				return nil, fmt.Errorf("exotel: parse url: %w", err)
			}
			u.RawQuery = encodeValues(data).Encode()
			reqURL = u.String()
		case version.formEncoded():
			body = strings.NewReader(encodeValues(data).Encode())
			contentType = "application/x-www-form-urlencoded"
		default:
			b, err := json.Marshal(data)
			if err != nil {
				return nil, fmt.Errorf("exotel: encode payload: %w", err)
			}
			body = bytes.NewReader(b)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("exotel: build request: %w", err)
	}
	req.SetBasicAuth(c.key, c.token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// encodeValues flattens a payload into url.Values. Slice values are repeated
// under the same key.
func encodeValues(data map[string]any) url.Values {
	values := url.Values{}
	for key, val := range data {
		switch v := val.(type) {
		case []string:
			for _, item := range v {
				values.Add(key, item)
			}
		default:
			values.Add(key, fmt.Sprint(v))
		}
	}
	return values
}

// mapStatus translates a provider status code into a typed error. It returns
// nil both for 2xx statuses and for the codes the provider never documented,
// which callers receive as a raw body.
func mapStatus(status int, version APIVersion, body []byte) *APIError {
	switch status {
	case http.StatusBadRequest:
		return &APIError{Kind: ErrValidation, StatusCode: status, Description: version.errorDescription(body)}
	case http.StatusUnauthorized:
		return &APIError{Kind: ErrAuthenticationFailed, StatusCode: status, Description: version.errorDescription(body)}
	case http.StatusPaymentRequired:
		return &APIError{Kind: ErrPaymentRequired, StatusCode: status, Description: version.errorDescription(body)}
	case http.StatusForbidden:
		return &APIError{
			Kind:        ErrPermissionDenied,
			StatusCode:  status,
			Description: "Your credentials are valid, but you don't have access to the requested resource.",
		}
	case http.StatusNotFound:
		return &APIError{Kind: ErrNotFound, StatusCode: status, Description: version.errorDescription(body)}
	case http.StatusTooManyRequests:
		return &APIError{Kind: ErrThrottled, StatusCode: status, Description: "Request was throttled."}
	}
	return nil
}
