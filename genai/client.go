package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxResponseSize limits the response body read to prevent memory exhaustion.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// HTTPClient calls the Gemini REST API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates a client for the given endpoint. baseURL defaults to
// the public Gemini endpoint when empty.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GenerateContent sends a single generateContent request. Errors are
// classified by kind; the raw backend message stays inside the wrapped error.
func (c *HTTPClient) GenerateContent(ctx context.Context, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	if req.Model == "" {
		return nil, NewAPIError(KindMalformed, fmt.Errorf("model is required"))
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, NewAPIError(KindMalformed, fmt.Errorf("failed to marshal request: %w", err))
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(req.Model))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, NewAPIError(KindNetwork, fmt.Errorf("failed to create request: %w", err))
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("x-goog-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, NewAPIError(KindNetwork, fmt.Errorf("failed to send request: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, NewAPIError(KindNetwork, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyHTTPError(resp.StatusCode, respBody)
	}

	var result GenerateContentResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, NewAPIError(KindMalformed, fmt.Errorf("failed to unmarshal response: %w", err))
	}

	return &result, nil
}

// classifyHTTPError maps an HTTP error status to an error kind.
func classifyHTTPError(statusCode int, body []byte) error {
	message := string(body)
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
		message = errResp.Error.Message
	}
	if len(message) > 200 {
		message = message[:200] + "..."
	}

	err := fmt.Errorf("backend API error [%d]: %s", statusCode, message)

	switch {
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return NewAPIError(KindAuth, err)
	case statusCode == http.StatusTooManyRequests:
		return NewAPIError(KindQuota, err)
	case statusCode >= 500:
		return NewAPIError(KindNetwork, err)
	default:
		return NewAPIError(KindMalformed, err)
	}
}
