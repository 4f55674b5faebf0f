package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type anthropicImpl struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// newAnthropicImpl creates a new Anthropic implementation
func newAnthropicImpl(cfg Config) *anthropicImpl {
	return &anthropicImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to the Messages API
func (a *anthropicImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := a.transformRequest(req)
	wireResp, err := a.callAPI(ctx, wireReq)
	if err != nil {
		return nil, err
	}
	return transformResponse(wireResp), nil
}

// Model returns the model being used
func (a *anthropicImpl) Model() string {
	return a.model
}

// callAPI sends a request to the Messages API
func (a *anthropicImpl) callAPI(ctx context.Context, req messagesRequest) (*messagesResponse, error) {
	url := fmt.Sprintf("%s/messages", a.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", APIVersion)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("anthropic: API error %d: %s", resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("anthropic: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("anthropic: failed to decode response: %w", err)
	}

	return &result, nil
}

// transformRequest converts the normalized request to the wire format
func (a *anthropicImpl) transformRequest(req *Request) messagesRequest {
	wireReq := messagesRequest{
		Model:     a.model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages:  req.Messages,
	}
	if wireReq.MaxTokens <= 0 {
		wireReq.MaxTokens = DefaultMaxTokens
	}
	if req.Temperature > 0 {
		temp := req.Temperature
		wireReq.Temperature = &temp
	}
	return wireReq
}

// transformResponse converts the wire response to the normalized format
func transformResponse(resp *messagesResponse) *Response {
	out := &Response{
		StopReason: resp.StopReason,
		Usage:      resp.Usage,
	}
	for _, block := range resp.Content {
		if block.Type == "text" {
			out.Text += block.Text
		}
	}
	return out
}
