package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client implements IVision against a remote inference endpoint.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

var _ IVision = (*Client)(nil)

// New creates a new vision inference client
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
	}, nil
}

// Predict sends one preprocessed image to the inference service and returns
// its probability vector.
func (c *Client) Predict(ctx context.Context, instance [][][]float64) ([]float64, error) {
	body, err := json.Marshal(predictRequest{Instances: [][][][]float64{instance}})
	if err != nil {
		return nil, fmt.Errorf("vision: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("vision: failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("vision: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("vision: API error %d: %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("vision: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("vision: failed to decode response: %w", err)
	}

	if len(result.Predictions) == 0 {
		return nil, fmt.Errorf("vision: empty predictions")
	}

	return result.Predictions[0], nil
}
