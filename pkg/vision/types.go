package vision

import (
	"fmt"
	"net/http"
)

// Config holds vision client configuration
type Config struct {
	URL        string
	APIKey     string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("vision: URL is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// predictRequest is the TF-Serving style inference request body.
// Instances carries a batch of HxWxC tensors.
type predictRequest struct {
	Instances [][][][]float64 `json:"instances"`
}

// predictResponse is the inference response body.
type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
}

// errorResponse is the inference service error body.
type errorResponse struct {
	Error string `json:"error"`
}
