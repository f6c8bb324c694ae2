package banksdk

import (
	"net/http"
	"strings"
	"time"
)

// Client is a typed client for the Seeka bank service API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a bank service client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
