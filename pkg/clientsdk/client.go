package clientsdk

import (
	"net/http"
	"strings"
	"time"
)

// ClientsPath is the fixed path prefix of the client endpoints on the API host.
const ClientsPath = "/api/clients"

// SDKClient is a client for the clients API.
// It holds no mutable state after construction and is safe for concurrent use.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new clients API client for the given host URL
// (e.g. "http://localhost:8001"). A zero timeout means requests are only
// bounded by the caller's context.
func NewSDKClient(baseURL string, timeout time.Duration) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}
