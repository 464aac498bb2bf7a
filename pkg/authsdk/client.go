package authsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the notedesk session service.
// It provides access to unauthenticated operations and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// RefreshSkew is subtracted from an access token's expiry when deciding
	// whether a Session must refresh before a call. Default: 5 seconds.
	RefreshSkew time.Duration
}

// NewSDKClient creates a new session service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		RefreshSkew: 5 * time.Second,
	}
}
