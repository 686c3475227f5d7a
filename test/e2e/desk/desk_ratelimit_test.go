package desk_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
)

// TestRateLimitCreateEndpoint verifies createClient is limited by the write
// profile (burst of 10) and answers 429 with code 04.
func TestRateLimitCreateEndpoint(t *testing.T) {
	baseURL := setupAPIContainerWithDefaultRateLimits(t)
	url := baseURL + clientsdk.ClientsPath + "/createClient"

	var last *http.Response
	for range 11 {
		if last != nil {
			_ = last.Body.Close()
		}
		resp, err := http.Post(url, "application/json", strings.NewReader(`{"sharedKey":`))
		require.NoError(t, err)
		last = resp
	}
	defer last.Body.Close()

	require.Equal(t, http.StatusTooManyRequests, last.StatusCode)
	require.NotEmpty(t, last.Header.Get("Retry-After"))

	var env clientsdk.ErrorResponse
	require.NoError(t, json.NewDecoder(last.Body).Decode(&env))
	require.NotNil(t, env.Data)
	require.Equal(t, clientsdk.CodeTooManyRequests, env.Data.RespondeCode)

	// A limited create is still a generic failure to the SDK
	_, err := clientsdk.NewSDKClient(baseURL, 0).CreateClient(t.Context(), newClient("late"))
	require.ErrorIs(t, err, clientsdk.ErrRequestFailed)
}
