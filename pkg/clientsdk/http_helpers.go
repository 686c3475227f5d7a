package clientsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs a single HTTP request with the SDKClient's HTTP client.
// There is no retry; a transport failure is returned as-is for the caller to classify.
func (c *SDKClient) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// readBody reads and closes the response body, returning a classified error
// for non-2xx responses.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newGenericError(resp.StatusCode, fmt.Errorf("failed to read response body: %w", err))
	}

	if err := parseErrorResponse(resp, bodyBytes); err != nil {
		return nil, err
	}

	return bodyBytes, nil
}

// decodeJSON decodes a successful JSON response into target.
// Non-2xx responses and undecodable bodies are returned as classified errors.
func decodeJSON(resp *http.Response, target any) error {
	bodyBytes, err := readBody(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return newGenericError(resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}

	return nil
}
