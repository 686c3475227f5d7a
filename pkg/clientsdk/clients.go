package clientsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ============================================================================
// Client Operations
// ============================================================================

// ListClients returns every client known to the API. There is no pagination.
func (c *SDKClient) ListClients(ctx context.Context) ([]Client, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, ClientsPath+"/getClients", nil, nil)
	if err != nil {
		return nil, classify(err)
	}

	var clients []Client
	if err := decodeJSON(resp, &clients); err != nil {
		return nil, err
	}

	if clients == nil {
		clients = []Client{}
	}
	return clients, nil
}

// FindBySharedKey looks up a single client by its shared key.
// A miss is not an error: it returns (nil, nil).
func (c *SDKClient) FindBySharedKey(ctx context.Context, sharedKey string) (*Client, error) {
	path := ClientsPath + "/searchClient/" + url.PathEscape(sharedKey)

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, classify(err)
	}

	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		return nil, nil
	}

	var client *Client
	if err := decodeJSON(resp, &client); err != nil {
		return nil, err
	}

	return client, nil
}

// CreateClient submits a new client record.
// A rejected duplicate returns an error matching ErrDuplicateSharedKey; any
// other failure matches ErrRequestFailed.
func (c *SDKClient) CreateClient(ctx context.Context, client Client) (*CreateClientResponse, error) {
	body, err := json.Marshal(client)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to marshal request: %w", err))
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}

	resp, err := c.doRequest(ctx, http.MethodPost, ClientsPath+"/createClient", bytes.NewReader(body), headers)
	if err != nil {
		return nil, classify(err)
	}

	bodyBytes, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	// The acknowledgement is opaque; an empty or non-JSON success body is still a success.
	var createResp CreateClientResponse
	if len(strings.TrimSpace(string(bodyBytes))) > 0 {
		_ = json.Unmarshal(bodyBytes, &createResp)
	}

	return &createResp, nil
}
