package omni

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/omni-tools/dashmover/pkg/domain/model"
	"github.com/omni-tools/dashmover/pkg/domain/types"
)

const defaultTimeout = 30 * time.Second

// Client performs authenticated HTTP calls against one Omni environment.
// It holds no mutable state beyond the environment coordinates, so distinct
// instances are safe for concurrent use.
type Client struct {
	env        model.Environment
	httpClient *http.Client
}

// Option is a functional option for configuring Client
type Option func(*Client)

// WithTimeout sets the request timeout. The upstream API has no documented
// latency bound, so the timeout stays configurable.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for one environment
func New(env model.Environment, opts ...Option) *Client {
	client := &Client{
		env: env,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// ExportDashboard fetches the document bundle of a dashboard
func (c *Client) ExportDashboard(ctx context.Context, id types.DashboardID) (*model.ExportPayload, error) {
	var payload model.ExportPayload
	endpoint := fmt.Sprintf("/api/unstable/documents/%s/export", id)
	if err := c.call(ctx, http.MethodGet, endpoint, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ImportDashboard imports a document bundle against a base model
func (c *Client) ImportDashboard(ctx context.Context, req *model.ImportRequest) (*model.ImportResult, error) {
	var result model.ImportResult
	if err := c.call(ctx, http.MethodPost, "/api/unstable/documents/import", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MoveDocument relocates a document into a folder
func (c *Client) MoveDocument(ctx context.Context, documentID types.DocumentID, folderID types.FolderID) (json.RawMessage, error) {
	var raw json.RawMessage
	endpoint := fmt.Sprintf("/api/unstable/documents/%s/move", documentID)
	body := map[string]string{"folderId": folderID.String()}
	if err := c.call(ctx, http.MethodPost, endpoint, body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// call issues one authenticated request and decodes the JSON response into
// out. Failures come back as a goerr tagged with exactly one of the
// classification tags in pkg/domain/types.
func (c *Client) call(ctx context.Context, method, endpoint string, body, out any) error {
	url := c.env.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body",
				goerr.V("endpoint", endpoint))
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return goerr.Wrap(err, "failed to build request",
			goerr.V("endpoint", endpoint))
	}
	req.Header.Set("Authorization", "Bearer "+c.env.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "network error",
			goerr.T(types.ErrTagNetwork),
			goerr.V("endpoint", endpoint),
			goerr.V("method", method))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(err, "network error: failed to read response body",
			goerr.T(types.ErrTagNetwork),
			goerr.V("endpoint", endpoint))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return goerr.New("API error: "+errorDetail(respBody),
			goerr.T(types.ErrTagAPI),
			goerr.V("endpoint", endpoint),
			goerr.V("status", resp.StatusCode))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return goerr.Wrap(err, "decode error: response is not valid JSON",
				goerr.T(types.ErrTagDecode),
				goerr.V("endpoint", endpoint))
		}
	}

	return nil
}

// errorDetail extracts the detail field of an error response body, falling
// back to the raw text when the body is not JSON or has no detail.
func errorDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return strings.TrimSpace(string(body))
}
