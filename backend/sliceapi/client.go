// SPDX-License-Identifier: Apache-2.0
// Copyright 2025 Canonical Ltd.

package sliceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const SlicePath = "/api/slice"

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("slice api returned status %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// Client posts slice profiles to the slice API.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient builds a client for the API rooted at baseURL. A nil httpClient
// means http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		url:        strings.TrimSuffix(baseURL, "/") + SlicePath,
		httpClient: httpClient,
	}
}

func (c *Client) URL() string {
	return c.url
}

// CreateSlice posts body as JSON and returns the response payload on 2xx.
func (c *Client) CreateSlice(ctx context.Context, body []byte) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build slice request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read slice response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: payload}
	}
	return json.RawMessage(payload), nil
}
