// Package storage persists rendered invoice PDFs in an S3-style object
// store over its HTTP API. Uploads upsert, so regenerating an invoice
// overwrites the previous document under the same key.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when no object exists under the given key.
	ErrNotFound = errors.New("object not found")
	// ErrNotConfigured is returned when the client has no endpoint.
	ErrNotConfigured = errors.New("storage not configured")
)

type Client struct {
	httpClient *http.Client
	endpoint   string
	bucket     string
	apiKey     string
}

// NewClient creates a storage client. An empty endpoint yields a disabled
// client whose calls all return ErrNotConfigured.
func NewClient(endpoint, bucket, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   strings.TrimRight(endpoint, "/"),
		bucket:     bucket,
		apiKey:     apiKey,
	}
}

// Enabled reports whether the client has an endpoint.
func (c *Client) Enabled() bool {
	return c.endpoint != ""
}

func (c *Client) objectURL(key string) string {
	return fmt.Sprintf("%s/object/%s/%s", c.endpoint, c.bucket, key)
}

// Upload stores data under key, replacing any existing object.
func (c *Client) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.objectURL(key), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload %s failed: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upload %s failed: status %d: %s", key, resp.StatusCode, string(body))
	}
	return nil
}

// Download fetches the object stored under key.
func (c *Client) Download(ctx context.Context, key string) ([]byte, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.objectURL(key), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s failed: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("download %s failed: status %d: %s", key, resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download %s failed: %w", key, err)
	}
	return data, nil
}

// ObjectKey derives the stable storage key for an invoice number. Runs of
// characters outside [A-Za-z0-9] collapse into a single dash, so the same
// invoice always maps to the same object.
func ObjectKey(invoiceNumber string) string {
	var b strings.Builder
	dash := false
	for _, r := range invoiceNumber {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	return fmt.Sprintf("invoice-%s.pdf", slug)
}
