package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "invoice-INV-2026-0001.pdf", ObjectKey("INV-2026-0001"))
	assert.Equal(t, "invoice-INV-2026-0001.pdf", ObjectKey("INV/2026 #0001"))
	assert.Equal(t, "invoice-abc.pdf", ObjectKey("--abc--"))
}

func TestUploadAndDownload(t *testing.T) {
	objects := map[string][]byte{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "true", r.Header.Get("x-upsert"))
			data, _ := io.ReadAll(r.Body)
			objects[r.URL.Path] = data
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			data, ok := objects[r.URL.Path]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write(data)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "invoices", "test-key")
	ctx := context.Background()
	key := ObjectKey("INV-2026-0001")

	require.NoError(t, c.Upload(ctx, key, []byte("first"), "application/pdf"))

	got, err := c.Download(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)

	// Upsert: a second upload under the same key replaces the object.
	require.NoError(t, c.Upload(ctx, key, []byte("second"), "application/pdf"))
	got, err = c.Download(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestDownloadNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "invoices", "test-key")
	_, err := c.Download(context.Background(), "invoice-missing.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDisabledClient(t *testing.T) {
	c := NewClient("", "invoices", "")
	assert.False(t, c.Enabled())

	err := c.Upload(context.Background(), "k", nil, "application/pdf")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = c.Download(context.Background(), "k")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
