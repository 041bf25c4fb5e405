package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayharvest/wayharvest"
	wayhttp "github.com/wayharvest/wayharvest/http"
)

// Ensure Fetcher implements wayharvest.Fetcher at compile time.
var _ wayharvest.Fetcher = (*wayhttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("fetches page content", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body><p>archived page</p></body></html>"))
		}))
		defer srv.Close()

		f := wayhttp.NewFetcher()
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Contains(t, body, "archived page")
	})

	t.Run("decodes legacy charset to UTF-8", func(t *testing.T) {
		t.Parallel()

		// "αβγ" in ISO-8859-7 is the byte sequence E1 E2 E3.
		greek := []byte{0xE1, 0xE2, 0xE3}
		page := append([]byte("<html><body><p>"), greek...)
		page = append(page, []byte("</p></body></html>")...)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-7")
			_, _ = w.Write(page)
		}))
		defer srv.Close()

		f := wayhttp.NewFetcher()
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Contains(t, body, "αβγ")
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		f := wayhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("retries insecurely on certificate errors", func(t *testing.T) {
		t.Parallel()

		// httptest's TLS server presents a self-signed certificate the
		// default client rejects, which is exactly the archived-site case.
		srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>content behind a dead certificate</body></html>"))
		}))
		defer srv.Close()

		f := wayhttp.NewFetcher()
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Contains(t, body, "dead certificate")
	})

	t.Run("canceled context aborts the request", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(2 * time.Second)
		}))
		defer srv.Close()

		f := wayhttp.NewFetcher()
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := f.Fetch(ctx, srv.URL)
		require.Error(t, err)
	})

	t.Run("close is a no-op", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, wayhttp.NewFetcher().Close())
	})
}
