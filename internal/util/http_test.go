package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_InjectsHeaders(t *testing.T) {
	cookieFile := filepath.Join(t.TempDir(), "cookies.txt")
	require.NoError(t, os.WriteFile(cookieFile, []byte("\n  session=abc  \nignored=1\n"), 0644))

	var gotUA, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotCookie = r.Header.Get("Cookie")
	}))
	defer srv.Close()

	c, err := NewHTTPClient(HTTPClientOptions{
		Timeout:    5 * time.Second,
		UserAgent:  "repolabel-test",
		Cookie:     "a=1",
		CookieFile: cookieFile,
	})
	require.NoError(t, err)

	resp, err := c.Get(srv.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "repolabel-test", gotUA)
	assert.Equal(t, "a=1; session=abc", gotCookie)
}

func TestDoWithRetry(t *testing.T) {
	t.Run("retries 5xx then succeeds", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
		resp, err := DoWithRetry(srv.Client(), req, 3, time.Millisecond)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.EqualValues(t, 3, calls.Load())
	})

	t.Run("404 is not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
		resp, err := DoWithRetry(srv.Client(), req, 3, time.Millisecond)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("gives up", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
		resp, err := DoWithRetry(srv.Client(), req, 2, time.Millisecond)
		assert.Nil(t, resp)
		assert.EqualError(t, err, "HTTP 503 after 2 attempts")
	})
}

func TestOpenOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.txt")

	f, err := OpenOutput(path, false)
	require.NoError(t, err)
	_, _ = f.WriteString("one\n")
	require.NoError(t, f.Close())

	f, err = OpenOutput(path, true)
	require.NoError(t, err)
	_, _ = f.WriteString("two\n")
	require.NoError(t, f.Close())

	b, _ := os.ReadFile(path)
	assert.Equal(t, "one\ntwo\n", string(b))

	f, err = OpenOutput(path, false)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	b, _ = os.ReadFile(path)
	assert.Empty(t, b)

	RemoveIfEmpty(path)
	assert.NoFileExists(t, path)
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hidden.txt")
	require.NoError(t, WriteFileAtomic(path, []byte("x")))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(b))
}

func TestHuman(t *testing.T) {
	assert.Equal(t, "512 B", Human(512))
	assert.Equal(t, "1.50 KB", Human(1536))
	assert.Equal(t, "2.00 MB", Human(2<<20))
}

func TestInterrupted_CleansUpAndExits(t *testing.T) {
	code := -1
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = os.Exit })

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	Interrupted(func() { RemoveIfEmpty(path) })

	assert.Equal(t, 1, code)
	assert.NoFileExists(t, path)
}
