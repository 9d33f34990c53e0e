package rasff

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(url string, attempts int) *Source {
	return New(Config{
		BaseURL:        url,
		Timeout:        5 * time.Second,
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFetchPage_ODataShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		fmt.Fprint(w, `{
			"value": [{"notif_id": 123456, "subject": "Salmonella in chicken"}],
			"@odata.nextLink": "https://feed.test/page2"
		}`)
	}))
	defer srv.Close()

	page, err := newTestSource(srv.URL, 1).FetchPage(context.Background(), srv.URL)

	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, json.Number("123456"), page.Records[0]["notif_id"])
	assert.Equal(t, "https://feed.test/page2", page.NextLink)
}

func TestFetchPage_RecordsShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"records": [{"id": "a"}, {"id": "b"}], "nextLink": "/next"}`)
	}))
	defer srv.Close()

	page, err := newTestSource(srv.URL, 1).FetchPage(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Len(t, page.Records, 2)
	assert.Equal(t, "/next", page.NextLink)
}

func TestFetchPage_LastPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"value": []}`)
	}))
	defer srv.Close()

	page, err := newTestSource(srv.URL, 1).FetchPage(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Empty(t, page.Records)
	assert.Empty(t, page.NextLink)
}

func TestFetchPage_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"value": [{"id": "a"}]}`)
	}))
	defer srv.Close()

	page, err := newTestSource(srv.URL, 3).FetchPage(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Len(t, page.Records, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchPage_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestSource(srv.URL, 2).FetchPage(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchPage_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html>`)
	}))
	defer srv.Close()

	_, err := newTestSource(srv.URL, 1).FetchPage(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestCalculateBackoff(t *testing.T) {
	s := &Source{initialBackoff: time.Second, maxBackoff: 5 * time.Second}

	assert.Equal(t, time.Second, s.calculateBackoff(1))
	assert.Equal(t, 2*time.Second, s.calculateBackoff(2))
	assert.Equal(t, 4*time.Second, s.calculateBackoff(3))
	assert.Equal(t, 5*time.Second, s.calculateBackoff(4))
}
