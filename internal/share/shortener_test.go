package share_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/restock/internal/share"
)

func TestTinyURL_Shorten(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api-create.php", r.URL.Path)
		assert.Equal(t, "https://restock.local/?list=abc", r.URL.Query().Get("url"))
		_, _ = w.Write([]byte("https://tinyurl.com/abc123\n"))
	}))
	defer server.Close()

	s := share.NewTinyURL(server.URL+"/api-create.php", time.Second)
	defer s.Close()

	got, err := s.Shorten(context.Background(), "https://restock.local/?list=abc")
	require.NoError(t, err)
	assert.Equal(t, "https://tinyurl.com/abc123", got)
}

func TestTinyURL_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "error body", status: http.StatusOK, body: "Error", wantErr: share.ErrBadShortURL},
		{name: "empty body", status: http.StatusOK, body: "  ", wantErr: share.ErrBadShortURL},
		{name: "bad request", status: http.StatusBadRequest, body: "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			s := share.NewTinyURL(server.URL, time.Second)
			defer s.Close()

			_, err := s.Shorten(context.Background(), "https://restock.local/?list=abc")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

type stubShortener struct {
	short string
	err   error
}

func (s stubShortener) Shorten(context.Context, string) (string, error) {
	return s.short, s.err
}

func TestShortenOrFallback(t *testing.T) {
	long := "https://restock.local/?list=abc"
	ctx := context.Background()

	assert.Equal(t, "https://t.ly/x", share.ShortenOrFallback(ctx, stubShortener{short: "https://t.ly/x"}, long, quietLogger()))
	assert.Equal(t, long, share.ShortenOrFallback(ctx, stubShortener{err: errors.New("down")}, long, quietLogger()))
	assert.Equal(t, long, share.ShortenOrFallback(ctx, nil, long, quietLogger()))
}

func TestShortenOrFallback_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		_, _ = w.Write([]byte("https://tinyurl.com/late"))
	}))
	defer server.Close()

	s := share.NewTinyURL(server.URL, 50*time.Millisecond)
	defer s.Close()

	long := "https://restock.local/?list=abc"
	assert.Equal(t, long, share.ShortenOrFallback(context.Background(), s, long, quietLogger()))
}

func TestTinyURL_FailureIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	tiny := share.NewTinyURL(srv.URL, time.Second)
	defer tiny.Close()

	long := "https://restock.local/?list=abc"
	got := share.ShortenOrFallback(context.Background(), tiny, long, nil)

	assert.Equal(t, long, got)
	assert.EqualValues(t, 1, hits.Load())
}
