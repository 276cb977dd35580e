package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestClient starts a fake backend and returns a client pointed at it.
func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithHTTPClient(srv.Client())}, opts...)
	return New(srv.URL, opts...)
}

func TestNew(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, New("").BaseURL())
	assert.Equal(t, "http://backend:9000", New(" http://backend:9000/ ").BaseURL())

	c := New("http://backend:9000", WithTracing())
	assert.NotNil(t, c.httpClient.Transport)
	assert.NotNil(t, c.Documents)
	assert.NotNil(t, c.Risks)
	assert.NotNil(t, c.Stats)
	assert.NotNil(t, c.Settings)
}

func TestDo_ReturnsBodyUnchanged(t *testing.T) {
	bodies := []string{
		`[]`,
		`{"documentsProcessed":"12","riskyDocuments":"3","averageProcessingTime":"4.2s"}`,
		`{"nested":{"list":[1,"two",true,null]},"unknown":1e3}`,
		`"plain string"`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, body)
			})

			var got any
			require.NoError(t, c.Do(context.Background(), "/anything", RequestOptions{}, &got))

			var want any
			require.NoError(t, json.Unmarshal([]byte(body), &want))
			assert.Equal(t, want, got)
		})
	}
}

func TestDo_StatusCodeIsPreserved(t *testing.T) {
	for _, status := range []int{400, 401, 403, 404, 409, 422, 500, 502, 503} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			})

			err := c.Do(context.Background(), "/documents/", RequestOptions{}, nil)
			apiErr, ok := AsAPIError(err)
			require.True(t, ok, "expected *APIError, got %T", err)
			assert.Equal(t, status, apiErr.StatusCode)
			assert.Equal(t, DefaultErrorMessage, apiErr.Message)
		})
	}
}

func TestDo_ErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		fallback string
		want     string
	}{
		{name: "detail string", body: `{"detail":"Document not found"}`, want: "Document not found"},
		{name: "no detail", body: `{"error":"boom"}`, want: DefaultErrorMessage},
		{name: "empty detail", body: `{"detail":""}`, want: DefaultErrorMessage},
		{name: "null detail", body: `{"detail":null}`, want: DefaultErrorMessage},
		{name: "invalid json", body: `<html>Bad Gateway</html>`, want: DefaultErrorMessage},
		{name: "empty body", body: ``, want: DefaultErrorMessage},
		{name: "json array", body: `["detail"]`, want: DefaultErrorMessage},
		{name: "validation detail", body: `{"detail":[{"loc":["body","status"],"msg":"invalid"}]}`, want: `[{"loc":["body","status"],"msg":"invalid"}]`},
		{name: "custom fallback", body: `oops`, fallback: "Failed to upload document", want: "Failed to upload document"},
		{name: "detail beats custom fallback", body: `{"detail":"too large"}`, fallback: "Failed to upload document", want: "too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, tt.body)
			})

			err := c.Do(context.Background(), "/x", RequestOptions{ErrorMessage: tt.fallback}, nil)
			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
			assert.Equal(t, tt.want, apiErr.Message)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestDo_TransportFailureIsNotNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url)
	err := c.Do(context.Background(), "/documents/", RequestOptions{}, nil)
	require.Error(t, err)
	_, ok := AsAPIError(err)
	assert.False(t, ok)
}

func TestDo_ContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Do(ctx, "/documents/", RequestOptions{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDo_Headers(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = io.WriteString(w, `{}`)
	})

	ctx := WithRequestID(context.Background(), "rid-1")

	t.Run("defaults", func(t *testing.T) {
		require.NoError(t, c.Do(ctx, "/x", RequestOptions{}, nil))
		assert.Equal(t, "application/json", got.Get("Content-Type"))
		assert.Equal(t, "rid-1", got.Get(RequestIDHeader))
	})

	t.Run("caller overrides", func(t *testing.T) {
		h := http.Header{}
		h.Set("Content-Type", "text/plain")
		h.Set(RequestIDHeader, "explicit")
		h.Set("Authorization", "Bearer abc")
		require.NoError(t, c.Do(ctx, "/x", RequestOptions{Header: h}, nil))
		assert.Equal(t, "text/plain", got.Get("Content-Type"))
		assert.Equal(t, "explicit", got.Get(RequestIDHeader))
		assert.Equal(t, "Bearer abc", got.Get("Authorization"))
	})
}

func TestDo_SingleAttempt(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := c.Do(context.Background(), "/documents/", RequestOptions{}, nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_DecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})

	var out map[string]any
	err := c.Do(context.Background(), "/settings/", RequestOptions{}, &out)
	require.Error(t, err)
	_, ok := AsAPIError(err)
	assert.False(t, ok)
}

func TestDo_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/documents/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	}, WithMetrics(m))

	_, err = c.Documents.List(context.Background(), 0)
	require.NoError(t, err)
	_, err = c.Documents.Get(context.Background(), "missing")
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/documents/", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/documents/{id}", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.requestDuration))

	_, err = NewMetrics(reg)
	assert.Error(t, err, "registering twice on one registry must fail")
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{StatusCode: 404}))
	assert.False(t, IsNotFound(&APIError{StatusCode: 500}))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestIDFromContext(ctx))
	assert.Equal(t, ctx, WithRequestID(ctx, ""))
	assert.Equal(t, "abc", RequestIDFromContext(WithRequestID(ctx, "abc")))
}
