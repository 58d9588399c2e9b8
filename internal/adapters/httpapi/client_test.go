package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kxvin1/life-dashboard/internal/adapters/httpapi"
	"github.com/Kxvin1/life-dashboard/internal/adapters/telemetry"
	"github.com/Kxvin1/life-dashboard/internal/cache"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
	"github.com/Kxvin1/life-dashboard/internal/core/ports/mocks"
)

func tokenStoreWith(ctrl *gomock.Controller, token string) ports.TokenStore {
	tokens := mocks.NewMockTokenStore(ctrl)
	tokens.EXPECT().Token().Return(token, nil).AnyTimes()
	return tokens
}

func newTestClient(t *testing.T, handler http.HandlerFunc, token string, registry *cache.Registry) *httpapi.Client {
	t.Helper()
	ctrl := gomock.NewController(t)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return httpapi.NewClient(server.URL, time.Second, tokenStoreWith(ctrl, token), registry, telemetry.NewNoopTracer())
}

func TestClient_MissingTokenFailsBeforeAnyNetworkIO(t *testing.T) {
	requests := 0
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		requests++
	}, "", cache.NewRegistry())

	err := client.Request(t.Context(), http.MethodGet, "/api/tasks", nil, nil)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
	require.Zero(t, requests)
}

func TestClient_SetsAuthAndRequestHeaders(t *testing.T) {
	var got *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Write([]byte(`{}`))
	}, "secret", cache.NewRegistry())

	require.NoError(t, client.Request(t.Context(), http.MethodGet, "/api/tasks", nil, nil))
	require.Equal(t, "Bearer secret", got.Header.Get("Authorization"))
	require.Equal(t, "application/json", got.Header.Get("Accept"))
	require.NotEmpty(t, got.Header.Get("X-Request-ID"))
	require.Empty(t, got.Header.Get("Content-Type"))
}

func TestClient_SetsContentTypeWhenBodyPresent(t *testing.T) {
	var contentType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}, "secret", cache.NewRegistry())

	body := map[string]string{"title": "new task"}
	require.NoError(t, client.Request(t.Context(), http.MethodPost, "/api/tasks", body, nil))
	require.Equal(t, "application/json", contentType)
}

func TestClient_NoBustParamAtVersionZero(t *testing.T) {
	var rawQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}, "secret", cache.NewRegistry())

	var out []domain.Task
	require.NoError(t, client.Request(t.Context(), http.MethodGet, "/api/tasks", nil, &out))
	require.Empty(t, rawQuery)
}

func TestClient_AppendsBustQueryToBarePath(t *testing.T) {
	registry := cache.NewRegistry()
	registry.Invalidate()
	registry.Invalidate()

	var rawQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}, "secret", registry)

	var out []domain.Task
	require.NoError(t, client.Request(t.Context(), http.MethodGet, "/api/tasks", nil, &out))
	require.Equal(t, "_v=2", rawQuery)
}

func TestClient_AppendsBustParamToExistingQuery(t *testing.T) {
	registry := cache.NewRegistry()
	registry.Invalidate()

	var rawQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}, "secret", registry)

	var out []domain.Task
	require.NoError(t, client.Request(t.Context(), http.MethodGet, "/api/tasks?done=false", nil, &out))
	require.Equal(t, "done=false&_v=1", rawQuery)
}

func TestClient_DecodesResponseIntoOut(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"t1","title":"water plants"}]`))
	}, "secret", cache.NewRegistry())

	var out []domain.Task
	require.NoError(t, client.Request(t.Context(), http.MethodGet, "/api/tasks", nil, &out))
	require.Len(t, out, 1)
	require.Equal(t, "water plants", out[0].Title)
}

func TestClient_NonSuccessStatusReturnsRequestFailed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"backend exploded"}`))
	}, "secret", cache.NewRegistry())

	err := client.Request(t.Context(), http.MethodGet, "/api/tasks", nil, nil)
	require.ErrorIs(t, err, domain.ErrRequestFailed)
}

func TestClient_MalformedBodyReturnsDecodeFailed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}, "secret", cache.NewRegistry())

	var out []domain.Task
	err := client.Request(t.Context(), http.MethodGet, "/api/tasks", nil, &out)
	require.ErrorIs(t, err, domain.ErrDecodeFailed)
}

func TestClient_UnreachableBackendReturnsNetworkError(t *testing.T) {
	ctrl := gomock.NewController(t)

	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := httpapi.NewClient(server.URL, time.Second, tokenStoreWith(ctrl, "secret"), cache.NewRegistry(), telemetry.NewNoopTracer())

	err := client.Request(t.Context(), http.MethodGet, "/api/tasks", nil, nil)
	require.ErrorIs(t, err, domain.ErrNetwork)
}

func TestClient_TokenStoreFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mocks.NewMockTokenStore(ctrl)
	tokens.EXPECT().Token().Return("", domain.ErrTokenReadFailed)

	client := httpapi.NewClient("http://localhost:0", time.Second, tokens, cache.NewRegistry(), telemetry.NewNoopTracer())

	err := client.Request(t.Context(), http.MethodGet, "/api/tasks", nil, nil)
	require.ErrorIs(t, err, domain.ErrTokenReadFailed)
}
