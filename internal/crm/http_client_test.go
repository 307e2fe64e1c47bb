package crm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"crm-reporting/internal/shared/svcerrors"
	"crm-reporting/internal/tokens"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGetter(baseURL string) *httpGetter {
	getter := newHTTPGetter(baseURL, tokens.NewStaticBearer("test-token"))
	getter.policy = retryPolicy{
		maxAttempts: 3,
		baseWait:    time.Millisecond,
		maxWait:     4 * time.Millisecond,
	}
	return getter
}

func TestGet_SucceedsAfterTwoTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	getter := newTestGetter(server.URL)
	body, err := getter.get(context.Background(), "/api/v4/account", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, int32(3), calls.Load(), "expected exactly 3 attempts")
}

func TestGet_ExhaustsRetriesOnPersistentTransientFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	getter := newTestGetter(server.URL)
	_, err := getter.get(context.Background(), "/api/v4/events", nil)
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load(), "expected exactly 3 attempts")

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "CRM_5000", svcErr.Code)
	assert.True(t, svcErr.IsTransient(), "exhausted error keeps the transient classification")
}

func TestGet_PermanentStatusNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	getter := newTestGetter(server.URL)
	_, err := getter.get(context.Background(), "/api/v4/users", nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "permanent failures must not be retried")

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "CRM_4000", svcErr.Code)
	assert.False(t, svcErr.IsTransient())
}

func TestGet_NetworkFailureIsTransient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	getter := newTestGetter(server.URL)
	_, err := getter.get(context.Background(), "/api/v4/account", nil)
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "CRM_5001", svcErr.Code)
	assert.True(t, svcErr.IsTransient())
}

func TestGet_MissingCredentialNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	getter := newHTTPGetter(server.URL, tokens.NewStaticBearer(""))
	_, err := getter.get(context.Background(), "/api/v4/account", nil)
	require.Error(t, err)
	assert.Equal(t, int32(0), calls.Load(), "no request should be issued without a credential")

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "configuration", svcErr.Category)
}

func TestGet_SendsBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	getter := newTestGetter(server.URL)
	_, err := getter.get(context.Background(), "/api/v4/account", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}
