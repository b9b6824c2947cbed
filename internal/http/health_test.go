package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPinger implements StorePinger with a fixed result
type stubPinger struct {
	err error
}

func (s stubPinger) Ping(_ context.Context) error {
	return s.err
}

func TestDBHealthz_StoreReachable(t *testing.T) {
	h := NewHealthHandler(stubPinger{})

	rec := httptest.NewRecorder()
	h.DBHealthz(rec, httptest.NewRequest(http.MethodGet, "/db/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestDBHealthz_StoreUnreachable(t *testing.T) {
	h := NewHealthHandler(stubPinger{err: errors.New("server selection timeout")})

	rec := httptest.NewRecorder()
	h.DBHealthz(rec, httptest.NewRequest(http.MethodGet, "/db/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"ok":false}`, rec.Body.String())
}

func TestHealthz_ReportsUptime(t *testing.T) {
	h := NewHealthHandler(stubPinger{})

	rec := httptest.NewRecorder()
	h.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK     bool  `json:"ok"`
		Uptime int64 `json:"uptime"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.GreaterOrEqual(t, resp.Uptime, int64(0))
}
