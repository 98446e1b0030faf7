package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"eventsnap/models"
)

func TestRootPing(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "running", payload["status"])
}

func TestStatusCheckLifecycle(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/status", strings.NewReader(`{"client_name":"kiosk-1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var check models.StatusCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &check))
	require.NotEmpty(t, check.ID)
	require.Equal(t, "kiosk-1", check.ClientName)
	require.False(t, check.Timestamp.IsZero())

	rec = doRequest(router, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var checks []models.StatusCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checks))
	require.Len(t, checks, 1)
}

func TestStatusCheckRequiresClientName(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/status", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(router, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
