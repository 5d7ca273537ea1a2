package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVitalsUpsertFlow(t *testing.T) {
	date := time.Now().Format("2006-01-02")

	first := makeRequest("POST", "/health/vitals", map[string]interface{}{
		"weight":      62.5,
		"height":      168,
		"bp":          "120/80",
		"symptoms":    "headache",
		"record_date": date,
	}, authToken)
	require.True(t, first.IsSuccess(), "Failed to save vitals: %s", first.Message)

	// Saving again for the same day overwrites the record in place.
	second := makeRequest("POST", "/health/vitals", map[string]interface{}{
		"weight":      63.0,
		"height":      168,
		"bp":          "118/78",
		"symptoms":    "none",
		"record_date": date,
	}, authToken)
	require.True(t, second.IsSuccess(), "Failed to update vitals: %s", second.Message)

	latest := makeRequest("GET", "/health/vitals/latest", nil, authToken)
	require.True(t, latest.IsSuccess(), "Failed to fetch latest vitals: %s", latest.Message)
	assert.Equal(t, "118/78", latest.GetString("bp"))
}

func TestHealthHistoryFlow(t *testing.T) {
	date := time.Now().Format("2006-01-02")

	saveResp := makeRequest("POST", "/health/history", map[string]interface{}{
		"weight":      62.5,
		"height":      168,
		"bp":          "120/80",
		"sugar":       "95",
		"record_date": date,
	}, authToken)
	require.True(t, saveResp.IsSuccess(), "Failed to save history: %s", saveResp.Message)

	listResp := makeRequest("GET", "/health/history", nil, authToken)
	require.True(t, listResp.IsSuccess(), "Failed to list history: %s", listResp.Message)

	recs := listResp.DataList()
	require.NotEmpty(t, recs)
	assert.Equal(t, "95", recs[0]["sugar"])
}

func TestHealthRequiresAuth(t *testing.T) {
	resp := makeRequest("GET", "/health/vitals/latest", nil, "")
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
