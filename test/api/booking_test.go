package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingBody(date, clock string) map[string]interface{} {
	return map[string]interface{}{
		"hospital":   "City Hospital",
		"department": "Cardiology",
		"doctor":     "Dr. A. Sharma",
		"date":       date,
		"time":       clock,
	}
}

func TestBookingFlow(t *testing.T) {
	date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	createResp := makeRequest("POST", "/appointments", bookingBody(date, "09:00"), authToken)
	require.True(t, createResp.IsSuccess(), "Failed to book appointment: %s", createResp.Message)
	assert.Equal(t, http.StatusCreated, createResp.StatusCode)

	// The identical six-tuple must be rejected.
	dupResp := makeRequest("POST", "/appointments", bookingBody(date, "09:00"), authToken)
	assert.False(t, dupResp.IsSuccess())
	assert.Equal(t, http.StatusConflict, dupResp.StatusCode)

	// A different time on the same day is a new booking.
	otherResp := makeRequest("POST", "/appointments", bookingBody(date, "13:00"), authToken)
	require.True(t, otherResp.IsSuccess(), "Failed to book second slot: %s", otherResp.Message)

	listResp := makeRequest("GET", "/appointments", nil, authToken)
	require.True(t, listResp.IsSuccess(), "Failed to list appointments: %s", listResp.Message)

	appts := listResp.DataList()
	require.GreaterOrEqual(t, len(appts), 2)

	var found bool
	for _, appt := range appts {
		if appt["appointment_date"] == date && appt["appointment_time"] == "09:00 AM" {
			found = true
			break
		}
	}
	assert.True(t, found, "expected booking with 12-hour display time in list")
}

func TestBookingUnknownDoctor(t *testing.T) {
	date := time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	body := bookingBody(date, "09:00")
	body["doctor"] = "Dr. Nobody"

	resp := makeRequest("POST", "/appointments", body, authToken)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBookingRequiresAuth(t *testing.T) {
	date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	resp := makeRequest("POST", "/appointments", bookingBody(date, "17:00"), "")
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
