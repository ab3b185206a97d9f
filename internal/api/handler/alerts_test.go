package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouseagents/room-finder/internal/alert"
)

func validRequest() *createAlertRequest {
	return &createAlertRequest{
		UserEmail:    "agent@mouseagents.com",
		ClientName:   "Jordan Smith",
		ResortSlug:   "boardwalk-inn",
		RoomCategory: "Water View",
		CheckInDate:  "2025-11-01",
		CheckOutDate: "2025-11-05",
	}
}

func TestBuildAlertValid(t *testing.T) {
	a, code, _ := buildAlert(validRequest())

	require.Empty(t, code)
	require.NotNil(t, a)
	assert.Equal(t, "boardwalk-inn", a.ResortSlug)
	assert.Equal(t, alert.AvailabilityAny, a.AvailabilityType)
	assert.Equal(t, alert.StatusActive, a.Status)
	assert.Equal(t, "2025-11-01", a.CheckIn())
	assert.NotEqual(t, a.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.NotNil(t, a.SelectedDiscountCodes)
}

func TestBuildAlertValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *createAlertRequest)
		wantCode string
	}{
		{"missing email", func(r *createAlertRequest) { r.UserEmail = "" }, "MISSING_EMAIL"},
		{"missing client", func(r *createAlertRequest) { r.ClientName = "" }, "MISSING_CLIENT"},
		{"unknown resort", func(r *createAlertRequest) { r.ResortSlug = "space-mountain-hotel" }, "UNKNOWN_RESORT"},
		{"bad check-in", func(r *createAlertRequest) { r.CheckInDate = "11/01/2025" }, "INVALID_DATE"},
		{"check-out not after check-in", func(r *createAlertRequest) { r.CheckOutDate = "2025-11-01" }, "INVALID_DATES"},
		{"unknown category", func(r *createAlertRequest) { r.RoomCategory = "Moon View" }, "UNKNOWN_CATEGORY"},
		{"bad availability", func(r *createAlertRequest) { r.AvailabilityType = "sometimes" }, "INVALID_AVAILABILITY"},
		{"non-positive max price", func(r *createAlertRequest) { p := 0; r.MaxPrice = &p }, "INVALID_MAX_PRICE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			a, code, msg := buildAlert(req)
			assert.Nil(t, a)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestBuildAlertCategoryCheckedAgainstCheckIn(t *testing.T) {
	// The moderate recode retired the view-based categories; a post-recode
	// check-in can no longer book one.
	req := validRequest()
	req.ResortSlug = "caribbean-beach-resort"
	req.RoomCategory = "Standard View"
	req.CheckInDate = "2026-02-01"
	req.CheckOutDate = "2026-02-05"

	_, code, _ := buildAlert(req)
	assert.Equal(t, "UNKNOWN_CATEGORY", code)

	req.RoomCategory = "Standard Location"
	a, code, _ := buildAlert(req)
	assert.Empty(t, code)
	assert.NotNil(t, a)
}

func TestBuildAlertDiscountedType(t *testing.T) {
	req := validRequest()
	req.AvailabilityType = "discounted"
	req.SelectedDiscountCodes = []string{"11296"}

	a, code, _ := buildAlert(req)
	require.Empty(t, code)
	assert.Equal(t, alert.AvailabilityDiscounted, a.AvailabilityType)
	assert.Equal(t, []string{"11296"}, a.SelectedDiscountCodes)
}
