package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mouseagents/room-finder/internal/alert"
	"github.com/mouseagents/room-finder/internal/api/respond"
	"github.com/mouseagents/room-finder/internal/catalog"
)

const defaultListLimit = 100

// alertJSON is the wire shape for alerts in API responses.
type alertJSON struct {
	ID                    uuid.UUID  `json:"id"`
	UserEmail             string     `json:"user_email"`
	ClientName            string     `json:"client_name"`
	ReservationNumber     *string    `json:"reservation_number,omitempty"`
	ResortSlug            string     `json:"resort_slug"`
	RoomCategory          string     `json:"room_category"`
	CheckInDate           string     `json:"check_in_date"`
	CheckOutDate          string     `json:"check_out_date"`
	SelectedDiscountCodes []string   `json:"selected_discount_codes"`
	AvailabilityType      string     `json:"availability_type"`
	MaxPrice              *int       `json:"max_price,omitempty"`
	Status                string     `json:"status"`
	LastNotificationSent  *time.Time `json:"last_notification_sent,omitempty"`
	LastCheckedAt         *time.Time `json:"last_checked_at,omitempty"`
}

func toAlertJSON(a *alert.Alert) alertJSON {
	codes := a.SelectedDiscountCodes
	if codes == nil {
		codes = []string{}
	}
	return alertJSON{
		ID:                    a.ID,
		UserEmail:             a.UserEmail,
		ClientName:            a.ClientName,
		ReservationNumber:     a.ReservationNumber,
		ResortSlug:            a.ResortSlug,
		RoomCategory:          a.RoomCategory,
		CheckInDate:           a.CheckIn(),
		CheckOutDate:          a.CheckOut(),
		SelectedDiscountCodes: codes,
		AvailabilityType:      string(a.AvailabilityType),
		MaxPrice:              a.MaxPrice,
		Status:                string(a.Status),
		LastNotificationSent:  a.LastNotificationSent,
		LastCheckedAt:         a.LastCheckedAt,
	}
}

// createAlertRequest is the POST body for new alerts.
type createAlertRequest struct {
	UserEmail             string   `json:"user_email"`
	ClientName            string   `json:"client_name"`
	ReservationNumber     *string  `json:"reservation_number"`
	ResortSlug            string   `json:"resort_slug"`
	RoomCategory          string   `json:"room_category"`
	CheckInDate           string   `json:"check_in_date"`
	CheckOutDate          string   `json:"check_out_date"`
	SelectedDiscountCodes []string `json:"selected_discount_codes"`
	AvailabilityType      string   `json:"availability_type"`
	MaxPrice              *int     `json:"max_price"`
}

// ListAlerts returns the most recent alerts.
func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 1000 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be between 1 and 1000")
			return
		}
		limit = n
	}

	alerts, err := h.store.List(r.Context(), limit)
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "DB_ERROR", "Failed to list alerts", err.Error())
		return
	}

	out := make([]alertJSON, 0, len(alerts))
	for i := range alerts {
		out = append(out, toAlertJSON(&alerts[i]))
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"alerts": out,
		"count":  len(out),
	})
}

// CreateAlert validates and persists a new alert.
func (h *Handler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req createAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON")
		return
	}

	a, errCode, errMsg := buildAlert(&req)
	if errCode != "" {
		respond.WriteError(w, http.StatusBadRequest, errCode, errMsg)
		return
	}

	if err := h.store.Insert(r.Context(), a); err != nil {
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "DB_ERROR", "Failed to create alert", err.Error())
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, toAlertJSON(a))
}

// DeactivateAlert flips an alert to inactive.
func (h *Handler) DeactivateAlert(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Alert id must be a UUID")
		return
	}

	if err := h.store.Deactivate(r.Context(), id); err != nil {
		respond.WriteErrorDetail(w, http.StatusNotFound, "NOT_FOUND", "Alert not found or already inactive", err.Error())
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"id":     id,
		"status": string(alert.StatusInactive),
	})
}

// ListResorts returns the resort catalog with categories valid for an
// optional check_in query date (defaults to today).
func (h *Handler) ListResorts(w http.ResponseWriter, r *http.Request) {
	checkIn := time.Now().UTC()
	if s := r.URL.Query().Get("check_in"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_DATE", "check_in must be YYYY-MM-DD")
			return
		}
		checkIn = t
	}

	type resortJSON struct {
		Slug        string   `json:"slug"`
		DisplayName string   `json:"display_name"`
		Store       string   `json:"store"`
		Categories  []string `json:"categories"`
	}

	resorts := catalog.Resorts()
	out := make([]resortJSON, 0, len(resorts))
	for _, res := range resorts {
		out = append(out, resortJSON{
			Slug:        res.Slug,
			DisplayName: res.DisplayName,
			Store:       string(res.Store),
			Categories:  res.Categories(checkIn),
		})
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"resorts": out,
		"count":   len(out),
	})
}

// buildAlert validates a create request and assembles the alert row. The
// second and third returns are an error code and message when validation
// fails.
func buildAlert(req *createAlertRequest) (*alert.Alert, string, string) {
	if req.UserEmail == "" {
		return nil, "MISSING_EMAIL", "user_email is required"
	}
	if req.ClientName == "" {
		return nil, "MISSING_CLIENT", "client_name is required"
	}

	res, ok := catalog.Lookup(req.ResortSlug)
	if !ok {
		return nil, "UNKNOWN_RESORT", "resort_slug is not a known resort"
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		return nil, "INVALID_DATE", "check_in_date must be YYYY-MM-DD"
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		return nil, "INVALID_DATE", "check_out_date must be YYYY-MM-DD"
	}
	if !checkOut.After(checkIn) {
		return nil, "INVALID_DATES", "check_out_date must be after check_in_date"
	}

	if catalog.Resolve(res.Slug, req.RoomCategory, checkIn) == nil {
		return nil, "UNKNOWN_CATEGORY", "room_category is not bookable at this resort for the check-in date"
	}

	availability := alert.AvailabilityAny
	if req.AvailabilityType != "" {
		availability, err = alert.ParseAvailabilityType(req.AvailabilityType)
		if err != nil {
			return nil, "INVALID_AVAILABILITY", "availability_type must be 'any' or 'discounted'"
		}
	}

	if req.MaxPrice != nil && *req.MaxPrice <= 0 {
		return nil, "INVALID_MAX_PRICE", "max_price must be positive"
	}

	codes := req.SelectedDiscountCodes
	if codes == nil {
		codes = []string{}
	}

	return &alert.Alert{
		ID:                    uuid.New(),
		UserEmail:             req.UserEmail,
		ClientName:            req.ClientName,
		ReservationNumber:     req.ReservationNumber,
		ResortSlug:            req.ResortSlug,
		RoomCategory:          req.RoomCategory,
		CheckInDate:           checkIn,
		CheckOutDate:          checkOut,
		SelectedDiscountCodes: codes,
		AvailabilityType:      availability,
		MaxPrice:              req.MaxPrice,
		Status:                alert.StatusActive,
	}, "", ""
}
