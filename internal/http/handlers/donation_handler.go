// README: Donation endpoints — creation, lifecycle, claims, queues, stats.
package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"foodbridge/internal/geo"
	"foodbridge/internal/http/middleware"
	"foodbridge/internal/modules/donation"
	"foodbridge/internal/types"
)

type DonationHandler struct {
	donations *donation.Service
}

func NewDonationHandler(svc *donation.Service) *DonationHandler {
	return &DonationHandler{donations: svc}
}

type createDonationReq struct {
	FoodItems         []donation.FoodItem    `json:"foodItems"`
	PickupAddress     map[string]any         `json:"pickupAddress"`
	PickupTime        string                 `json:"pickupTime"`
	PickupWindow      *pickupWindowReq       `json:"pickupWindow"`
	FoodSafety        *donation.FoodSafety   `json:"foodSafety"`
	Notes             string                 `json:"notes"`
	EstimatedServings float64                `json:"estimatedServings"`
	Impact            *struct {
		EstimatedServings float64 `json:"estimatedServings"`
	} `json:"impact"`
}

type pickupWindowReq struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (h *DonationHandler) Create(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)

	var req createDonationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	pickupTime, ok := parseTime(req.PickupTime)
	if !ok {
		writeError(c, http.StatusBadRequest, "Invalid pickup time format")
		return
	}

	cmd := donation.CreateCommand{
		Actor:            actor,
		FoodItems:        req.FoodItems,
		Address:          parseAddress(req.PickupAddress),
		PickupTime:       pickupTime,
		FoodSafety:       req.FoodSafety,
		Notes:            req.Notes,
		ProvidedServings: req.EstimatedServings,
	}
	if cmd.ProvidedServings <= 0 && req.Impact != nil {
		cmd.ProvidedServings = req.Impact.EstimatedServings
	}
	if req.PickupWindow != nil {
		window := &donation.PickupWindow{}
		if t, ok := parseTime(req.PickupWindow.Start); ok {
			window.Start = &t
		}
		if t, ok := parseTime(req.PickupWindow.End); ok {
			window.End = &t
		}
		cmd.PickupWindow = window
	}

	d, err := h.donations.Create(c.Request.Context(), cmd)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeMessage(c, http.StatusCreated, "Donation created successfully", donationView(d))
}

func (h *DonationHandler) List(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)
	list, err := h.donations.List(c.Request.Context(), actor)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeList(c, donationViews(list), len(list))
}

func (h *DonationHandler) Get(c *gin.Context) {
	d, err := h.donations.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeData(c, http.StatusOK, donationView(d))
}

type updateStatusReq struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *DonationHandler) UpdateStatus(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Status) == "" {
		writeError(c, http.StatusBadRequest, "Status is required")
		return
	}

	d, err := h.donations.UpdateStatus(c.Request.Context(), donation.UpdateStatusCommand{
		ID:     types.ID(c.Param("id")),
		Actor:  actor,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Donation status updated", donationView(d))
}

func (h *DonationHandler) Claim(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)

	claimID, d, err := h.donations.Claim(c.Request.Context(), donation.ClaimCommand{
		ID:    types.ID(c.Param("id")),
		Actor: actor,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Donation claimed successfully", gin.H{
		"claimId":  claimID,
		"donation": donationView(d),
	})
}

func (h *DonationHandler) Available(c *gin.Context) {
	list, err := h.donations.AvailableForVolunteer(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeList(c, donationViews(list), len(list))
}

func (h *DonationHandler) NgoAvailable(c *gin.Context) {
	list, err := h.donations.AvailableForNGO(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeList(c, donationViews(list), len(list))
}

// PublicMap serves the unauthenticated map view.
func (h *DonationHandler) PublicMap(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	list, err := h.donations.PublicMap(c.Request.Context(), limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeList(c, donationViews(list), len(list))
}

func (h *DonationHandler) Nearby(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil || !validCoords(lat, lng) {
		writeError(c, http.StatusBadRequest, "Valid lat and lng query parameters are required")
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "10"), 64)
	if err != nil || radius <= 0 {
		radius = 10
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	origin := types.Point{Lat: lat, Lng: lng}
	list, err := h.donations.Nearby(c.Request.Context(), origin, radius, limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	views := make([]nearbyWire, 0, len(list))
	for _, d := range list {
		view := nearbyWire{donationWire: donationView(d)}
		if d.PickupAddress.Coordinates != nil {
			km := geo.DistanceKm(origin, *d.PickupAddress.Coordinates)
			view.DistanceKm = &km
		}
		views = append(views, view)
	}
	writeList(c, views, len(views))
}

type nearbyWire struct {
	donationWire
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

func (h *DonationHandler) Overview(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)
	stats, err := h.donations.Overview(c.Request.Context(), actor)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeData(c, http.StatusOK, stats)
}

func (h *DonationHandler) WeeklyTrends(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)
	trend, err := h.donations.WeeklyTrends(c.Request.Context(), actor)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeList(c, trend, len(trend))
}

func (h *DonationHandler) AdminOverview(c *gin.Context) {
	stats, err := h.donations.AdminOverview(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeData(c, http.StatusOK, stats)
}

// parseAddress tolerates the field aliases mobile clients have shipped with
// over time. Unknown keys are ignored; missing fields come back empty and
// fail validation downstream.
func parseAddress(raw map[string]any) geo.Address {
	addr := geo.Address{
		Street:  firstString(raw, "street", "addressLine1", "address", "line1"),
		City:    firstString(raw, "city", "town"),
		State:   firstString(raw, "state", "province"),
		ZipCode: firstString(raw, "zipCode", "zip", "postalCode", "pincode"),
		Country: firstString(raw, "country"),
	}
	if p, ok := pointFromAny(raw["coordinates"]); ok {
		addr.Coordinates = p
	} else if p, ok := pointFromAny(raw["location"]); ok {
		addr.Coordinates = p
	} else if p, ok := pointFromAny(raw); ok {
		addr.Coordinates = p
	}
	return addr
}

func firstString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k].(string); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

// pointFromAny accepts {lat,lng} objects with common key aliases and
// GeoJSON-style {coordinates:[lng,lat]} payloads.
func pointFromAny(v any) (*types.Point, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}

	if coords, ok := m["coordinates"].([]any); ok && len(coords) == 2 {
		lng, lngOK := numberFromAny(coords[0])
		lat, latOK := numberFromAny(coords[1])
		if lngOK && latOK && validCoords(lat, lng) {
			return &types.Point{Lat: lat, Lng: lng}, true
		}
	}

	lat, latOK := firstNumber(m, "lat", "latitude")
	lng, lngOK := firstNumber(m, "lng", "lon", "longitude")
	if latOK && lngOK && validCoords(lat, lng) {
		return &types.Point{Lat: lat, Lng: lng}, true
	}
	return nil, false
}

func firstNumber(raw map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if n, ok := numberFromAny(v); ok {
				return n, true
			}
		}
	}
	return 0, false
}

func numberFromAny(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func validCoords(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// donationWire is the JSON shape donations travel as.
type donationWire struct {
	ID                 types.ID                `json:"id"`
	Donor              types.ID                `json:"donor"`
	ClaimedBy          *types.ID               `json:"claimedBy,omitempty"`
	FoodItems          []donation.FoodItem     `json:"foodItems"`
	PickupAddress      donation.PickupAddress  `json:"pickupAddress"`
	PickupTime         time.Time               `json:"pickupTime"`
	PickupWindow       *donation.PickupWindow  `json:"pickupWindow,omitempty"`
	FoodSafety         *donation.FoodSafety    `json:"foodSafety,omitempty"`
	Status             donation.Status         `json:"status"`
	StatusHistory      []donation.StatusEntry  `json:"statusHistory"`
	Impact             donation.Impact         `json:"impact"`
	PriorityScore      int                     `json:"priorityScore"`
	Notes              string                  `json:"notes,omitempty"`
	CancellationReason string                  `json:"cancellationReason,omitempty"`
	CancelledBy        *types.ID               `json:"cancelledBy,omitempty"`
	CreatedAt          time.Time               `json:"createdAt"`
	UpdatedAt          time.Time               `json:"updatedAt"`
}

func donationView(d *donation.Donation) donationWire {
	return donationWire{
		ID:                 d.ID,
		Donor:              d.DonorID,
		ClaimedBy:          d.ClaimedBy,
		FoodItems:          d.FoodItems,
		PickupAddress:      d.PickupAddress,
		PickupTime:         d.PickupTime,
		PickupWindow:       d.PickupWindow,
		FoodSafety:         d.FoodSafety,
		Status:             d.Status,
		StatusHistory:      d.StatusHistory,
		Impact:             d.Impact,
		PriorityScore:      d.PriorityScore,
		Notes:              d.Notes,
		CancellationReason: d.CancellationReason,
		CancelledBy:        d.CancelledBy,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func donationViews(list []*donation.Donation) []donationWire {
	out := make([]donationWire, 0, len(list))
	for _, d := range list {
		out = append(out, donationView(d))
	}
	return out
}
