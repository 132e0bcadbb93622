// README: Donation aggregate, status definitions, and transition rules.
package donation

import (
	"strings"
	"time"

	"foodbridge/internal/types"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusClaimed   Status = "claimed"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// NormalizeStatus collapses the richer transient vocabulary accepted on input
// into the canonical status set. This is the single normalization point; no
// other layer re-interprets status strings.
func NormalizeStatus(raw string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, true
	case "claimed", "accepted", "picked_up", "in_transit":
		return StatusClaimed, true
	case "closed", "delivered":
		return StatusClosed, true
	case "cancelled":
		return StatusCancelled, true
	case "expired":
		return StatusExpired, true
	}
	return "", false
}

// AllowedTransitions represents the donation state flow as code. The expired
// state is reachable only through the background sweeper, which transitions
// overdue pending donations directly.
var AllowedTransitions = map[Status][]Status{
	StatusPending: {StatusClaimed, StatusCancelled, StatusExpired},
	StatusClaimed: {StatusClosed, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(AllowedTransitions[s]) == 0
}

// StatusLabel renders a status for user-facing messages ("picked_up" -> "Picked Up").
func StatusLabel(s Status) string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

type FoodCategory string

const (
	CategoryCooked     FoodCategory = "cooked"
	CategoryRaw        FoodCategory = "raw"
	CategoryPackaged   FoodCategory = "packaged"
	CategoryBaked      FoodCategory = "baked"
	CategoryBeverages  FoodCategory = "beverages"
	CategoryDairy      FoodCategory = "dairy"
	CategoryFruits     FoodCategory = "fruits"
	CategoryVegetables FoodCategory = "vegetables"
	CategoryOther      FoodCategory = "other"
)

func (c FoodCategory) IsValid() bool {
	switch c {
	case CategoryCooked, CategoryRaw, CategoryPackaged, CategoryBaked,
		CategoryBeverages, CategoryDairy, CategoryFruits, CategoryVegetables, CategoryOther:
		return true
	}
	return false
}

type StorageType string

const (
	StorageRoomTemp     StorageType = "room_temp"
	StorageRefrigerated StorageType = "refrigerated"
	StorageFrozen       StorageType = "frozen"
	StorageHeated       StorageType = "heated"
)

func (s StorageType) IsValid() bool {
	switch s {
	case StorageRoomTemp, StorageRefrigerated, StorageFrozen, StorageHeated:
		return true
	}
	return false
}

type FoodItem struct {
	Name         string       `json:"name"`
	Category     FoodCategory `json:"category"`
	Quantity     string       `json:"quantity"`
	Servings     int          `json:"servings,omitempty"`
	Allergens    []string     `json:"allergens,omitempty"`
	SpecialNotes string       `json:"specialNotes,omitempty"`
}

// GeoJSONPoint mirrors resolved coordinates in GeoJSON order ([lng, lat])
// for spatial indexing by the storage layer.
type GeoJSONPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type PickupAddress struct {
	Street      string        `json:"street"`
	City        string        `json:"city"`
	State       string        `json:"state"`
	ZipCode     string        `json:"zipCode"`
	Country     string        `json:"country"`
	Coordinates *types.Point  `json:"coordinates,omitempty"`
	Location    *GeoJSONPoint `json:"location,omitempty"`
}

type PickupWindow struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

type FoodSafety struct {
	PreparedTime *time.Time  `json:"preparedTime,omitempty"`
	ExpiryTime   *time.Time  `json:"expiryTime,omitempty"`
	StorageType  StorageType `json:"storageType,omitempty"`
	Temperature  *float64    `json:"temperature,omitempty"`
	Packaging    string      `json:"packaging,omitempty"`
}

// StatusEntry is one row of the append-only status history. Every applied
// transition appends exactly one entry; creation counts as the first.
type StatusEntry struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UpdatedBy types.ID  `json:"updatedBy,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

type Impact struct {
	EstimatedServings int `json:"estimatedServings"`
}

type Donation struct {
	ID                 types.ID
	DonorID            types.ID
	ClaimedBy          *types.ID
	FoodItems          []FoodItem
	PickupAddress      PickupAddress
	PickupTime         time.Time
	PickupWindow       *PickupWindow
	FoodSafety         *FoodSafety
	Status             Status
	StatusVersion      int
	StatusHistory      []StatusEntry
	Impact             Impact
	PriorityScore      int
	Notes              string
	CancellationReason string
	CancelledBy        *types.ID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
