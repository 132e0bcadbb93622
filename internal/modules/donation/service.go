// README: Donation service implements the lifecycle state machine, policy checks, and side effects.
package donation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"foodbridge/internal/geo"
	"foodbridge/internal/metrics"
	"foodbridge/internal/types"
)

// Realtime event names published on every relevant lifecycle change.
const (
	EventNewDonation   = "newDonation"
	EventStatusUpdated = "donationStatusUpdated"
	EventClaimed       = "donationClaimed"
)

// Directory supplies donor profiles and impact accounting. Backed by the
// user store; the core never validates credentials itself.
type Directory interface {
	DonorProfile(ctx context.Context, id types.ID) (*DonorProfile, error)
	RecordDonation(ctx context.Context, id types.ID, servings int) error
	CountUsersByRole(ctx context.Context) (UserCounts, error)
}

type UserCounts struct {
	Total      int `json:"total"`
	Volunteers int `json:"volunteers"`
	NGOs       int `json:"ngos"`
}

// PickupAssignment is the record created when a volunteer first accepts a
// pending donation.
type PickupAssignment struct {
	DonationID  types.ID
	DonorID     types.ID
	VolunteerID types.ID
	PickupTime  time.Time
}

// PickupRecorder links the donation lifecycle to volunteer pickup records.
type PickupRecorder interface {
	// ActiveVolunteer returns the volunteer of the non-cancelled pickup for
	// a donation, if one exists.
	ActiveVolunteer(ctx context.Context, donationID types.ID) (types.ID, bool, error)
	// Assign creates an assigned pickup; a concurrent insert for the same
	// donation surfaces as ErrAlreadyAssigned.
	Assign(ctx context.Context, rec PickupAssignment) error
	// Complete marks the volunteer's pickup completed; false means the
	// volunteer holds no pickup for this donation.
	Complete(ctx context.Context, donationID, volunteerID types.ID) (bool, error)
	DonationIDs(ctx context.Context, volunteerID types.ID) ([]types.ID, error)
}

// ClaimLedger arbitrates NGO claims. Create must enforce the one-claim-per
// (donation, ngo) rule atomically and report duplicates as ErrAlreadyClaimed.
type ClaimLedger interface {
	Create(ctx context.Context, donationID, ngoID types.ID) (types.ID, error)
	// Discard removes a claim that lost the donation-level race so it never
	// reaches the admin approval queue.
	Discard(ctx context.Context, id types.ID) error
	DonationIDs(ctx context.Context, ngoID types.ID) ([]types.ID, error)
}

// Notice is an in-app notification record. Delivery is fire-and-forget.
type Notice struct {
	UserID     types.ID
	Title      string
	Message    string
	Type       string
	DonationID types.ID
	Status     string
}

type Notifier interface {
	Push(ctx context.Context, n Notice)
}

// Broadcaster fans lifecycle events out to connected clients. Failures are
// swallowed by the implementation and never block the core operation.
type Broadcaster interface {
	Publish(ctx context.Context, event string, payload any)
}

// GeoIndexer tracks pending donations by coordinates for nearby lookups.
// Entries must be removed whenever a donation leaves pending, including the
// bulk expiry sweep. Implemented by GeoIndex.
type GeoIndexer interface {
	Add(ctx context.Context, id types.ID, p types.Point) error
	Remove(ctx context.Context, id types.ID) error
	Nearby(ctx context.Context, p types.Point, radiusKm float64, limit int) ([]types.ID, error)
}

type Service struct {
	store     *Store
	resolver  *geo.Resolver
	geoIndex  GeoIndexer
	users     Directory
	pickups   PickupRecorder
	claims    ClaimLedger
	notify    Notifier
	broadcast Broadcaster
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

type ServiceDeps struct {
	Store     *Store
	Resolver  *geo.Resolver
	GeoIndex  GeoIndexer
	Users     Directory
	Pickups   PickupRecorder
	Claims    ClaimLedger
	Notify    Notifier
	Broadcast Broadcaster
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

func NewService(deps ServiceDeps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:     deps.Store,
		resolver:  deps.Resolver,
		geoIndex:  deps.GeoIndex,
		users:     deps.Users,
		pickups:   deps.Pickups,
		claims:    deps.Claims,
		notify:    deps.Notify,
		broadcast: deps.Broadcast,
		metrics:   deps.Metrics,
		logger:    logger,
	}
}

type CreateCommand struct {
	Actor            types.Principal
	FoodItems        []FoodItem
	Address          geo.Address
	PickupTime       time.Time
	PickupWindow     *PickupWindow
	FoodSafety       *FoodSafety
	Notes            string
	ProvidedServings float64
}

// Create runs the full creation pipeline: payload normalization, donor
// policy enforcement, coordinate resolution, and persistence.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Donation, error) {
	now := time.Now()

	items := normalizeFoodItems(cmd.FoodItems)
	if len(items) == 0 {
		return nil, validationErr("At least one valid food item is required")
	}
	if cmd.Address.Street == "" || cmd.Address.City == "" || cmd.Address.State == "" || cmd.Address.ZipCode == "" {
		return nil, validationErr("Pickup address is incomplete")
	}
	if cmd.PickupTime.IsZero() {
		return nil, validationErr("Invalid pickup time format")
	}
	if !cmd.PickupTime.After(now) {
		return nil, validationErr("Pickup time must be in the future")
	}

	profile, err := s.users.DonorProfile(ctx, cmd.Actor.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	estimatedServings := NormalizeEstimatedServings(cmd.ProvidedServings, items)

	// Soft donor restrictions: protect operations from abuse while still
	// allowing growth. Admins are exempt.
	if profile.Role != string(types.RoleAdmin) {
		if violation, err := s.checkDonorPolicy(ctx, cmd.Actor.ID, *profile, len(items), estimatedServings, now); err != nil {
			return nil, err
		} else if violation != nil {
			if s.metrics != nil {
				s.metrics.PolicyRejections.WithLabelValues(violation.Reason).Inc()
			}
			return nil, &PolicyError{Violation: violation}
		}
	}

	address := cmd.Address
	coords := s.resolver.Resolve(ctx, address)

	pickupAddress := PickupAddress{
		Street:  address.Street,
		City:    address.City,
		State:   address.State,
		ZipCode: address.ZipCode,
		Country: address.Country,
	}
	if pickupAddress.Country == "" {
		pickupAddress.Country = s.resolver.DefaultCountry()
	}
	if coords != nil {
		pickupAddress.Coordinates = coords
		pickupAddress.Location = &GeoJSONPoint{Type: "Point", Coordinates: [2]float64{coords.Lng, coords.Lat}}
	}

	d := &Donation{
		ID:            types.ID(uuid.NewString()),
		DonorID:       cmd.Actor.ID,
		FoodItems:     items,
		PickupAddress: pickupAddress,
		PickupTime:    cmd.PickupTime,
		PickupWindow:  normalizePickupWindow(cmd.PickupWindow),
		FoodSafety:    normalizeFoodSafety(cmd.FoodSafety),
		Status:        StatusPending,
		StatusHistory: []StatusEntry{{Status: StatusPending, Timestamp: now, Notes: "Donation created"}},
		Impact:        Impact{EstimatedServings: estimatedServings},
		Notes:         strings.TrimSpace(cmd.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	d.PriorityScore = PriorityScore(d, now)

	if err := s.store.Create(ctx, d); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DonationsCreated.Inc()
	}
	if s.geoIndex != nil && coords != nil {
		if err := s.geoIndex.Add(ctx, d.ID, *coords); err != nil {
			s.logger.Warn("geo index add failed", "donation", d.ID, "error", err)
		}
	}
	if s.broadcast != nil {
		s.broadcast.Publish(ctx, EventNewDonation, d)
	}
	if err := s.users.RecordDonation(ctx, cmd.Actor.ID, estimatedServings); err != nil {
		s.logger.Warn("donor impact update failed", "donor", cmd.Actor.ID, "error", err)
	}

	return d, nil
}

func (s *Service) checkDonorPolicy(ctx context.Context, donor types.ID, profile DonorProfile, itemCount, estimatedServings int, now time.Time) (*PolicyViolation, error) {
	policy := PolicyFor(ClassifyTier(profile))

	// The cheap structural checks run before any counting queries.
	if v := CheckPolicy(policy, itemCount, estimatedServings, CreationSnapshot{}, now); v != nil &&
		(v.Reason == ViolationMaxItems || v.Reason == ViolationMaxServings) {
		return v, nil
	}

	dayStart, dayEnd := DayRange(now)
	donationsToday, err := s.store.CountCreatedBetween(ctx, donor, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	pending, err := s.store.CountPendingByDonor(ctx, donor)
	if err != nil {
		return nil, err
	}
	lastAt, err := s.store.LastCreatedAt(ctx, donor)
	if err != nil {
		return nil, err
	}

	snap := CreationSnapshot{DonationsToday: donationsToday, PendingDonations: pending, LastDonationAt: lastAt}
	return CheckPolicy(policy, itemCount, estimatedServings, snap, now), nil
}

type UpdateStatusCommand struct {
	ID     types.ID
	Actor  types.Principal
	Status string
	Notes  string
}

// UpdateStatus validates and applies a role-gated status transition,
// appending a history entry and firing side effects on success.
func (s *Service) UpdateStatus(ctx context.Context, cmd UpdateStatusCommand) (*Donation, error) {
	d, err := s.store.Get(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	target, ok := NormalizeStatus(cmd.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}
	// Expiry belongs to the sweeper; a requested "expired" counts as a
	// cancellation on this endpoint.
	if target == StatusExpired {
		target = StatusCancelled
	}

	notes := strings.TrimSpace(cmd.Notes)
	actor := cmd.Actor

	switch actor.Role {
	case types.RoleDonor:
		if d.DonorID != actor.ID {
			return nil, ErrNotOwner
		}
		if target != StatusCancelled {
			return nil, ErrDonorCancelOnly
		}
	case types.RoleVolunteer:
		if target != StatusClaimed && target != StatusClosed {
			return nil, ErrVolunteerAction
		}
		if target == StatusClaimed && d.Status != StatusPending {
			return nil, ErrNotPending
		}
	case types.RoleNGO:
		if target != StatusClaimed {
			return nil, ErrNgoAction
		}
	}

	if !CanTransition(d.Status, target) {
		return nil, ErrInvalidState
	}

	if actor.Role == types.RoleVolunteer {
		switch target {
		case StatusClaimed:
			volunteer, exists, err := s.pickups.ActiveVolunteer(ctx, d.ID)
			if err != nil {
				return nil, err
			}
			if exists && volunteer != actor.ID {
				return nil, ErrAlreadyAssigned
			}
			if !exists {
				err := s.pickups.Assign(ctx, PickupAssignment{
					DonationID:  d.ID,
					DonorID:     d.DonorID,
					VolunteerID: actor.ID,
					PickupTime:  d.PickupTime,
				})
				if err != nil {
					return nil, err
				}
			}
		case StatusClosed:
			completed, err := s.pickups.Complete(ctx, d.ID, actor.ID)
			if err != nil {
				return nil, err
			}
			if !completed {
				return nil, ErrNotAssigned
			}
		}
	}

	if err := s.applyTransition(ctx, d, target, actor.ID, actor.Role, notes, nil); err != nil {
		return nil, err
	}

	if actor.Role == types.RoleVolunteer && target == StatusClaimed && s.notify != nil {
		s.notify.Push(ctx, Notice{
			UserID:     d.DonorID,
			Title:      "Volunteer Accepted Pickup",
			Message:    "A volunteer has accepted your donation pickup request.",
			Type:       "info",
			DonationID: d.ID,
			Status:     string(target),
		})
	}

	return d, nil
}

type ClaimCommand struct {
	ID    types.ID
	Actor types.Principal
}

// Claim arbitrates an NGO claim: at most one claim per (donation, ngo) for
// all time, and at most one active claim per donation via the claimed-by
// guard on the donation itself.
func (s *Service) Claim(ctx context.Context, cmd ClaimCommand) (types.ID, *Donation, error) {
	d, err := s.store.Get(ctx, cmd.ID)
	if err != nil {
		return "", nil, err
	}
	if d.Status != StatusPending {
		return "", nil, ErrNotClaimable
	}
	if d.ClaimedBy != nil {
		return "", nil, ErrAlreadyClaimed
	}

	claimID, err := s.claims.Create(ctx, d.ID, cmd.Actor.ID)
	if err != nil {
		return "", nil, err
	}

	if err := s.applyTransition(ctx, d, StatusClaimed, cmd.Actor.ID, cmd.Actor.Role, "Claimed by NGO", &claimID); err != nil {
		// The claim row was written before the donation update; drop it so a
		// losing racer leaves nothing behind in the approval queue.
		if derr := s.claims.Discard(ctx, claimID); derr != nil {
			s.logger.Error("discard orphaned claim", "claim", claimID, "err", derr)
		}
		return "", nil, err
	}

	if s.broadcast != nil {
		s.broadcast.Publish(ctx, EventClaimed, map[string]any{"donationId": d.ID, "ngo": cmd.Actor.ID})
	}
	if s.notify != nil {
		s.notify.Push(ctx, Notice{
			UserID:     d.DonorID,
			Title:      "Donation Claimed",
			Message:    "Your donation has been claimed by an NGO and is pending approval.",
			Type:       "info",
			DonationID: d.ID,
			Status:     "pending_approval",
		})
	}

	return claimID, d, nil
}

// ClaimFromAssignment moves a pending donation to claimed when an admin
// hands its pickup to a volunteer, keeping the lifecycle in step with the
// pickup ledger. A donation that is already claimed is left as is.
func (s *Service) ClaimFromAssignment(ctx context.Context, donationID, volunteerID types.ID) error {
	d, err := s.store.Get(ctx, donationID)
	if err != nil {
		return err
	}
	if d.Status == StatusClaimed {
		return nil
	}
	if !CanTransition(d.Status, StatusClaimed) {
		return ErrNotPending
	}
	return s.applyTransition(ctx, d, StatusClaimed, volunteerID, types.RoleVolunteer, "Volunteer assigned by admin", nil)
}

// CloseFromPickup transitions a donation to closed after its pickup was
// completed through the pickup endpoints. The pickup record itself is
// already updated by the caller.
func (s *Service) CloseFromPickup(ctx context.Context, donationID, volunteerID types.ID) error {
	d, err := s.store.Get(ctx, donationID)
	if err != nil {
		return err
	}
	if d.Status == StatusClosed {
		return nil
	}
	if !CanTransition(d.Status, StatusClosed) {
		return ErrInvalidState
	}
	return s.applyTransition(ctx, d, StatusClosed, volunteerID, types.RoleVolunteer, "Pickup completed", nil)
}

// applyTransition performs the guarded write and the side effects every
// successful transition shares. d is mutated to reflect the new state.
func (s *Service) applyTransition(ctx context.Context, d *Donation, target Status, actorID types.ID, role types.Role, notes string, claimedBy *types.ID) error {
	now := time.Now()
	from := d.Status

	entryNotes := notes
	if entryNotes == "" {
		entryNotes = fmt.Sprintf("Status changed to %s", StatusLabel(target))
	}
	history := append(append([]StatusEntry(nil), d.StatusHistory...), StatusEntry{
		Status:    target,
		Timestamp: now,
		UpdatedBy: actorID,
		Notes:     entryNotes,
	})

	score := 0
	if target == StatusPending {
		shadow := *d
		shadow.Status = target
		score = PriorityScore(&shadow, now)
	}

	upd := TransitionUpdate{To: target, PriorityScore: score, History: history, ClaimedBy: claimedBy}
	if target == StatusCancelled {
		reason := notes
		if reason == "" {
			reason = d.CancellationReason
		}
		if reason == "" {
			reason = "Cancelled by user"
		}
		actor := actorID
		upd.CancellationReason = &reason
		upd.CancelledBy = &actor
	}

	ok, err := s.store.ApplyTransition(ctx, d.ID, from, d.StatusVersion, upd)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}

	d.Status = target
	d.StatusVersion++
	d.PriorityScore = score
	d.StatusHistory = history
	d.UpdatedAt = now
	if claimedBy != nil {
		d.ClaimedBy = claimedBy
	}
	if upd.CancellationReason != nil {
		d.CancellationReason = *upd.CancellationReason
		d.CancelledBy = upd.CancelledBy
	}

	if s.metrics != nil {
		s.metrics.StatusTransitions.WithLabelValues(string(target)).Inc()
	}
	if s.geoIndex != nil && from == StatusPending && target != StatusPending {
		if err := s.geoIndex.Remove(ctx, d.ID); err != nil {
			s.logger.Warn("geo index remove failed", "donation", d.ID, "error", err)
		}
	}
	if s.broadcast != nil {
		s.broadcast.Publish(ctx, EventStatusUpdated, map[string]any{
			"donationId": d.ID,
			"status":     target,
			"updatedBy":  actorID,
			"role":       role,
		})
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Donation, error) {
	return s.store.Get(ctx, id)
}

// List returns the role-scoped donation list: donors see their own,
// volunteers see donations tied to their pickups, NGOs see donations tied
// to their claims, admins see everything.
func (s *Service) List(ctx context.Context, actor types.Principal) ([]*Donation, error) {
	filter, err := s.scopeFilter(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.store.List(ctx, filter)
}

func (s *Service) scopeFilter(ctx context.Context, actor types.Principal) (Filter, error) {
	switch actor.Role {
	case types.RoleDonor:
		donor := actor.ID
		return Filter{DonorID: &donor}, nil
	case types.RoleVolunteer:
		ids, err := s.pickups.DonationIDs(ctx, actor.ID)
		if err != nil {
			return Filter{}, err
		}
		if ids == nil {
			ids = []types.ID{}
		}
		return Filter{IDs: ids}, nil
	case types.RoleNGO:
		ids, err := s.claims.DonationIDs(ctx, actor.ID)
		if err != nil {
			return Filter{}, err
		}
		if ids == nil {
			ids = []types.ID{}
		}
		return Filter{IDs: ids}, nil
	}
	return Filter{}, nil
}

const (
	publicMapDefaultLimit = 300
	publicMapMinLimit     = 20
	publicMapMaxLimit     = 500
)

// PublicMap returns pending and claimed donations for the unauthenticated
// map view. limit <= 0 selects the default; anything else is clamped.
func (s *Service) PublicMap(ctx context.Context, limit int) ([]*Donation, error) {
	if limit <= 0 {
		limit = publicMapDefaultLimit
	}
	if limit < publicMapMinLimit {
		limit = publicMapMinLimit
	}
	if limit > publicMapMaxLimit {
		limit = publicMapMaxLimit
	}
	return s.store.ListPublicMap(ctx, limit)
}

// Nearby returns pending donations within radiusKm of p, closest first,
// served from the Redis geo index.
func (s *Service) Nearby(ctx context.Context, p types.Point, radiusKm float64, limit int) ([]*Donation, error) {
	if s.geoIndex == nil {
		return []*Donation{}, nil
	}
	if limit <= 0 || limit > publicMapMaxLimit {
		limit = publicMapDefaultLimit
	}
	ids, err := s.geoIndex.Nearby(ctx, p, radiusKm, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*Donation{}, nil
	}
	donations, err := s.store.ListPendingByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[types.ID]*Donation, len(donations))
	for _, d := range donations {
		byID[d.ID] = d
	}
	ordered := make([]*Donation, 0, len(donations))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			ordered = append(ordered, d)
		}
	}
	return ordered, nil
}

func (s *Service) AvailableForVolunteer(ctx context.Context) ([]*Donation, error) {
	return s.store.ListAvailable(ctx, true)
}

func (s *Service) AvailableForNGO(ctx context.Context) ([]*Donation, error) {
	return s.store.ListAvailable(ctx, false)
}

func (s *Service) Overview(ctx context.Context, actor types.Principal) (OverviewStats, error) {
	filter, err := s.scopeFilter(ctx, actor)
	if err != nil {
		return OverviewStats{}, err
	}
	return s.store.Overview(ctx, filter)
}

// WeeklyTrends returns closed-donation counts per day for the trailing
// 7-day window, role-scoped like List.
func (s *Service) WeeklyTrends(ctx context.Context, actor types.Principal) ([]DailyCount, error) {
	filter, err := s.scopeFilter(ctx, actor)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -6)
	return s.store.WeeklyClosed(ctx, filter, since)
}

type AdminStats struct {
	Donations struct {
		Total   int `json:"total"`
		Pending int `json:"pending"`
		Claimed int `json:"claimed"`
		Closed  int `json:"closed"`
	} `json:"donations"`
	Users UserCounts `json:"users"`
}

func (s *Service) AdminOverview(ctx context.Context) (AdminStats, error) {
	var stats AdminStats
	counts, err := s.store.CountsByStatus(ctx)
	if err != nil {
		return stats, err
	}
	for status, n := range counts {
		stats.Donations.Total += n
		switch status {
		case StatusPending:
			stats.Donations.Pending = n
		case StatusClaimed:
			stats.Donations.Claimed = n
		case StatusClosed:
			stats.Donations.Closed = n
		}
	}
	users, err := s.users.CountUsersByRole(ctx)
	if err != nil {
		return stats, err
	}
	stats.Users = users
	return stats, nil
}

func normalizeFoodItems(items []FoodItem) []FoodItem {
	out := make([]FoodItem, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		category := FoodCategory(strings.ToLower(strings.TrimSpace(string(item.Category))))
		quantity := strings.TrimSpace(item.Quantity)
		if name == "" || quantity == "" || !category.IsValid() {
			continue
		}
		normalized := FoodItem{Name: name, Category: category, Quantity: quantity}
		if item.Servings > 0 {
			normalized.Servings = item.Servings
		}
		for _, a := range item.Allergens {
			if a = strings.TrimSpace(a); a != "" {
				normalized.Allergens = append(normalized.Allergens, a)
			}
		}
		if notes := strings.TrimSpace(item.SpecialNotes); notes != "" {
			normalized.SpecialNotes = notes
		}
		out = append(out, normalized)
	}
	return out
}

// normalizePickupWindow drops empty or inverted windows instead of failing.
func normalizePickupWindow(w *PickupWindow) *PickupWindow {
	if w == nil {
		return nil
	}
	if w.Start == nil && w.End == nil {
		return nil
	}
	if w.Start != nil && w.End != nil && w.End.Before(*w.Start) {
		return nil
	}
	return w
}

func normalizeFoodSafety(fs *FoodSafety) *FoodSafety {
	if fs == nil {
		return nil
	}
	normalized := FoodSafety{
		PreparedTime: fs.PreparedTime,
		ExpiryTime:   fs.ExpiryTime,
		Temperature:  fs.Temperature,
		Packaging:    strings.TrimSpace(fs.Packaging),
	}
	if st := StorageType(strings.ToLower(strings.TrimSpace(string(fs.StorageType)))); st.IsValid() {
		normalized.StorageType = st
	}
	if normalized.PreparedTime == nil && normalized.ExpiryTime == nil &&
		normalized.StorageType == "" && normalized.Temperature == nil && normalized.Packaging == "" {
		return nil
	}
	return &normalized
}

// IsDomainError reports whether err is one of the donation sentinels, so
// transport code can distinguish domain failures from infrastructure ones.
func IsDomainError(err error) bool {
	for _, sentinel := range []error{
		ErrNotFound, ErrUserNotFound, ErrInvalidStatus, ErrInvalidState, ErrConflict,
		ErrNotOwner, ErrDonorCancelOnly, ErrVolunteerAction, ErrNgoAction,
		ErrNotPending, ErrNotClaimable, ErrAlreadyAssigned, ErrNotAssigned, ErrAlreadyClaimed,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
