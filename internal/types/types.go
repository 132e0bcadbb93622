// README: Common identifier and geographic value objects used across modules.
package types

// ID is an opaque entity identifier (UUID string in practice).
type ID string

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Role is the authenticated principal's role as asserted by the identity
// provider. The core trusts it completely and never re-validates credentials.
type Role string

const (
	RoleDonor     Role = "donor"
	RoleVolunteer Role = "volunteer"
	RoleNGO       Role = "ngo"
	RoleAdmin     Role = "admin"
)

// Principal is the authenticated caller attached to every request.
type Principal struct {
	ID     ID
	Role   Role
	Status string
}
