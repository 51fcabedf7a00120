package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// RoleDescriptor is an authorization unit granted by the backend.
// Authorization equality is by ID only; Name is cosmetic and may be
// translated or renamed server-side without affecting access decisions.
type RoleDescriptor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Well-known roles issued by the inventory backend.
var (
	RoleAdmin            = RoleDescriptor{ID: 1, Name: "ADMIN"}
	RoleAdminPartnership = RoleDescriptor{ID: 2, Name: "ADMIN_PARTNERSHIP"}
	RoleBasicUser        = RoleDescriptor{ID: 3, Name: "BASIC_USER"}
)

// RoleByID resolves a well-known role by its ID. Unknown IDs yield a
// descriptor with an empty Name; equality stays ID-based either way.
func RoleByID(id int) RoleDescriptor {
	for _, r := range []RoleDescriptor{RoleAdmin, RoleAdminPartnership, RoleBasicUser} {
		if r.ID == id {
			return r
		}
	}
	return RoleDescriptor{ID: id}
}

// Claims is the decoded identity/authorization data carried by an access
// token. It is always derived from the current token, never mutated
// independently.
type Claims struct {
	UserID string           `json:"user_id"`
	Roles  []RoleDescriptor `json:"roles"`
}

// HasAnyRole reports whether the intersection between the granted roles and
// the required set is non-empty. Comparison is by ID. An empty required set
// never matches.
func (c Claims) HasAnyRole(required ...RoleDescriptor) bool {
	for _, req := range required {
		for _, granted := range c.Roles {
			if granted.ID == req.ID {
				return true
			}
		}
	}
	return false
}

// IsBasicOnly reports whether the claims grant BASIC_USER and no
// administrative role. Drives the simplified-view redirect on home.
func (c Claims) IsBasicOnly() bool {
	basic := false
	for _, r := range c.Roles {
		switch r.ID {
		case RoleBasicUser.ID:
			basic = true
		case RoleAdmin.ID, RoleAdminPartnership.ID:
			return false
		}
	}
	return basic
}

// UserData is the lightweight profile blob stored beside the token so UI
// decisions don't require re-decoding the token each time.
type UserData struct {
	FirstAccess     bool   `json:"firstAccess"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	PartnershipTerm string `json:"partnershipTerm,omitempty"`
}

// Session is the server-side record persisted for an authenticated user.
// ID is an opaque session identifier; AccessToken is the backend bearer
// token exactly as returned by the token endpoint.
type Session struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Claims      Claims    `json:"claims"`
	UserData    UserData  `json:"user_data"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// FirstAccessPending reports whether the user must complete the forced
// password change before using the rest of the system.
func (s Session) FirstAccessPending() bool { return s.UserData.FirstAccess }

// StateKind tags the outcome of resolving a session.
type StateKind int

const (
	// StateNone means no session exists (no token stored).
	StateNone StateKind = iota
	// StateInvalid means a session record exists but its token failed to
	// decode. Kept distinct from StateNone so callers can decide
	// deliberately; the route guard maps both to "not authenticated".
	StateInvalid
	// StateValid means the session holds a structurally valid token with
	// decoded claims.
	StateValid
)

// SessionState is the tagged result of a session lookup.
type SessionState struct {
	Kind    StateKind
	Session Session // populated when Kind == StateValid
}

// Authenticated reports whether the state carries a usable session.
func (st SessionState) Authenticated() bool { return st.Kind == StateValid }
