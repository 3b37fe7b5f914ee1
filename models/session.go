package models

// Session status values as reported by the identity provider.
const (
	SessionAuthenticated   = "authenticated"
	SessionUnauthenticated = "unauthenticated"
	SessionLoading         = "loading"
)

// User types carried on a session.
const (
	UserTypeCustomer = "customer"
	UserTypeBusiness = "business"
	UserTypeAdmin    = "admin"
)

// Session is the cached auth state injected into the composer at submit time.
// It is a snapshot, not re-verified against the server before use.
type Session struct {
	Status   string `json:"status"`
	UserID   string `json:"userId,omitempty"`
	UserType string `json:"userType,omitempty"`
	Token    string `json:"token,omitempty"`
}

// Authenticated reports whether the session snapshot allows a submit to fire.
func (s Session) Authenticated() bool {
	return s.Status == SessionAuthenticated
}
