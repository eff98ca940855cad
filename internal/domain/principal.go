package domain

const RoleAdmin = "admin"

// Principal is the authenticated identity supplied by the upstream auth
// middleware. The core trusts it and performs no credential checks.
type Principal struct {
	UserID string
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// MayAccess reports whether the principal may read or mutate a booking
// owned by buyerID.
func (p Principal) MayAccess(buyerID string) bool {
	return p.UserID == buyerID || p.IsAdmin()
}
