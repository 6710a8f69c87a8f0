package domain

// Role names one slot of the access-control triplet.
type Role string

const (
	RoleAdmin1 Role = "admin1"
	RoleAdmin2 Role = "admin2"
	RoleParent Role = "parent"
	// RoleStaker is the account that owns the stake entry being withdrawn.
	RoleStaker Role = "staking account"
)

// Roles holds the three access-control slots. Admin1 is fixed at bootstrap;
// admin1 may overwrite admin2 and parent at any time.
type Roles struct {
	Admin1 Identity
	Admin2 Identity
	Parent Identity
}

// RequireAdmin1 fails with UNAUTHORIZED unless caller holds admin1.
func (r Roles) RequireAdmin1(caller Identity) error {
	if !holds(r.Admin1, caller) {
		return ErrUnauthorized(RoleAdmin1, caller)
	}
	return nil
}

// RequireParent fails with UNAUTHORIZED unless caller holds parent.
func (r Roles) RequireParent(caller Identity) error {
	if !holds(r.Parent, caller) {
		return ErrUnauthorized(RoleParent, caller)
	}
	return nil
}

func holds(slot, caller Identity) bool {
	return !slot.IsZero() && slot == caller
}
