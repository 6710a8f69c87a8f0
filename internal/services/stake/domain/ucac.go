package domain

// UcacRecord is the registry entry for one UCAC. Fields are independently
// settable and zero until set.
type UcacRecord struct {
	ID      UcacID
	Address Address
	Owner1  Identity
	Owner2  Identity
}

// IsOwner reports whether who is owner1 or owner2. The zero identity is
// never an owner, even when an owner slot is unset.
func (r UcacRecord) IsOwner(who Identity) bool {
	if who.IsZero() {
		return false
	}
	return r.Owner1 == who || r.Owner2 == who
}
