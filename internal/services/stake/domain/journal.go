package domain

// JournalKind labels one committed ledger mutation.
type JournalKind string

const (
	KindAdmin2Set      JournalKind = "admin2.set"
	KindParentChanged  JournalKind = "parent.changed"
	KindTokenSet       JournalKind = "token.set"
	KindUcacAddressSet JournalKind = "ucac.address_set"
	KindUcacOwner1Set  JournalKind = "ucac.owner1_set"
	KindUcacOwner2Set  JournalKind = "ucac.owner2_set"
	KindStakeAdded     JournalKind = "stake.added"
	KindStakeRemoved   JournalKind = "stake.removed"
)
