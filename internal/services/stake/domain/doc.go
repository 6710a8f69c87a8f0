// Package domain models the stake ledger vocabulary: caller identities,
// value-unit addresses, UCAC ids, the role triplet that gates every mutation,
// and the registry record that names a UCAC's owners.
//
// Everything here is pure. Persistence lives in storage and the transfer
// orchestration lives in ledger.
package domain
