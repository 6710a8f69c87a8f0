// Package ledger orchestrates the stake ledger: role guards, the UCAC
// registry, the current value-unit reference, and the composite stake table.
//
// Every mutation runs under one writer lock and one storage transaction in a
// fixed order: validate, mutate inside the transaction, issue the single
// value-unit transfer, commit. Any failure rolls the transaction back, so a
// rejected call leaves nothing observable behind.
package ledger
