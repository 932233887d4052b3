// Package state holds the named registers of a host and the snapshots
// used to roll them back after a failed computation.
//
// Rollback is coarse: a snapshot is restored whole, never per field.
// Snapshots live in memory only and are owned by the caller that
// captured them.
package state
