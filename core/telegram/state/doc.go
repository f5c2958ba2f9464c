// Package state keeps per-user conversation sessions in memory together with
// per-user locks that serialize update handling for a single user.
package state
