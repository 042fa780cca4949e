// Package epoch manages the local epoch key pair's lifecycle: creation,
// loading from the encrypted store, and rotation.
//
// The current epoch is held behind an atomic pointer. Readers take a value
// copy of the whole pair, so rotation is a single swap: no reader can
// observe a mix of old and new scalars, and work that captured the old
// epoch finishes against its own copy even after the manager's copy has
// been wiped.
package epoch
