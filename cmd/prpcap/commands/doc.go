// Package commands implements the prpcap CLI.
//
// Local commands (init, rotate, fingerprint, cap) need only the key store;
// publish, send and recv additionally need --relay.
package commands
