// Package app wires the stores, services and relay client into one
// application object consumed by the CLI.
package app
