// Package domain holds the data model shared by every layer: fixed-size
// key and secret types, the epoch key pair, the message envelope, and the
// store/relay/service contracts the wiring is built against.
//
// Key material uses fixed-size array types rather than slices so that
// value copies are real copies and zeroing one copy cannot reach another.
package domain
