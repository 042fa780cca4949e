// Package ladder merges the two convergence secrets of a simultaneous
// bidirectional initiation ("double ladder") into a single secret.
//
// When both parties initiate independently, each side ends up holding two
// agreed secrets, one per direction, computed in opposite local orders.
// Merge orders the directions canonically by their ephemeral public
// encodings, so both parties hash the identical transcript and derive
// byte-identical output.
package ladder
