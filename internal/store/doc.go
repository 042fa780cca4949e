// Package store persists epoch key pairs on disk.
//
// Public halves and bookkeeping live in plain JSON; the secret scalars are
// sealed into a passphrase-encrypted blob (scrypt key derivation,
// ChaCha20-Poly1305). Files are written 0o600 via temp-file-then-rename.
package store
