package domain

// EpochStore persists epoch key pairs. Secret halves are encrypted at rest
// under the owner's passphrase.
type EpochStore interface {
	SaveEpoch(passphrase, id string, ep EpochKeyPair) error
	LoadEpoch(passphrase, id string) (EpochKeyPair, bool, error)
	SetCurrentEpochID(id string) error
	CurrentEpochID() (string, bool, error)
	// NextIndex reserves the next unused capability index for the epoch.
	// Indices are unique per epoch; reuse is a key-hygiene violation, not
	// a math one, and is prevented here.
	NextIndex(id string) (uint32, error)
}

// RelayClient is the transport glue: it publishes epoch publics and moves
// envelopes. It performs no cryptography.
type RelayClient interface {
	Publish(name string, pub EpochPublic) error
	FetchEpoch(name string) (EpochPublic, error)
	Post(env Envelope) error
	Fetch(name string, limit int) ([]Envelope, error)
	Ack(name string, count int) error
}

// EpochService manages the local epoch lifecycle.
type EpochService interface {
	Init(passphrase string) (Fingerprint, error)
	Load(passphrase string) error
	Rotate(passphrase string) (Fingerprint, error)
	Public() (EpochPublic, bool)
	// Snapshot returns a value copy of the current epoch. Callers operate
	// on the copy, so a concurrent rotation can neither expose a
	// half-swapped pair nor pull secrets out from under in-flight work.
	Snapshot() (EpochKeyPair, bool)
	NextIndex() (uint32, error)
}

// MessageService seals outbound plaintexts into envelopes and processes
// inbound envelopes back into plaintexts.
type MessageService interface {
	Send(from, to string, plaintext []byte) error
	Receive(name string) ([]DecryptedMessage, int, error)
}
