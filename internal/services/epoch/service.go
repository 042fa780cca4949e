package epoch

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"prpcap/internal/crypto"
	"prpcap/internal/domain"
	"prpcap/internal/protocol/prpcap"
	"prpcap/internal/util/memzero"
)

// ErrNoEpoch indicates no epoch has been initialised or loaded yet.
var ErrNoEpoch = errors.New("epoch: no current epoch; run init first")

type state struct {
	id   string
	pair domain.EpochKeyPair
}

// Manager is the epoch lifecycle service backed by a store.
type Manager struct {
	store domain.EpochStore
	cur   atomic.Pointer[state]
}

// New returns a manager over the given store. Call Init or Load before
// using it.
func New(store domain.EpochStore) *Manager {
	return &Manager{store: store}
}

var _ domain.EpochService = (*Manager)(nil)

// Init generates a fresh epoch, persists it encrypted under the
// passphrase, marks it current and returns its fingerprint.
func (m *Manager) Init(passphrase string) (domain.Fingerprint, error) {
	return m.install(passphrase, nil)
}

// Load restores the current epoch from the store into memory.
func (m *Manager) Load(passphrase string) error {
	id, ok, err := m.store.CurrentEpochID()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoEpoch
	}
	pair, ok, err := m.store.LoadEpoch(passphrase, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("epoch: current epoch %q missing from store", id)
	}
	m.cur.Store(&state{id: id, pair: pair})
	return nil
}

// Rotate swaps in a fresh epoch and wipes the old secret scalars. The swap
// is atomic: a concurrent Snapshot sees either the old pair or the new
// one, never a mixture. This is the forward-secrecy boundary; capabilities
// derived under the old epoch become unrecoverable here.
func (m *Manager) Rotate(passphrase string) (domain.Fingerprint, error) {
	old := m.cur.Load()
	fp, err := m.install(passphrase, old)
	if err != nil {
		return "", err
	}
	if old != nil {
		memzero.ZeroAll(old.pair.S1[:], old.pair.S2[:])
	}
	return fp, nil
}

// Public returns the shareable half of the current epoch.
func (m *Manager) Public() (domain.EpochPublic, bool) {
	st := m.cur.Load()
	if st == nil {
		return domain.EpochPublic{}, false
	}
	return st.pair.Public(), true
}

// Snapshot returns a value copy of the current epoch key pair.
func (m *Manager) Snapshot() (domain.EpochKeyPair, bool) {
	st := m.cur.Load()
	if st == nil {
		return domain.EpochKeyPair{}, false
	}
	return st.pair, true
}

// NextIndex reserves the next unused capability index for the current
// epoch.
func (m *Manager) NextIndex() (uint32, error) {
	st := m.cur.Load()
	if st == nil {
		return 0, ErrNoEpoch
	}
	return m.store.NextIndex(st.id)
}

// Fingerprint returns the current epoch's fingerprint.
func (m *Manager) Fingerprint() (domain.Fingerprint, error) {
	st := m.cur.Load()
	if st == nil {
		return "", ErrNoEpoch
	}
	return fingerprint(st.pair.Public()), nil
}

// install creates, persists and activates a new epoch, replacing prev (nil
// for first-time init).
func (m *Manager) install(passphrase string, prev *state) (domain.Fingerprint, error) {
	pair, err := prpcap.NewEpoch(rand.Reader)
	if err != nil {
		return "", err
	}
	id := fmt.Sprintf("epoch-%d", time.Now().UnixNano())

	if err := m.store.SaveEpoch(passphrase, id, pair); err != nil {
		return "", err
	}
	if err := m.store.SetCurrentEpochID(id); err != nil {
		return "", err
	}

	next := &state{id: id, pair: pair}
	if prev != nil {
		if !m.cur.CompareAndSwap(prev, next) {
			// Lost a race with another rotation; that one's epoch wins.
			return "", errors.New("epoch: concurrent rotation")
		}
	} else {
		m.cur.Store(next)
	}
	return fingerprint(pair.Public()), nil
}

func fingerprint(pub domain.EpochPublic) domain.Fingerprint {
	joined := append(append([]byte(nil), pub.A[:]...), pub.B[:]...)
	return domain.Fingerprint(crypto.Fingerprint(joined))
}
