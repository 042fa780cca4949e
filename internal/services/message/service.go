package message

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"time"

	"prpcap/internal/crypto"
	"prpcap/internal/domain"
	"prpcap/internal/protocol/prpcap"
	"prpcap/internal/util/memzero"
)

// ErrNoEpoch indicates the local epoch is not loaded.
var ErrNoEpoch = errors.New("message: no local epoch loaded")

// Service moves sealed envelopes between peers.
type Service struct {
	epochs domain.EpochService
	relay  domain.RelayClient
}

// New constructs the message service over the epoch service and relay.
func New(epochs domain.EpochService, relay domain.RelayClient) *Service {
	return &Service{epochs: epochs, relay: relay}
}

var _ domain.MessageService = (*Service)(nil)

// Seal encrypts plaintext for the holder of the given epoch publics. The
// index must be fresh for that epoch; Send draws one at random from the
// full 32-bit space.
func (s *Service) Seal(pub domain.EpochPublic, index uint32, plaintext []byte) (domain.Envelope, error) {
	eph, err := prpcap.NewEphemeral(rand.Reader)
	if err != nil {
		return domain.Envelope{}, err
	}
	secret, err := prpcap.SenderSecret(eph, pub.A, pub.B, index)
	memzero.Zero(eph.Priv[:])
	if err != nil {
		return domain.Envelope{}, err
	}

	nonce, ct, err := crypto.Seal(secret, plaintext, nil)
	memzero.Zero(secret[:])
	if err != nil {
		return domain.Envelope{}, err
	}
	return domain.Envelope{
		Ephemeral: eph.Pub,
		Index:     index,
		Nonce:     nonce,
		Cipher:    ct,
		Timestamp: time.Now().Unix(),
	}, nil
}

// Process attempts to open an envelope under the current epoch. It returns
// (plaintext, true, nil) on success and (nil, false, nil) when the derived
// key does not authenticate the ciphertext; err is reserved for malformed
// input such as an undecodable ephemeral point.
func (s *Service) Process(env domain.Envelope) ([]byte, bool, error) {
	ep, ok := s.epochs.Snapshot()
	if !ok {
		return nil, false, ErrNoEpoch
	}
	secret, err := prpcap.ReceiverSecret(ep, env.Ephemeral, env.Index)
	memzero.ZeroAll(ep.S1[:], ep.S2[:])
	if err != nil {
		return nil, false, err
	}
	pt, ok := crypto.Open(secret, env.Nonce, env.Cipher, nil)
	memzero.Zero(secret[:])
	if !ok {
		return nil, false, nil
	}
	return pt, true, nil
}

// Send seals plaintext for the peer's published epoch and posts it via the
// relay.
func (s *Service) Send(from, to string, plaintext []byte) error {
	pub, err := s.relay.FetchEpoch(to)
	if err != nil {
		return err
	}
	env, err := s.Seal(pub, randomIndex(), plaintext)
	if err != nil {
		return err
	}
	env.From = from
	env.To = to
	return s.relay.Post(env)
}

// Receive fetches pending envelopes, processes each against the current
// epoch, and acks the batch. Envelopes that fail authentication (sealed
// for a rotated-away epoch, or tampered) are counted in rejected and
// otherwise dropped; they never surface as plaintext.
func (s *Service) Receive(name string) (msgs []domain.DecryptedMessage, rejected int, err error) {
	envs, err := s.relay.Fetch(name, 0)
	if err != nil {
		return nil, 0, err
	}
	for _, env := range envs {
		pt, ok, err := s.Process(env)
		if err != nil || !ok {
			rejected++
			continue
		}
		msgs = append(msgs, domain.DecryptedMessage{
			From:      env.From,
			To:        env.To,
			Plaintext: pt,
			Timestamp: env.Timestamp,
		})
	}
	if len(envs) > 0 {
		if err := s.relay.Ack(name, len(envs)); err != nil {
			return msgs, rejected, err
		}
	}
	return msgs, rejected, nil
}

// randomIndex draws a uniform 32-bit capability index. Collisions within
// one epoch are possible in principle but harmless to the convergence
// math; locally minted capabilities use the store's monotonic counter
// instead.
func randomIndex() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint32(b[:])
}
