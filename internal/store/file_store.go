package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"prpcap/internal/domain"
)

const (
	epochsFile = "epochs.json"     // map[string]epochRecord
	metaFile   = "epoch_meta.json" // current epoch id + per-epoch index counters
)

// epochRecord is one stored epoch: publics in the clear, secrets sealed
// under the passphrase.
type epochRecord struct {
	A       domain.PointBytes `json:"a"`
	B       domain.PointBytes `json:"b"`
	Secrets []byte            `json:"secrets"` // encrypted epochSecrets blob
	At      int64             `json:"at"`
}

// epochSecrets is the plaintext inside the encrypted blob.
type epochSecrets struct {
	S1 domain.ScalarBytes `json:"s1"`
	S2 domain.ScalarBytes `json:"s2"`
}

type epochMeta struct {
	CurrentEpochID string            `json:"current_epoch_id"`
	NextIndex      map[string]uint32 `json:"next_index"`
}

// FileStore stores epochs in a directory on disk.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a store rooted at dir. The directory must exist.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

var _ domain.EpochStore = (*FileStore)(nil)

// SaveEpoch seals the epoch secrets under the passphrase and records the
// epoch.
func (s *FileStore) SaveEpoch(passphrase, id string, ep domain.EpochKeyPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(epochSecrets{S1: ep.S1, S2: ep.S2})
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	sealed, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}

	m := make(map[string]epochRecord)
	if err := readJSON(filepath.Join(s.dir, epochsFile), &m); err != nil {
		return err
	}
	m[id] = epochRecord{A: ep.A, B: ep.B, Secrets: sealed, At: time.Now().Unix()}
	return writeJSON(filepath.Join(s.dir, epochsFile), m, 0o600)
}

// LoadEpoch decrypts and returns the epoch with the given id.
func (s *FileStore) LoadEpoch(passphrase, id string) (domain.EpochKeyPair, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]epochRecord)
	if err := readJSON(filepath.Join(s.dir, epochsFile), &m); err != nil {
		return domain.EpochKeyPair{}, false, err
	}
	rec, ok := m[id]
	if !ok {
		return domain.EpochKeyPair{}, false, nil
	}
	raw, err := decrypt(passphrase, rec.Secrets)
	if err != nil {
		return domain.EpochKeyPair{}, false, err
	}
	var sec epochSecrets
	if err := json.Unmarshal(raw, &sec); err != nil {
		return domain.EpochKeyPair{}, false, err
	}
	return domain.EpochKeyPair{A: rec.A, B: rec.B, S1: sec.S1, S2: sec.S2}, true, nil
}

// SetCurrentEpochID marks id as the active epoch.
func (s *FileStore) SetCurrentEpochID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := s.loadMeta()
	if err != nil {
		return err
	}
	meta.CurrentEpochID = id
	return writeJSON(filepath.Join(s.dir, metaFile), meta, 0o600)
}

// CurrentEpochID reports the active epoch, if any.
func (s *FileStore) CurrentEpochID() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := s.loadMeta()
	if err != nil {
		return "", false, err
	}
	if meta.CurrentEpochID == "" {
		return "", false, nil
	}
	return meta.CurrentEpochID, true, nil
}

// NextIndex reserves the next capability index for the epoch. Indices are
// handed out monotonically so a value is never reused within one epoch.
func (s *FileStore) NextIndex(id string) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := s.loadMeta()
	if err != nil {
		return 0, err
	}
	idx := meta.NextIndex[id]
	meta.NextIndex[id] = idx + 1
	if err := writeJSON(filepath.Join(s.dir, metaFile), meta, 0o600); err != nil {
		return 0, err
	}
	return idx, nil
}

func (s *FileStore) loadMeta() (epochMeta, error) {
	meta := epochMeta{NextIndex: make(map[string]uint32)}
	if err := readJSON(filepath.Join(s.dir, metaFile), &meta); err != nil {
		return epochMeta{}, err
	}
	if meta.NextIndex == nil {
		meta.NextIndex = make(map[string]uint32)
	}
	return meta, nil
}

// readJSON best-effort reads path into out; a missing file is not an error.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// writeJSON writes JSON via a temp file then rename.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
