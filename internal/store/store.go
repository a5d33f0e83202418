// Package store keeps tokenized lines on disk, keyed by the digest of the
// source they were produced from.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"tokattr/internal/attrs"
	"tokattr/internal/token"
)

// Current schema version - increment when Payload format changes
const schemaVersion uint16 = 1

var (
	// ErrLayoutMismatch reports a table written under another attrs.LayoutVersion.
	ErrLayoutMismatch = errors.New("stored attributes use a different bit layout")
	// ErrSchemaMismatch reports a payload written by an incompatible store version.
	ErrSchemaMismatch = errors.New("stored payload has an unknown schema")
	// ErrBadDigest reports a key that is not a hex SHA-256 digest.
	ErrBadDigest = errors.New("invalid digest")
)

// Digest identifies stored content.
type Digest [sha256.Size]byte

// DigestOf hashes content.
func DigestOf(content []byte) Digest { return sha256.Sum256(content) }

// String returns the hex form of d.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// ParseDigest reads the hex form of a digest. A unique prefix is not enough.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(d) {
		return d, fmt.Errorf("%w: %q", ErrBadDigest, s)
	}
	copy(d[:], b)
	return d, nil
}

// Payload is one stored table of token lines.
type Payload struct {
	Schema        uint16
	LayoutVersion uint16

	Name  string     // source file name, informational
	Lines [][]uint32 // binary token lines, see package token
}

// NewPayload builds a payload for lines under the current layout.
func NewPayload(name string, lines []token.Line) *Payload {
	p := &Payload{
		Schema:        schemaVersion,
		LayoutVersion: attrs.LayoutVersion,
		Name:          name,
		Lines:         make([][]uint32, len(lines)),
	}
	for i, l := range lines {
		p.Lines[i] = token.EncodeLine(l)
	}
	return p
}

// TokenLines decodes the stored binary lines.
func (p *Payload) TokenLines() ([]token.Line, error) {
	out := make([]token.Line, len(p.Lines))
	for i, raw := range p.Lines {
		l, err := token.DecodeLine(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out[i] = l
	}
	return out, nil
}

// Store is a directory of msgpack payloads. Thread-safe for concurrent access.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// DefaultDir returns $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func DefaultDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// Open creates dir if needed and returns a Store rooted there.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the root directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) pathFor(key Digest) string {
	return filepath.Join(s.dir, "tables", key.String()+".mp")
}

// Put serializes and writes a payload, replacing any previous one atomically.
func (s *Store) Put(key Digest, payload *Payload) (err error) {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close() //nolint:errcheck
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	// атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads the payload stored under key. It reports false when nothing is
// stored, and ErrLayoutMismatch when the payload was written under another
// bit layout.
func (s *Store) Get(key Digest, out *Payload) (found bool, err error) {
	if s == nil {
		return false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	if out.Schema != schemaVersion {
		return false, fmt.Errorf("%s: schema %d, want %d: %w", key, out.Schema, schemaVersion, ErrSchemaMismatch)
	}
	if out.LayoutVersion != attrs.LayoutVersion {
		return false, fmt.Errorf("%s: layout %d, want %d: %w", key, out.LayoutVersion, attrs.LayoutVersion, ErrLayoutMismatch)
	}
	return true, nil
}

// Keys lists the digests of every stored payload.
func (s *Store) Keys() ([]Digest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(filepath.Join(s.dir, "tables"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	keys := make([]Digest, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".mp" {
			continue
		}
		d, err := ParseDigest(name[:len(name)-len(".mp")])
		if err != nil {
			continue
		}
		keys = append(keys, d)
	}
	return keys, nil
}

// DropAll removes every stored payload.
func (s *Store) DropAll() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.RemoveAll(filepath.Join(s.dir, "tables"))
}
