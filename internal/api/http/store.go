package http

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/mfdash/internal/shared/types"
)

// Data sources reported in X-Data-Source.
const (
	SourceFile = "file"
	SourceDemo = "demo"
)

// Snapshot is the document currently served.
type Snapshot struct {
	Document types.Document
	Body     []byte
	ETag     string
	Source   string
	ModTime  time.Time
}

// Store caches the document file and reloads it when its mtime changes.
type Store struct {
	path string
	now  func() time.Time

	mu      sync.RWMutex
	current *Snapshot

	demoOnce sync.Once
	demo     *Snapshot
	demoErr  error
}

// NewStore creates a store for the document at path.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Get returns the cached snapshot, reloading if the file changed.
func (s *Store) Get() (*Snapshot, error) {
	info, statErr := os.Stat(s.path)

	s.mu.RLock()
	cur := s.current
	s.mu.RUnlock()

	if cur != nil && statErr == nil && cur.Source == SourceFile && info.ModTime().Equal(cur.ModTime) {
		return cur, nil
	}
	if cur != nil && cur.Source == SourceDemo && errors.Is(statErr, fs.ErrNotExist) {
		return cur, nil
	}
	return s.Reload()
}

// Reload reads the file unconditionally. A missing or unreadable file
// yields the demonstration dataset; the returned error explains why.
func (s *Store) Reload() (*Snapshot, error) {
	snap, err := s.load()
	if err != nil {
		demo, demoErr := s.demoSnapshot()
		if demoErr != nil {
			return nil, demoErr
		}
		snap = demo
	}

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	if errors.Is(err, fs.ErrNotExist) {
		return snap, nil
	}
	return snap, err
}

// demoSnapshot is built once so its ETag stays stable across requests.
func (s *Store) demoSnapshot() (*Snapshot, error) {
	s.demoOnce.Do(func() {
		s.demo, s.demoErr = newSnapshot(DemoDocument(s.now()), SourceDemo, time.Time{})
	})
	return s.demo, s.demoErr
}

func (s *Store) load() (*Snapshot, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var doc types.Document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return &Snapshot{
		Document: doc,
		Body:     data,
		ETag:     etag(data),
		Source:   SourceFile,
		ModTime:  info.ModTime(),
	}, nil
}

func newSnapshot(doc types.Document, source string, modTime time.Time) (*Snapshot, error) {
	data, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return &Snapshot{Document: doc, Body: data, ETag: etag(data), Source: source, ModTime: modTime}, nil
}

func etag(data []byte) string {
	sum := sha256.Sum256(data)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}
