package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/adrg/xdg"

	"github.com/shvbsle/termrex/internal/log"
)

const (
	MaxEntries = 10
	FileName   = "highscores.json"
)

// Entry is one row of the high score table.
type Entry struct {
	Score  int       `json:"score"`
	Player string    `json:"player"`
	Date   time.Time `json:"date"`
	ID     int64     `json:"id"`
}

var idSeq atomic.Int64

type file struct {
	Entries []Entry `json:"entries"`
}

// Store is the high score table, kept sorted by score with the best first.
// It is safe for concurrent use; the SSH server shares one store across
// sessions.
type Store struct {
	path string

	mu      sync.Mutex
	entries []Entry
}

// DefaultPath is the table location in the XDG data directory. The parent
// directory is created if needed.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join("termrex", FileName))
}

// Memory returns a store that is never written to disk.
func Memory() *Store {
	return &Store{}
}

// Load reads the table at path. A missing file is an empty table; a
// corrupted one is logged and replaced by an empty table on the next Save.
func Load(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading high scores: %w", err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		log.G().Warn("corrupted high scores file, resetting", "path", path, "error", err)
		return s, nil
	}

	s.entries = f.Entries
	sortEntries(s.entries)
	if len(s.entries) > MaxEntries {
		s.entries = s.entries[:MaxEntries]
	}
	return s, nil
}

// Path is where Save writes, empty for a memory store.
func (s *Store) Path() string {
	return s.path
}

// Save writes the table. The file is replaced atomically so a crash never
// leaves half a table behind.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}

	s.mu.Lock()
	data, err := json.MarshalIndent(file{Entries: s.entries}, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating high score dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), FileName+".*")
	if err != nil {
		return fmt.Errorf("saving high scores: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("saving high scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("saving high scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("saving high scores: %w", err)
	}
	return nil
}

// Add inserts e and reports whether it made the table.
func (s *Store) Add(e Entry) bool {
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	if e.ID == 0 {
		e.ID = time.Now().UnixNano() + idSeq.Add(1)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	sortEntries(s.entries)

	if len(s.entries) <= MaxEntries {
		return true
	}
	made := false
	for i := 0; i < MaxEntries; i++ {
		if s.entries[i].ID == e.ID {
			made = true
			break
		}
	}
	s.entries = s.entries[:MaxEntries]
	return made
}

// IsHighScore reports whether score would enter the table.
func (s *Store) IsHighScore(score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) < MaxEntries {
		return true
	}
	return score > s.entries[MaxEntries-1].Score
}

// Rank is the 1-based position score would take, or 0 if it would not make
// the table.
func (s *Store) Rank(score int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if score >= e.Score {
			return i + 1
		}
	}
	if len(s.entries) < MaxEntries {
		return len(s.entries) + 1
	}
	return 0
}

// Top returns a copy of the best n entries.
func (s *Store) Top(n int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	n = min(max(n, 0), len(s.entries))
	out := make([]Entry, n)
	copy(out, s.entries[:n])
	return out
}

// Best is the top score, 0 for an empty table.
func (s *Store) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return 0
	}
	return s.entries[0].Score
}

// Len is the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}

// Player names the local player after the host.
func Player() string {
	host, err := os.Hostname()
	if err != nil {
		return "player"
	}
	return host
}
