// Package session persists painting sessions. Each session is a directory
// under the data dir holding metadata.json and actions.json.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/axwes/Paint-Replica/internal/replay"
)

// NotFoundError reports a session id with no stored data behind it.
type NotFoundError struct {
	ID   string
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session %s: not found (%s)", e.ID, e.Path)
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID        string    `json:"id"`
	Style     string    `json:"style"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Theme     string    `json:"theme"`
	CreatedAt time.Time `json:"created_at"`
	Actions   int       `json:"actions"`
}

// Save writes a session and returns its id.
func (s *Store) Save(meta Metadata, entries []replay.Entry) (string, error) {
	if meta.ID == "" {
		meta.ID = uuid.NewString()[:8]
	}
	meta.Actions = len(entries)
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now()
	}

	dir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(dir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(dir, "actions.json"), entries); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// List returns metadata for every stored session, newest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	sessions := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta Metadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		sessions = append(sessions, meta)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

// Load reads one session's metadata.
func (s *Store) Load(id string) (*Metadata, error) {
	path := filepath.Join(s.baseDir, id, "metadata.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{ID: id, Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	return &meta, nil
}

// LoadActions reads one session's recorded actions in order.
func (s *Store) LoadActions(id string) ([]replay.Entry, error) {
	path := filepath.Join(s.baseDir, id, "actions.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{ID: id, Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	var entries []replay.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	return entries, nil
}
