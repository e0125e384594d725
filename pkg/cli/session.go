package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// Session is a persisted conversation: the model it ran against and the
// opaque context token sequence returned by the service's last response.
// Loading a session into a client resumes the conversation where it stopped.
type Session struct {
	// ID identifies the session across renames.
	ID string `yaml:"id" json:"id"`

	// Name is the session's file name (set on load/save).
	Name string `yaml:"-" json:"name"`

	// Model is the model the conversation ran against.
	Model string `yaml:"model,omitempty" json:"model,omitempty"`

	// Context is the conversation context after the last successful call.
	Context []uint64 `yaml:"context" json:"context"`

	// CreatedAt is when the session was first saved.
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`

	// UpdatedAt is when the session was last saved.
	UpdatedAt time.Time `yaml:"updated_at" json:"updated_at"`
}

// SessionStore persists sessions as YAML files in a directory.
type SessionStore struct {
	dir string
}

// NewSessionStore creates a store rooted at dir, creating it if needed.
func NewSessionStore(dir string) (*SessionStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &SessionStore{dir: dir}, nil
}

// DefaultSessionStore creates a store at the default location.
func DefaultSessionStore() (*SessionStore, error) {
	paths, err := NewPaths()
	if err != nil {
		return nil, err
	}
	return NewSessionStore(paths.SessionDir())
}

func (s *SessionStore) path(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}

// Load reads the named session.
func (s *SessionStore) Load(name string) (*Session, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("session %q not found", name)
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	sess.Name = name
	if sess.Context == nil {
		sess.Context = []uint64{}
	}
	return &sess, nil
}

// LoadOrCreate reads the named session, or returns a fresh one with a new ID
// when it does not exist yet.
func (s *SessionStore) LoadOrCreate(name string) (*Session, error) {
	sess, err := s.Load(name)
	if err == nil {
		return sess, nil
	}
	if _, statErr := os.Stat(s.path(name)); statErr == nil {
		// The file exists but did not load; surface the real problem.
		return nil, err
	}
	return &Session{
		ID:        uuid.NewString(),
		Name:      name,
		Context:   []uint64{},
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Save writes the session under its name.
func (s *SessionStore) Save(sess *Session) error {
	if sess.Name == "" {
		return fmt.Errorf("session has no name")
	}
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now().UTC()
	}
	sess.UpdatedAt = time.Now().UTC()

	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.path(sess.Name), data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Delete removes the named session.
func (s *SessionStore) Delete(name string) error {
	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("session %q not found", name)
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// List returns the names of all saved sessions, sorted.
func (s *SessionStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}
