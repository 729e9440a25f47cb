package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mikens/recetas-api/internal/client/api"
)

// ErrNoRecord means the requested record has never been written or was cleared.
var ErrNoRecord = errors.New("no stored record")

// Record is the durable session snapshot: the identity and the opaque token,
// always written together in a single call so a concurrent read can never
// observe a torn pair.
type Record struct {
	User  api.User `json:"user"`
	Token string   `json:"token"`
}

// RememberRecord saves the email for pre-filling the login form. Its
// lifecycle is independent from the session record: logging out does not
// forget the email.
type RememberRecord struct {
	Email      string `json:"email"`
	RememberMe bool   `json:"rememberMe"`
	Timestamp  int64  `json:"timestamp"`
}

// Store is the durable key-value persistence behind the session manager.
type Store interface {
	LoadSession() (*Record, error)
	SaveSession(rec *Record) error
	ClearSession() error
	LoadRemember() (*RememberRecord, error)
	SaveRemember(rec *RememberRecord) error
	ClearRemember() error
}

const (
	sessionFile  = "session.json"
	rememberFile = "remember.json"
)

// FileStore persists records as JSON files in a directory, the CLI analog of
// the browser's localStorage. Writes go through a temp file plus rename so a
// record is either fully present or absent, never partial.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// DefaultDir returns the per-user directory for session records.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "recetas"), nil
}

func (s *FileStore) LoadSession() (*Record, error) {
	var rec Record
	if err := s.load(sessionFile, &rec); err != nil {
		return nil, err
	}
	if rec.Token == "" || rec.User.ID == "" {
		return nil, ErrNoRecord
	}
	return &rec, nil
}

func (s *FileStore) SaveSession(rec *Record) error {
	return s.save(sessionFile, rec)
}

func (s *FileStore) ClearSession() error {
	return s.clear(sessionFile)
}

func (s *FileStore) LoadRemember() (*RememberRecord, error) {
	var rec RememberRecord
	if err := s.load(rememberFile, &rec); err != nil {
		return nil, err
	}
	if !rec.RememberMe || rec.Email == "" {
		return nil, ErrNoRecord
	}
	return &rec, nil
}

func (s *FileStore) SaveRemember(rec *RememberRecord) error {
	return s.save(rememberFile, rec)
}

func (s *FileStore) ClearRemember() error {
	return s.clear(rememberFile)
}

func (s *FileStore) load(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoRecord
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) save(name string, rec any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) clear(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear %s: %w", name, err)
	}
	return nil
}

// Touch is a convenience for building a remember record with the current time.
func Touch(email string) *RememberRecord {
	return &RememberRecord{Email: email, RememberMe: true, Timestamp: time.Now().UnixMilli()}
}
