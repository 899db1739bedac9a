package auth

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

var (
	keyringService = "mclaunch"
	keyringUser    = "session"

	sessionFile = "session.json"
)

var _ Provider = (*Store)(nil)

// Store persists the session in the os keyring.
// It falls back to a plain file in the config dir if no keyring is available
type Store struct {
	configDir     string
	NoKeyRingMode bool
}

// NewStore returns a store that uses configDir for the fallback file
func NewStore(configDir string) *Store {
	return &Store{configDir: configDir}
}

// Session returns the stored session or ErrNoSession
func (s *Store) Session() (*Session, error) {
	var raw []byte

	if !s.NoKeyRingMode {
		secret, err := keyring.Get(keyringService, keyringUser)
		switch err {
		case nil:
			raw = []byte(secret)
		case keyring.ErrNotFound:
			// keyring works, but there might still be an old file
			return s.readFile()
		default:
			s.NoKeyRingMode = true
			return s.readFile()
		}
	} else {
		return s.readFile()
	}

	return decode(raw)
}

// Set persists session
func (s *Store) Set(session *Session) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if !s.NoKeyRingMode {
		err := keyring.Set(keyringService, keyringUser, string(blob))
		if err == nil {
			return nil
		}
		s.NoKeyRingMode = true
	}
	return s.writeFile(blob)
}

// Clear removes any stored session
func (s *Store) Clear() error {
	if !s.NoKeyRingMode {
		if err := keyring.Delete(keyringService, keyringUser); err != nil && err != keyring.ErrNotFound {
			s.NoKeyRingMode = true
		}
	}

	err := os.Remove(filepath.Join(s.configDir, sessionFile))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) readFile() (*Session, error) {
	raw, err := os.ReadFile(filepath.Join(s.configDir, sessionFile))
	switch {
	case err == nil:
		return decode(raw)
	case os.IsNotExist(err):
		return nil, ErrNoSession
	default:
		return nil, err
	}
}

func (s *Store) writeFile(content []byte) error {
	if err := os.MkdirAll(s.configDir, os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.configDir, sessionFile), content, 0600)
}

func decode(raw []byte) (*Session, error) {
	session := &Session{}
	if err := json.Unmarshal(raw, session); err != nil {
		return nil, errors.Wrap(err, "stored session is corrupted")
	}
	return session, nil
}
