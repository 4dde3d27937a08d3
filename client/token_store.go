package client

import (
	"os"
	"strings"
)

// FileTokenStore keeps the bearer token in a single file so logins
// survive restarts. The file holds nothing but the token.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Save(token string) error {
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the token file; an already-missing file is not an
// error.
func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsLoggedIn reports whether a token is present. It says nothing about
// whether the server still accepts it.
func (s *FileTokenStore) IsLoggedIn() bool {
	token, err := s.Load()
	return err == nil && token != ""
}
