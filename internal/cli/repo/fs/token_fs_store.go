package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"PifKeeper/internal/cli/repo"
)

// TokenFSStore - файловое хранилище API-токена для CLI.
type TokenFSStore struct {
	Path string
}

var _ repo.TokenStore = TokenFSStore{}

// Save сохраняет токен в файл с правами 0600, создавая каталог при необходимости.
func (s TokenFSStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	if s.Path == "" {
		return errors.New("empty token file path")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load читает токен из файла, обрезая завершающие переводы строки/пробелы.
func (s TokenFSStore) Load() (string, error) {
	if s.Path == "" {
		return "", errors.New("empty token file path")
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	tok := strings.TrimSpace(string(b))
	if tok == "" {
		return "", errors.New("empty token file")
	}
	return tok, nil
}
