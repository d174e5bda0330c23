package secrets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// File names inside the secrets directory, one value per file.
const (
	CredentialPathFile = "serviceAccountKeyPath"
	AccessTokenFile    = "supabaseAccessToken"
	BackendURLFile     = "supabaseUrl"
)

var ErrMissingSecretFile = errors.New("secret file is missing or unreadable")
var ErrEmptySecret = errors.New("secret value is empty")

// Bundle is the set of values collected by the setup command.
type Bundle struct {
	CredentialPath string
	AccessToken    string
	BackendURL     string
}

func (b Bundle) entries() []entry {
	return []entry{
		{name: CredentialPathFile, value: b.CredentialPath},
		{name: AccessTokenFile, value: b.AccessToken},
		{name: BackendURLFile, value: b.BackendURL},
	}
}

type entry struct {
	name  string
	value string
}

// FileStore keeps the bundle as three flat text files in Dir.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// Read loads all three secrets. No partial bundle is ever returned.
func (s *FileStore) Read() (Bundle, error) {
	values := make(map[string]string, 3)
	for _, name := range []string{CredentialPathFile, AccessTokenFile, BackendURLFile} {
		path := filepath.Join(s.Dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return Bundle{}, fmt.Errorf("%w: %s: %v", ErrMissingSecretFile, path, err)
		}
		value := strings.TrimSpace(string(data))
		if value == "" {
			return Bundle{}, fmt.Errorf("%w: %s", ErrEmptySecret, path)
		}
		values[name] = value
	}

	return Bundle{
		CredentialPath: values[CredentialPathFile],
		AccessToken:    values[AccessTokenFile],
		BackendURL:     values[BackendURLFile],
	}, nil
}

// Write replaces all three files. Every value is staged to a pending file
// first; the replacements only happen once all staging writes succeeded.
func (s *FileStore) Write(b Bundle) error {
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return fmt.Errorf("create secrets directory %s: %w", s.Dir, err)
	}

	entries := b.entries()
	staged := make([]*renameio.PendingFile, 0, len(entries))
	defer func() {
		for _, pf := range staged {
			_ = pf.Cleanup()
		}
	}()

	for _, e := range entries {
		pf, err := stage(s.Dir, e)
		if err != nil {
			return err
		}
		staged = append(staged, pf)
	}

	for i, e := range entries {
		if err := staged[i].CloseAtomicallyReplace(); err != nil {
			return fmt.Errorf("move %s into place: %w", filepath.Join(s.Dir, e.name), err)
		}
	}
	return nil
}

func stage(dir string, e entry) (*renameio.PendingFile, error) {
	pf, err := renameio.TempFile(dir, filepath.Join(dir, e.name))
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", e.name, err)
	}
	if _, err := pf.WriteString(e.value); err != nil {
		_ = pf.Cleanup()
		return nil, fmt.Errorf("write staged %s: %w", e.name, err)
	}
	return pf, nil
}
