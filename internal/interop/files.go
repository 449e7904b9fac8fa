package interop

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	FileTypeName      = "File"
	DirectoryTypeName = "Directory"
)

// File groups file helpers. Scripts call its methods on the zero value.
type File struct{}

// Exists reports whether path names a regular file or other non-directory.
func (File) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (File) ReadAllText(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// WriteAllText creates or truncates path and writes contents to it.
func (File) WriteAllText(path, contents string) error {
	if path == "" {
		return ErrEmptyPath
	}

	return os.WriteFile(path, []byte(contents), 0o644)
}

// AppendAllText appends contents to path, creating it if needed.
func (File) AppendAllText(path, contents string) error {
	if path == "" {
		return ErrEmptyPath
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(contents); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Delete removes path. A missing file is not an error.
func (File) Delete(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	return os.Remove(path)
}

// Directory groups directory helpers. Scripts call its methods on the zero
// value.
type Directory struct{}

func (Directory) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// CreateDirectory creates path and any missing parents.
func (Directory) CreateDirectory(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	return os.MkdirAll(path, 0o755)
}

// GetFiles lists the files directly inside path, sorted by name. With
// patterns, only names matching at least one of them are returned.
func (Directory) GetFiles(path string, patterns ...string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	files := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		ok, err := matchAny(e.Name(), patterns)
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}

	return files, nil
}

// Delete removes an empty directory.
func (Directory) Delete(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	return os.Remove(path)
}

// DeleteAll removes path and everything below it.
func (Directory) DeleteAll(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	return os.RemoveAll(path)
}

func matchAny(name string, patterns []string) (bool, error) {
	if len(patterns) == 0 {
		return true, nil
	}

	for _, p := range patterns {
		ok, err := filepath.Match(p, name)
		if err != nil {
			return false, fmt.Errorf("pattern %q: %w", p, err)
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}
