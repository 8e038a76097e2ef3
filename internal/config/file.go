package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/monitorctl/monitorctl/internal/models"
)

// startWithLoginKey is the JSON key persisted by the tray's startup toggle.
const startWithLoginKey = "start_with_windows"

// FileError reports an unreadable or malformed config document.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s config %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// File is the JSON config document on disk.
type File struct {
	path string
}

// NewFile returns a File whose location is resolved with Path on every use,
// so environment or working-directory changes are picked up on reload.
func NewFile() *File {
	return &File{}
}

// NewFileAt returns a File pinned to path.
func NewFileAt(path string) *File {
	return &File{path: path}
}

// Path returns the config file location.
func (f *File) Path() (string, error) {
	if f.path != "" {
		return f.path, nil
	}
	return Path()
}

// Load reads the config. A missing file yields (nil, nil).
func (f *File) Load() (*models.Config, error) {
	path, err := f.Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &FileError{Op: "parse", Path: path, Err: err}
	}
	return &cfg, nil
}

// Ensure creates a template config if none exists and returns its path.
func (f *File) Ensure() (string, error) {
	path, err := f.Path()
	if err != nil {
		return "", err
	}
	if FileExists(path) {
		return path, nil
	}

	template := map[string]interface{}{
		startWithLoginKey: false,
		"inputs":          map[string]uint16{},
	}
	if err := SaveJSON(path, template); err != nil {
		return "", err
	}
	return path, nil
}

// SetStartWithLogin rewrites the start_with_windows field, keeping every
// other field of the document. The file is created if absent.
func (f *File) SetStartWithLogin(enabled bool) error {
	path, err := f.Path()
	if err != nil {
		return err
	}

	root := map[string]json.RawMessage{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return &FileError{Op: "read", Path: path, Err: err}
	default:
		if err := json.Unmarshal(data, &root); err != nil {
			return &FileError{Op: "parse", Path: path, Err: fmt.Errorf("config root must be a JSON object: %w", err)}
		}
		if root == nil {
			root = map[string]json.RawMessage{}
		}
	}

	value, _ := json.Marshal(enabled)
	root[startWithLoginKey] = value
	return SaveJSON(path, root)
}
