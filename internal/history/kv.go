package history

import (
	"fmt"
	"os"
	"path/filepath"
)

// KV is the key-value persistence abstraction behind the history store.
// Keys are namespace hashes; values are opaque serialized entry lists.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// fileKV stores one file per key under a base directory
type fileKV struct {
	dir string
}

// NewFileKV creates a file-backed KV rooted at dir
func NewFileKV(dir string) (KV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	return &fileKV{dir: dir}, nil
}

// DefaultDir returns the standard on-disk location for history files
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "docfind", "history")
}

func (f *fileKV) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, key+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	return data, nil
}

func (f *fileKV) Set(key string, value []byte) error {
	if err := os.WriteFile(filepath.Join(f.dir, key+".json"), value, 0600); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// MemKV is an in-process KV used by tests and unconfigured widgets
type MemKV struct {
	data map[string][]byte
}

// NewMemKV creates an empty in-memory KV
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string][]byte)}
}

func (m *MemKV) Get(key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *MemKV) Set(key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}
