package store

import (
	"os"
	"path/filepath"
)

// FilePort persists each collection as a JSON file in a data directory.
// This is the default, local-only persistence mode.
type FilePort struct {
	dir string
}

func NewFilePort(dir string) (*FilePort, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FilePort{dir: dir}, nil
}

func (p *FilePort) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(p.dir, key+".json"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (p *FilePort) Save(key string, data []byte) error {
	return os.WriteFile(filepath.Join(p.dir, key+".json"), data, 0o644)
}
