package session

import (
	"os"
	"path/filepath"
	"strings"
)

// FileKV stores each key as its own file under dir, the same way the app
// keeps the rest of its client-side state in the data directory.
type FileKV struct {
	dir string
}

// NewFileKV returns a KV rooted at dir. The directory is created on the
// first write, not here, so a read-only startup never fails.
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

func (kv *FileKV) path(key string) string {
	return filepath.Join(kv.dir, key)
}

func (kv *FileKV) Get(key string) (string, bool) {
	data, err := os.ReadFile(kv.path(key))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

func (kv *FileKV) Set(key, value string) error {
	if err := os.MkdirAll(kv.dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(kv.path(key), []byte(value), 0600)
}

func (kv *FileKV) Delete(key string) error {
	err := os.Remove(kv.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
