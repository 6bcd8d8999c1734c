// Package local_fs 以平面 JSON 文件为介质的键值存储
package local_fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// LocalFS stores one file per key under a root directory. Key characters
// outside [A-Za-z0-9_-] are replaced so keys stay filesystem-safe.
// LocalFS 在根目录下为每个键保存一个文件。
type LocalFS struct {
	root string
}

func NewClient(root string) (*LocalFS, error) {
	if root == "" {
		return nil, errors.New("local_fs: root path is required")
	}
	if err := os.MkdirAll(root, 0754); err != nil {
		return nil, errors.Wrap(err, "local_fs: create root")
	}
	return &LocalFS{root: root}, nil
}

func (s *LocalFS) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '.'
		}
	}, key)
	return filepath.Join(s.root, safe+".json")
}

func (s *LocalFS) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "local_fs: read %s", key)
	}
	return string(data), true, nil
}

func (s *LocalFS) Set(key string, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0644); err != nil {
		return errors.Wrapf(err, "local_fs: write %s", key)
	}
	return nil
}

func (s *LocalFS) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "local_fs: delete %s", key)
	}
	return nil
}

func (s *LocalFS) Close() error {
	return nil
}
