package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{"memory", &Config{Type: Memory}, false},
		{"localfs", &Config{Type: LocalFS, Path: filepath.Join(t.TempDir(), "data")}, false},
		{"unknown type", &Config{Type: "redis"}, true},
		{"nil config", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewClient(tt.config)
			if tt.wantErr {
				assert.NotNil(t, err)
				return
			}
			assert.Nil(t, err)
			assert.Nil(t, s.Close())
		})
	}
}

// 各介质共享的读写语义
func TestStoreSemantics(t *testing.T) {
	backends := []struct {
		name   string
		config *Config
	}{
		{"memory", &Config{Type: Memory}},
		{"localfs", &Config{Type: LocalFS, Path: filepath.Join(t.TempDir(), "data")}},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s, err := NewClient(b.config)
			assert.Nil(t, err)
			defer s.Close()

			// 缺键不报错
			_, ok, err := s.Get("missing")
			assert.Nil(t, err)
			assert.False(t, ok)

			assert.Nil(t, s.Set("notes_u1", `[{"id":"n1"}]`))
			value, ok, err := s.Get("notes_u1")
			assert.Nil(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":"n1"}]`, value)

			// Set 整值覆盖
			assert.Nil(t, s.Set("notes_u1", "[]"))
			value, _, _ = s.Get("notes_u1")
			assert.Equal(t, "[]", value)

			// 删除缺键不报错
			assert.Nil(t, s.Delete("notes_u1"))
			_, ok, err = s.Get("notes_u1")
			assert.Nil(t, err)
			assert.False(t, ok)
			assert.Nil(t, s.Delete("notes_u1"))
		})
	}
}

func TestLocalFSPersistsAcrossClients(t *testing.T) {
	root := filepath.Join(t.TempDir(), "data")

	first, err := NewClient(&Config{Type: LocalFS, Path: root})
	assert.Nil(t, err)
	assert.Nil(t, first.Set("notes_guest", `[{"id":"seed"}]`))
	assert.Nil(t, first.Close())

	second, err := NewClient(&Config{Type: LocalFS, Path: root})
	assert.Nil(t, err)
	defer second.Close()

	value, ok, err := second.Get("notes_guest")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"seed"}]`, value)
}
