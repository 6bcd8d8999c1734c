package model

import (
	"testing"

	"github.com/haierkeys/note-vault/pkg/timex"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
)

func TestCloneKeepsEmptyTags(t *testing.T) {
	n := &Note{ID: "n1", Title: "untagged", Tags: []string{}}

	clone := n.Clone()
	// 空标签拷贝后仍是空切片，序列化输出 [] 而不是 null
	assert.NotNil(t, clone.Tags)
	assert.Len(t, clone.Tags, 0)

	data, err := sonic.Marshal(clone)
	assert.Nil(t, err)
	assert.Contains(t, string(data), `"tags":[]`)
}

func TestCloneIsDeep(t *testing.T) {
	importedAt := timex.Now()
	n := &Note{ID: "n1", Tags: []string{"a", "b"}, ImportedAt: &importedAt}

	clone := n.Clone()
	clone.Tags[0] = "changed"
	*clone.ImportedAt = timex.Time{}

	// 改动副本不得影响原笔记
	assert.Equal(t, "a", n.Tags[0])
	assert.False(t, n.ImportedAt.IsZero())
}

func TestHasTag(t *testing.T) {
	n := &Note{Tags: []string{"work", "Go"}}
	assert.True(t, n.HasTag("work"))
	// 标签大小写敏感
	assert.False(t, n.HasTag("go"))
	assert.False(t, n.HasTag("missing"))
}
