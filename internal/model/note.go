// Package model 定义持久化的业务实体
package model

import (
	"github.com/haierkeys/note-vault/pkg/timex"
)

// GuestOwnerID is the sentinel owner used when no identity is signed in.
// GuestOwnerID 未登录时使用的访客标识
const GuestOwnerID = "guest"

// Note is one record of a per-identity collection. The JSON shape is the
// on-disk layout and the API payload at the same time, matching a plain
// localStorage collection.
// Note 单条笔记记录，JSON 结构同时是落盘格式与 API 载荷。
type Note struct {
	// ID 笔记唯一标识，创建时分配，不可变更
	ID string `json:"id"`
	// Title 标题
	Title string `json:"title"`
	// Content 内容
	Content string `json:"content"`
	// Tags 标签有序集合，保持插入顺序，大小写敏感
	Tags []string `json:"tags"`
	// IsFavorite 收藏标记
	IsFavorite bool `json:"isFavorite"`
	// IsDeleted 软删除标记
	IsDeleted bool `json:"isDeleted"`
	// CreatedAt 创建时间，创建后不再变更
	CreatedAt timex.Time `json:"createdAt"`
	// UpdatedAt 更新时间，任何变更操作都会刷新
	UpdatedAt timex.Time `json:"updatedAt"`
	// OwnerID 所属身份，创建时设置，不可变更
	OwnerID string `json:"ownerId"`
	// ImportedAt 导入时间，仅由导入操作填充
	ImportedAt *timex.Time `json:"importedAt,omitempty"`
}

// HasTag reports whether the note carries tag (case-sensitive).
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate the stored collection.
// Clone 深拷贝，避免调用方篡改集合内部状态。
func (n *Note) Clone() *Note {
	clone := *n
	// 保留空切片，序列化必须输出 [] 而不是 null
	clone.Tags = make([]string, len(n.Tags))
	copy(clone.Tags, n.Tags)
	if n.ImportedAt != nil {
		importedAt := *n.ImportedAt
		clone.ImportedAt = &importedAt
	}
	return &clone
}
