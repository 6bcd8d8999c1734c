package view

import (
	"time"

	"github.com/haierkeys/note-vault/internal/model"
)

// SmartCollection is a named, rule-defined virtual view, evaluated on demand
// against the full collection.
// SmartCollection 规则定义的虚拟视图，按需计算，无静态成员列表。
type SmartCollection struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Rule  func(n *model.Note, now time.Time) bool `json:"-"`
}

// BuiltinCollections 内置智能集合
var BuiltinCollections = []SmartCollection{
	{
		ID:    "last-week",
		Label: "Last Week's Notes",
		// createdAt 落在此刻往前 7 天内，恰好 7 天前也算
		Rule: func(n *model.Note, now time.Time) bool {
			oneWeekAgo := now.AddDate(0, 0, -7)
			return !n.CreatedAt.Time().Before(oneWeekAgo)
		},
	},
	{
		ID:    "work-notes",
		Label: "Work Notes",
		Rule: func(n *model.Note, now time.Time) bool {
			return n.HasTag("work")
		},
	},
	{
		ID:    "untagged",
		Label: "Untagged Notes",
		Rule: func(n *model.Note, now time.Time) bool {
			return len(n.Tags) == 0
		},
	},
}

// CollectionByID 按 ID 查找内置集合
func CollectionByID(id string) (*SmartCollection, bool) {
	for i := range BuiltinCollections {
		if BuiltinCollections[i].ID == id {
			return &BuiltinCollections[i], true
		}
	}
	return nil, false
}
