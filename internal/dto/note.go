// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import (
	"github.com/haierkeys/note-vault/internal/model"
	"github.com/haierkeys/note-vault/internal/view"
)

// NoteCreateRequest 创建笔记的请求参数
// Title/Content required-ness is enforced here, at the boundary, not by the
// store itself.
type NoteCreateRequest struct {
	Title   string   `json:"title" form:"title" binding:"required"`
	Content string   `json:"content" form:"content" binding:"required"`
	Tags    []string `json:"tags" form:"tags"`
}

// NoteUpdateRequest 部分更新的请求参数，nil 字段不变更
// id/createdAt/ownerId 不可通过此接口变更
type NoteUpdateRequest struct {
	ID         string    `json:"id" form:"id" binding:"required"`
	Title      *string   `json:"title" form:"title"`
	Content    *string   `json:"content" form:"content"`
	Tags       *[]string `json:"tags" form:"tags"`
	IsFavorite *bool     `json:"isFavorite" form:"isFavorite"`
}

// NoteIDRequest 按 ID 操作的通用参数
type NoteIDRequest struct {
	ID string `json:"id" form:"id" binding:"required"`
}

// NoteListRequest 获取笔记列表的参数
type NoteListRequest struct {
	// View 视图选择器: all / favorites / deleted
	View string `json:"view" form:"view"`
	// Collection 激活的智能集合 ID，设置后取代视图选择器
	Collection string `json:"collection" form:"collection"`
	// Keyword 自由文本检索
	Keyword string `json:"q" form:"q"`
	// Grouped 是否返回时间分桶（仅默认视图、无检索、无智能集合时生效）
	Grouped bool `json:"grouped" form:"grouped"`
}

// NoteListResponse 列表响应
type NoteListResponse struct {
	Notes   []*model.Note     `json:"notes"`
	Buckets []view.TimeBucket `json:"buckets,omitempty"`
}

// NoteImportResponse 导入结果
type NoteImportResponse struct {
	Added int `json:"added"`
}

// SmartCollectionDTO 智能集合元信息
type SmartCollectionDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NoteExportDTO 导出产物：文件名以及序列化后的集合内容
type NoteExportDTO struct {
	Filename string `json:"filename"`
	Payload  string `json:"payload"`
}
