package dto

import (
	"github.com/haierkeys/note-vault/internal/model"
)

// MindMapSaveRequest 保存思维导图为笔记的请求参数
type MindMapSaveRequest struct {
	Nodes       []model.MindMapNode       `json:"nodes" binding:"required"`
	Connections []model.MindMapConnection `json:"connections"`
}

// PromptDTO 每日写作提示
type PromptDTO struct {
	Date   string `json:"date"`
	Prompt string `json:"prompt"`
}
