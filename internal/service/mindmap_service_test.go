package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/haierkeys/note-vault/internal/dto"
	"github.com/haierkeys/note-vault/internal/model"
	"github.com/haierkeys/note-vault/internal/store"
	"github.com/haierkeys/note-vault/pkg/kvstore/memory"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMindMapSaveAsNote(t *testing.T) {
	ctx := context.Background()
	adapter := store.NewAdapter(memory.NewClient(), zap.NewNop())
	notes := store.New(adapter, zap.NewNop()).WithClock(func() time.Time { return serviceNow })
	svc := &mindMapService{
		notes:  notes,
		logger: zap.NewNop(),
		now:    func() time.Time { return serviceNow },
	}

	note, err := svc.SaveAsNote(ctx, "u1", &dto.MindMapSaveRequest{
		Nodes: []model.MindMapNode{
			{ID: "root", Text: "Central Idea", X: 100, Y: 80},
			{ID: "child", Text: "Branch", X: 220, Y: 140, Color: "#ff8800"},
		},
		Connections: []model.MindMapConnection{{From: "root", To: "child"}},
	})
	assert.Nil(t, err)

	assert.Equal(t, "Mind Map - 2026-08-20", note.Title)
	assert.Equal(t, []string{"mindmap", "visualization"}, note.Tags)
	assert.Equal(t, "u1", note.OwnerID)

	// 笔记正文携带可回读的文档 JSON
	assert.True(t, strings.HasPrefix(note.Content, "# Mind Map\n\n```json\n"))
	body := strings.TrimSuffix(strings.TrimPrefix(note.Content, "# Mind Map\n\n```json\n"), "\n```\n")
	var doc model.MindMapDocument
	assert.Nil(t, sonic.Unmarshal([]byte(body), &doc))
	assert.Len(t, doc.Nodes, 2)
	assert.Len(t, doc.Connections, 1)
	assert.Equal(t, "Central Idea", doc.Nodes[0].Text)

	// 固化结果是普通笔记，会出现在集合里
	listed, err := notes.List("u1")
	assert.Nil(t, err)
	assert.Len(t, listed, 1)
}
