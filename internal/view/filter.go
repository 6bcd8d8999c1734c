// Package view 从完整集合推导可见笔记子集，纯函数，不持有状态
package view

import (
	"strings"
	"time"

	"github.com/haierkeys/note-vault/internal/model"

	"github.com/pkg/errors"
)

// View 基础视图选择器
type View = string

const (
	// ViewAll 全部未删除笔记
	ViewAll View = "all"
	// ViewFavorites 收藏且未删除
	ViewFavorites View = "favorites"
	// ViewDeleted 仅回收站
	ViewDeleted View = "deleted"
)

var (
	ErrUnknownView       = errors.New("view: unknown view selector")
	ErrUnknownCollection = errors.New("view: unknown smart collection")
)

// Engine derives the display subset from (collection, view selector, smart
// collection, search query). It never re-sorts: the store yields newest
// created first and that order is preserved.
// Engine 视图过滤引擎，保持集合原有顺序，不重排。
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// WithClock 注入时钟
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Filter applies, in order: the base partition (view selector, or the smart
// collection predicate which replaces it entirely), then the free-text
// search refinement.
// An active smart collection additionally excludes soft-deleted notes:
// trash content is only ever reachable through the deleted view.
func (e *Engine) Filter(notes []*model.Note, v View, collectionID string, query string) ([]*model.Note, error) {
	var filtered []*model.Note

	if collectionID != "" {
		collection, ok := CollectionByID(collectionID)
		if !ok {
			return nil, ErrUnknownCollection
		}
		now := e.now()
		for _, n := range notes {
			if !n.IsDeleted && collection.Rule(n, now) {
				filtered = append(filtered, n)
			}
		}
	} else {
		switch v {
		case ViewAll, "":
			for _, n := range notes {
				if !n.IsDeleted {
					filtered = append(filtered, n)
				}
			}
		case ViewFavorites:
			for _, n := range notes {
				if n.IsFavorite && !n.IsDeleted {
					filtered = append(filtered, n)
				}
			}
		case ViewDeleted:
			for _, n := range notes {
				if n.IsDeleted {
					filtered = append(filtered, n)
				}
			}
		default:
			return nil, ErrUnknownView
		}
	}

	if q := strings.TrimSpace(query); q != "" {
		filtered = searchRefine(filtered, q)
	}
	if filtered == nil {
		filtered = []*model.Note{}
	}
	return filtered, nil
}

// searchRefine retains notes where title, content or any tag contains the
// query as a case-insensitive substring (union of the three matches).
func searchRefine(notes []*model.Note, query string) []*model.Note {
	q := strings.ToLower(query)
	var out []*model.Note
	for _, n := range notes {
		if matchesQuery(n, q) {
			out = append(out, n)
		}
	}
	return out
}

func matchesQuery(n *model.Note, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(n.Title), lowerQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), lowerQuery) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}
