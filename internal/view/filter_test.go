package view

import (
	"reflect"
	"testing"
	"time"

	"github.com/haierkeys/note-vault/internal/model"
	"github.com/haierkeys/note-vault/pkg/timex"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

var filterNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return NewEngine().WithClock(func() time.Time { return filterNow })
}

func daysAgo(d int) timex.Time {
	return timex.Time(filterNow.AddDate(0, 0, -d))
}

// 固定样本集合：最新在前
func sampleNotes() []*model.Note {
	return []*model.Note{
		{ID: "n1", Title: "Standup notes", Content: "sprint planning", Tags: []string{"work"}, IsFavorite: true, CreatedAt: daysAgo(0)},
		{ID: "n2", Title: "Groceries", Content: "milk and EGGS", Tags: []string{}, CreatedAt: daysAgo(1)},
		{ID: "n3", Title: "Old draft", Content: "forgotten", Tags: []string{"work", "draft"}, IsDeleted: true, CreatedAt: daysAgo(2)},
		{ID: "n4", Title: "Go generics", Content: "type parameters", Tags: []string{"go"}, IsFavorite: true, CreatedAt: daysAgo(10)},
		{ID: "n5", Title: "Trip ideas", Content: "mountains", Tags: []string{}, IsDeleted: true, CreatedAt: daysAgo(30)},
	}
}

func idsOf(notes []*model.Note) []string {
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestFilterViews(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name    string
		view    View
		wantIDs []string
	}{
		{"all excludes deleted", ViewAll, []string{"n1", "n2", "n4"}},
		{"empty selector defaults to all", "", []string{"n1", "n2", "n4"}},
		{"favorites excludes deleted", ViewFavorites, []string{"n1", "n4"}},
		{"deleted is trash only", ViewDeleted, []string{"n3", "n5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Filter(sampleNotes(), tt.view, "", "")
			assert.Nil(t, err)
			assert.Equal(t, tt.wantIDs, idsOf(got))
		})
	}

	_, err := e.Filter(sampleNotes(), "starred", "", "")
	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestFilterSmartCollections(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name       string
		collection string
		wantIDs    []string
	}{
		// n3 在 7 天内但已软删除，智能集合不见回收站内容
		{"last-week", "last-week", []string{"n1", "n2"}},
		{"work-notes", "work-notes", []string{"n1"}},
		{"untagged", "untagged", []string{"n2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Filter(sampleNotes(), "", tt.collection, "")
			assert.Nil(t, err)
			assert.Equal(t, tt.wantIDs, idsOf(got))
		})
	}

	_, err := e.Filter(sampleNotes(), "", "no-such-collection", "")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestLastWeekBoundaryIsInclusive(t *testing.T) {
	e := newTestEngine()
	notes := []*model.Note{
		{ID: "edge", CreatedAt: daysAgo(7)},
		{ID: "past", CreatedAt: timex.Time(filterNow.AddDate(0, 0, -7).Add(-time.Second))},
	}

	got, err := e.Filter(notes, "", "last-week", "")
	assert.Nil(t, err)
	// 恰好 7 天前算在内，再早一秒不算
	assert.Equal(t, []string{"edge"}, idsOf(got))
}

func TestSearchRefinement(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name    string
		view    View
		query   string
		wantIDs []string
	}{
		{"title match case-insensitive", ViewAll, "STANDUP", []string{"n1"}},
		{"content match case-insensitive", ViewAll, "eggs", []string{"n2"}},
		{"tag substring match", ViewAll, "go", []string{"n4"}},
		{"union across fields", ViewAll, "o", []string{"n1", "n2", "n4"}},
		{"search composes with view", ViewDeleted, "draft", []string{"n3"}},
		{"whitespace-only query is no refinement", ViewAll, "   ", []string{"n1", "n2", "n4"}},
		{"no matches yields empty not nil", ViewAll, "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Filter(sampleNotes(), tt.view, "", tt.query)
			assert.Nil(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, tt.wantIDs, idsOf(got))
		})
	}
}

func TestSearchComposesWithCollection(t *testing.T) {
	e := newTestEngine()

	got, err := e.Filter(sampleNotes(), "", "last-week", "milk")
	assert.Nil(t, err)
	assert.Equal(t, []string{"n2"}, idsOf(got))
}

func TestCollectionByID(t *testing.T) {
	c, ok := CollectionByID("work-notes")
	assert.True(t, ok)
	assert.Equal(t, "Work Notes", c.Label)

	_, ok = CollectionByID("bogus")
	assert.False(t, ok)
}

// 基础视图互补性：all 与 deleted 恰好二分整个集合，favorites 是 all 的子集，
// 且每个结果都保持输入顺序
func TestPropertyViewPartition(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	noteGen := gen.Struct(reflect.TypeOf(plainNote{}), map[string]gopter.Gen{
		"ID":         gen.Identifier(),
		"Title":      gen.AlphaString(),
		"IsFavorite": gen.Bool(),
		"IsDeleted":  gen.Bool(),
	})

	properties.Property("all and deleted partition the collection", prop.ForAll(
		func(plain []plainNote) bool {
			e := newTestEngine()
			notes := toNotes(plain)

			all, err := e.Filter(notes, ViewAll, "", "")
			if err != nil {
				return false
			}
			deleted, err := e.Filter(notes, ViewDeleted, "", "")
			if err != nil {
				return false
			}
			favorites, err := e.Filter(notes, ViewFavorites, "", "")
			if err != nil {
				return false
			}

			if len(all)+len(deleted) != len(notes) {
				return false
			}
			for _, n := range all {
				if n.IsDeleted {
					return false
				}
			}
			for _, n := range deleted {
				if !n.IsDeleted {
					return false
				}
			}
			// favorites ⊆ all
			if len(favorites) > len(all) {
				return false
			}
			for _, n := range favorites {
				if !n.IsFavorite || n.IsDeleted {
					return false
				}
			}
			// 各结果保持输入相对顺序
			return inInputOrder(notes, all) && inInputOrder(notes, deleted) && inInputOrder(notes, favorites)
		},
		gen.SliceOf(noteGen),
	))

	properties.TestingRun(t)
}

type plainNote struct {
	ID         string
	Title      string
	IsFavorite bool
	IsDeleted  bool
}

func toNotes(plain []plainNote) []*model.Note {
	notes := make([]*model.Note, 0, len(plain))
	for i, p := range plain {
		notes = append(notes, &model.Note{
			ID:         p.ID,
			Title:      p.Title,
			IsFavorite: p.IsFavorite,
			IsDeleted:  p.IsDeleted,
			CreatedAt:  daysAgo(i),
		})
	}
	return notes
}

// inInputOrder 验证 subset 在 input 中按原相对顺序出现
func inInputOrder(input, subset []*model.Note) bool {
	i := 0
	for _, n := range input {
		if i < len(subset) && subset[i] == n {
			i++
		}
	}
	return i == len(subset)
}
