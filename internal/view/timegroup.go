package view

import (
	"time"

	"github.com/haierkeys/note-vault/internal/model"
)

// 桶标签，按展示顺序
const (
	BucketToday     = "Today"
	BucketYesterday = "Yesterday"
	BucketThisWeek  = "This Week"
	BucketThisMonth = "This Month"
	BucketOlder     = "Older"
)

// TimeBucket 一个命名日期区间及其笔记
type TimeBucket struct {
	Label string        `json:"label"`
	Notes []*model.Note `json:"notes"`
}

// GroupByTime partitions notes into ordered presentation buckets computed
// from day-granularity boundaries at wall-clock now. Every note lands in
// exactly one bucket; empty buckets are omitted; input order is preserved
// within each bucket.
// GroupByTime 按日粒度边界把笔记分进有序展示桶，空桶省略。
func (e *Engine) GroupByTime(notes []*model.Note) []TimeBucket {
	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)
	thisWeek := today.AddDate(0, 0, -7)
	thisMonth := today.AddDate(0, 0, -30)

	groups := map[string][]*model.Note{}
	for _, n := range notes {
		createdAt := n.CreatedAt.Time()
		switch {
		case !createdAt.Before(today):
			groups[BucketToday] = append(groups[BucketToday], n)
		case !createdAt.Before(yesterday):
			groups[BucketYesterday] = append(groups[BucketYesterday], n)
		case !createdAt.Before(thisWeek):
			groups[BucketThisWeek] = append(groups[BucketThisWeek], n)
		case !createdAt.Before(thisMonth):
			groups[BucketThisMonth] = append(groups[BucketThisMonth], n)
		default:
			groups[BucketOlder] = append(groups[BucketOlder], n)
		}
	}

	var buckets []TimeBucket
	for _, label := range []string{BucketToday, BucketYesterday, BucketThisWeek, BucketThisMonth, BucketOlder} {
		if len(groups[label]) > 0 {
			buckets = append(buckets, TimeBucket{Label: label, Notes: groups[label]})
		}
	}
	return buckets
}
