package task

import (
	"context"
	"time"

	"github.com/haierkeys/note-vault/internal/app"
	"github.com/haierkeys/note-vault/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// init 自动注册回收站清理任务
func init() {
	Register(NewTrashCleanupTask)
}

// TrashCleanupTask 回收站清理任务
// 按计划表扫描所有集合，彻底删除超过保留期限的软删除笔记
type TrashCleanupTask struct {
	app       *app.App
	retention time.Duration
	schedule  cron.Schedule
}

// NewTrashCleanupTask 创建回收站清理任务
// 保留时间为 0 或负数时任务不启用
func NewTrashCleanupTask(a *app.App) (Task, error) {
	cfg := a.Config()
	retention := cfg.GetTrashRetention()
	if retention <= 0 {
		return nil, nil
	}

	schedule, err := cron.ParseStandard(cfg.App.TrashCleanupSchedule)
	if err != nil {
		return nil, err
	}

	return &TrashCleanupTask{
		app:       a,
		retention: retention,
		schedule:  schedule,
	}, nil
}

// Name 返回任务名称
func (t *TrashCleanupTask) Name() string {
	return "TrashCleanupTask"
}

// Run 执行清理任务
func (t *TrashCleanupTask) Run(ctx context.Context) error {
	ids, err := t.app.UserService.AllUserIDs(ctx)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-t.retention)
	total := 0
	for _, ownerID := range ids {
		purged, err := t.app.NoteStore.PurgeDeletedBefore(ownerID, cutoff)
		if err != nil {
			t.app.Logger().Error("trash cleanup failed for collection",
				zap.String(logger.FieldUID, ownerID), zap.Error(err))
			continue
		}
		total += purged
	}

	t.app.Logger().Info("trash cleanup completed",
		zap.Int("purged", total),
		zap.Time("cutoff", cutoff))
	return nil
}

// LoopInterval cron 任务不使用固定间隔
func (t *TrashCleanupTask) LoopInterval() time.Duration {
	return 0
}

// Schedule 返回 cron 计划表
func (t *TrashCleanupTask) Schedule() cron.Schedule {
	return t.schedule
}

// IsStartupRun 是否立即执行一次
func (t *TrashCleanupTask) IsStartupRun() bool {
	return true
}
