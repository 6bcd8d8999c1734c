// Package task 后台定时任务调度
package task

import (
	"context"
	"time"

	"github.com/haierkeys/note-vault/pkg/safe_close"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Task 定义任务接口
type Task interface {
	Name() string                  // 任务名称
	Run(ctx context.Context) error // 执行任务
	LoopInterval() time.Duration   // 执行间隔
	IsStartupRun() bool            // 是否立即执行一次
}

// CronTask 按 cron 表达式调度的任务
// 实现该接口的任务忽略 LoopInterval，按计划表触发
type CronTask interface {
	Task
	Schedule() cron.Schedule
}

// Scheduler 任务调度器
type Scheduler struct {
	logger *zap.Logger
	tasks  []Task
	sc     *safe_close.SafeClose
}

// NewScheduler 创建任务调度器
func NewScheduler(logger *zap.Logger, sc *safe_close.SafeClose) *Scheduler {
	return &Scheduler{
		logger: logger,
		tasks:  make([]Task, 0),
		sc:     sc,
	}
}

// AddTask 添加任务
func (s *Scheduler) AddTask(task Task) {
	s.tasks = append(s.tasks, task)
}

// Start 启动所有任务
func (s *Scheduler) Start() {
	if len(s.tasks) == 0 {
		s.logger.Info("no tasks to schedule")
		return
	}

	s.logger.Info("tasks starting ", zap.Int("count", len(s.tasks)))

	for _, task := range s.tasks {
		s.startTask(task)
	}
}

// runOnce 执行一次任务并吞掉 panic
func (s *Scheduler) runOnce(task Task, trigger string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task run panic",
				zap.String("name", task.Name()),
				zap.String("trigger", trigger),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()
	s.logger.Info("task running", zap.String("name", task.Name()), zap.String("trigger", trigger))
	if err := task.Run(context.Background()); err != nil {
		s.logger.Error("task running error",
			zap.String("name", task.Name()),
			zap.String("trigger", trigger),
			zap.Error(err))
	}
}

// startTask 启动单个任务
func (s *Scheduler) startTask(task Task) {

	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()

		// 如果任务需要立即执行
		if task.IsStartupRun() {
			go s.runOnce(task, "startup")
		}

		// cron 调度的任务按计划表触发
		if ct, ok := task.(CronTask); ok {
			s.loopCron(ct, closeSignal)
			return
		}

		if task.LoopInterval() <= 0 {
			return
		}

		ticker := time.NewTicker(task.LoopInterval())
		defer ticker.Stop()

		// 定时执行
		for {
			select {
			case <-ticker.C:
				s.runOnce(task, "loop")
			case <-closeSignal:
				s.logger.Info("task stopped", zap.String("name", task.Name()))
				return
			}
		}
	})
}

// loopCron 按 cron 计划表循环触发
func (s *Scheduler) loopCron(task CronTask, closeSignal <-chan struct{}) {
	timer := time.NewTimer(time.Until(task.Schedule().Next(time.Now())))
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			s.runOnce(task, "cron")
			timer.Reset(time.Until(task.Schedule().Next(time.Now())))
		case <-closeSignal:
			s.logger.Info("task stopped", zap.String("name", task.Name()))
			return
		}
	}
}
