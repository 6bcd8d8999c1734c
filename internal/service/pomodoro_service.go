package service

import (
	"context"
	"sync"

	"github.com/haierkeys/note-vault/internal/model"
	"github.com/haierkeys/note-vault/internal/store"
	"github.com/haierkeys/note-vault/pkg/code"
	"github.com/haierkeys/note-vault/pkg/logger"
	"github.com/haierkeys/note-vault/pkg/kvstore"
	"github.com/haierkeys/note-vault/pkg/timex"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// PomodoroService 番茄钟设置与完成计数，按用户独立持久化
type PomodoroService interface {
	Get(ctx context.Context, uid string) (*model.PomodoroState, error)
	Update(ctx context.Context, uid string, focusMinutes int, breakMinutes int) (*model.PomodoroState, error)
	Complete(ctx context.Context, uid string) (*model.PomodoroState, error)
}

type pomodoroService struct {
	medium kvstore.Store
	logger *zap.Logger

	mu sync.Mutex
}

// NewPomodoroService 创建 PomodoroService 实例
func NewPomodoroService(medium kvstore.Store, lg *zap.Logger) PomodoroService {
	return &pomodoroService{medium: medium, logger: lg}
}

func pomodoroStorageKey(uid string) string {
	return "pomodoro_" + store.OwnerOrGuest(uid)
}

func (svc *pomodoroService) Get(ctx context.Context, uid string) (*model.PomodoroState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.load(uid)
}

func (svc *pomodoroService) Update(ctx context.Context, uid string, focusMinutes int, breakMinutes int) (*model.PomodoroState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	svc.mu.Lock()
	defer svc.mu.Unlock()

	state, err := svc.load(uid)
	if err != nil {
		return nil, err
	}
	state.FocusMinutes = focusMinutes
	state.BreakMinutes = breakMinutes
	state.UpdatedAt = timex.Now()
	if err := svc.save(uid, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (svc *pomodoroService) Complete(ctx context.Context, uid string) (*model.PomodoroState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	svc.mu.Lock()
	defer svc.mu.Unlock()

	state, err := svc.load(uid)
	if err != nil {
		return nil, err
	}
	state.CompletedSessions++
	state.UpdatedAt = timex.Now()
	if err := svc.save(uid, state); err != nil {
		return nil, err
	}
	svc.logger.Info("pomodoro session completed",
		zap.String(logger.FieldUID, store.OwnerOrGuest(uid)),
		zap.Int("completedSessions", state.CompletedSessions))
	return state, nil
}

// load 调用方需持有锁；缺失或损坏时回落到默认状态
func (svc *pomodoroService) load(uid string) (*model.PomodoroState, error) {
	key := pomodoroStorageKey(uid)
	raw, ok, err := svc.medium.Get(key)
	if err != nil {
		return nil, code.ErrorStorageFailure.WithDetails(err.Error())
	}
	if !ok {
		return model.DefaultPomodoroState(), nil
	}
	state := &model.PomodoroState{}
	if err := sonic.Unmarshal([]byte(raw), state); err != nil {
		svc.logger.Error("stored pomodoro state is malformed, using defaults",
			zap.String("key", key), zap.Error(err))
		return model.DefaultPomodoroState(), nil
	}
	return state, nil
}

func (svc *pomodoroService) save(uid string, state *model.PomodoroState) error {
	data, err := sonic.Marshal(state)
	if err != nil {
		return code.ErrorServerInternal.WithDetails(err.Error())
	}
	if err := svc.medium.Set(pomodoroStorageKey(uid), string(data)); err != nil {
		return code.ErrorStorageFailure.WithDetails(err.Error())
	}
	return nil
}
