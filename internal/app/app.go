// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/haierkeys/note-vault/internal/service"
	"github.com/haierkeys/note-vault/internal/store"
	"github.com/haierkeys/note-vault/internal/view"
	pkgapp "github.com/haierkeys/note-vault/pkg/app"
	"github.com/haierkeys/note-vault/pkg/kvstore"

	"go.uber.org/zap"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	medium kvstore.Store

	// 存储与视图层
	NoteStore  *store.Store
	ViewEngine *view.Engine

	// Service 层
	NoteService     service.NoteService
	UserService     service.UserService
	PomodoroService service.PomodoroService
	MindMapService  service.MindMapService
	PromptService   service.PromptService

	// 基础设施组件
	TokenManager pkgapp.TokenManager

	// 关闭控制
	shutdownCh chan struct{}
	wg         sync.WaitGroup

	// StartTime 进程启动时刻，供健康检查上报运行时长
	StartTime time.Time
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// medium: 持久化存储介质（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, medium kvstore.Store) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if medium == nil {
		return nil, fmt.Errorf("storage medium is required")
	}

	a := &App{
		config:     cfg,
		logger:     logger,
		medium:     medium,
		shutdownCh: make(chan struct{}),
		StartTime:  time.Now(),
	}

	// 初始化 TokenManager
	tokenConfig := pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Issuer:    "note-vault",
		Expiry:    cfg.GetTokenExpiry(),
	}
	a.TokenManager = pkgapp.NewTokenManager(tokenConfig)

	// 初始化存储与视图层
	adapter := store.NewAdapter(medium, logger)
	a.NoteStore = store.New(adapter, logger)
	a.ViewEngine = view.NewEngine()

	// 初始化 Service 层（依赖注入）
	a.NoteService = service.NewNoteService(a.NoteStore, a.ViewEngine, logger)
	a.UserService = service.NewUserService(medium, a.TokenManager, logger)
	a.PomodoroService = service.NewPomodoroService(medium, logger)
	a.MindMapService = service.NewMindMapService(a.NoteStore, logger)
	a.PromptService = service.NewPromptService()

	logger.Info("App container initialized successfully",
		zap.String("storage", string(cfg.Storage.Type)))

	return a, nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Medium 获取持久化存储介质
func (a *App) Medium() kvstore.Store {
	return a.medium
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// IsProductionMode 是否为生产模式
// 根据日志配置中的 Production 字段判断
func (a *App) IsProductionMode() bool {
	return a.config.Log.Production
}

// DefaultShutdownTimeout 默认关闭超时时间
const DefaultShutdownTimeout = 30 * time.Second

// Shutdown 优雅关闭应用容器
// 等待后台操作完成后关闭存储介质
// ctx 用于控制关闭超时，如果为 nil 则使用默认 30 秒超时
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("App container shutting down...")

	// 如果没有提供 context，使用默认超时
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
	}

	// 标记关闭
	select {
	case <-a.shutdownCh:
		// 已经关闭
		return nil
	default:
		close(a.shutdownCh)
	}

	var errs []error

	// 1. 等待所有后台操作完成
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("All background operations completed")
	case <-ctx.Done():
		a.logger.Warn("Shutdown timeout waiting for background operations")
		errs = append(errs, fmt.Errorf("background operations timeout: %w", ctx.Err()))
	}

	// 2. 关闭存储介质
	if err := a.medium.Close(); err != nil {
		errs = append(errs, fmt.Errorf("storage medium close: %w", err))
	} else {
		a.logger.Info("Storage medium closed")
	}

	if len(errs) > 0 {
		a.logger.Warn("App container shutdown completed with errors",
			zap.Int("errorCount", len(errs)))
		return fmt.Errorf("shutdown completed with %d errors: %v", len(errs), errs)
	}

	a.logger.Info("App container shutdown completed successfully")
	return nil
}

// IsShuttingDown 检查应用是否正在关闭
func (a *App) IsShuttingDown() bool {
	select {
	case <-a.shutdownCh:
		return true
	default:
		return false
	}
}

// ShutdownCh 返回关闭信号通道（用于监听关闭事件）
func (a *App) ShutdownCh() <-chan struct{} {
	return a.shutdownCh
}

// TrackOperation 跟踪后台操作（用于优雅关闭时等待）
// 返回一个函数，在操作完成时调用
func (a *App) TrackOperation() func() {
	a.wg.Add(1)
	return func() {
		a.wg.Done()
	}
}
