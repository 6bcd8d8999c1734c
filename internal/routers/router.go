// Package routers 组装 HTTP 路由与中间件链
package routers

import (
	"time"

	"github.com/haierkeys/note-vault/internal/app"
	"github.com/haierkeys/note-vault/internal/middleware"
	"github.com/haierkeys/note-vault/internal/routers/api_router"
	"github.com/haierkeys/note-vault/pkg/limiter"

	"github.com/gin-gonic/gin"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/user",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter 创建公共 HTTP 路由
func NewRouter(appContainer *app.App) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfo())
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		userHandler := api_router.NewUserHandler(appContainer)
		noteHandler := api_router.NewNoteHandler(appContainer)
		pomodoroHandler := api_router.NewPomodoroHandler(appContainer)
		mindMapHandler := api_router.NewMindMapHandler(appContainer)
		promptHandler := api_router.NewPromptHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		// 无需认证的接口
		api.POST("/user/register", userHandler.Register)
		api.POST("/user/login", userHandler.Login)
		api.GET("/version", versionHandler.ServerVersion)
		api.GET("/health", healthHandler.Check)
		api.GET("/prompt/daily", promptHandler.Daily)

		// 必须携带有效 Token 的接口
		authed := api.Group("", middleware.UserAuthToken(appContainer.TokenManager))
		authed.GET("/user/info", userHandler.Info)
		authed.POST("/user/settings", userHandler.UpdateSettings)

		// 可选认证：匿名请求落到访客集合
		notes := api.Group("", middleware.OptionalUserAuthToken(appContainer.TokenManager))
		notes.GET("/notes", noteHandler.List)
		notes.GET("/note", noteHandler.Get)
		notes.POST("/note", noteHandler.Create)
		notes.PUT("/note", noteHandler.Update)
		notes.DELETE("/note", noteHandler.Delete)
		notes.POST("/note/favorite", noteHandler.Favorite)
		notes.PUT("/note/restore", noteHandler.Restore)
		notes.DELETE("/note/purge", noteHandler.Purge)
		notes.GET("/notes/stats", noteHandler.Stats)
		notes.GET("/notes/export", noteHandler.Export)
		notes.POST("/notes/import", noteHandler.Import)
		notes.GET("/notes/collections", noteHandler.Collections)

		notes.GET("/pomodoro", pomodoroHandler.Get)
		notes.POST("/pomodoro", pomodoroHandler.Update)
		notes.POST("/pomodoro/complete", pomodoroHandler.Complete)

		notes.POST("/mindmap", mindMapHandler.Save)
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
