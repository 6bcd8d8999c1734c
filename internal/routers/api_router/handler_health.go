package api_router

import (
	"time"

	"github.com/haierkeys/note-vault/internal/app"
	pkgapp "github.com/haierkeys/note-vault/pkg/app"
	"github.com/haierkeys/note-vault/pkg/code"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string  `json:"status"`  // "healthy" 或 "unhealthy"
	Version string  `json:"version"` // 服务版本号
	Uptime  float64 `json:"uptime"`  // 运行时间（秒）
	Storage string  `json:"storage"` // "connected" 或 "error"
}

// Check 健康检查接口，探测存储介质可读性
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:  "healthy",
		Version: h.App.Version().Version,
		Uptime:  time.Since(h.App.StartTime).Seconds(),
		Storage: "connected",
	}

	// 探测存储介质
	if _, _, err := h.App.Medium().Get("health_probe"); err != nil {
		response.Status = "unhealthy"
		response.Storage = "error"
		pkgapp.NewResponse(c).ToResponse(code.ErrorStorageFailure.WithData(response))
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(response))
}
