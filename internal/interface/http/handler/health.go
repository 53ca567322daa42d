package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// Pinger 依赖可用性检查
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler 健康检查
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Ping 存活检查
// @Summary  存活检查
// @Tags     系统
// @Produce  json
// @Success  200 {object} dto.HealthResponse
// @Router   /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Message: "pong", Status: "healthy"})
}

// Ready 就绪检查,数据库不可用时返回503
// @Summary  就绪检查
// @Tags     系统
// @Produce  json
// @Success  200 {object} dto.HealthResponse
// @Failure  503 {object} dto.HealthResponse
// @Router   /healthz [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		response.Logger(c).Warn("就绪检查失败", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ready"})
}
