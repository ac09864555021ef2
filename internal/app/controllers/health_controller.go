package controllers

import (
	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/domain/services/container"
	"meditrack-http-service/internal/error/response"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct {
	Container *container.ServiceContainer
}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController(container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{Container: container}
}

// Ping 健康检查端点
// @Summary      健康检查
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (h *HealthCheckController) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Health 就绪检查端点，探测存储层是否可用
// @Summary      就绪检查
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  response.ErrorResponse
// @Router       /health [get]
func (h *HealthCheckController) Health(c *gin.Context) {
	if _, err := h.Container.GetStore().CountUsers(); err != nil {
		response.ServerError(c, "Storage unavailable")
		return
	}

	response.Success(c, gin.H{
		"status": "ok",
	})
}
