package controllers

import (
	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/domain/services/container"
	"meditrack-http-service/internal/error/code"
	"meditrack-http-service/internal/error/response"
)

// StatsController 聚合统计控制器
type StatsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStatsController 创建一个新的统计控制器
func NewStatsController(ctx *gin.Context, container *container.ServiceContainer) *StatsController {
	return &StatsController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleStatsFunc 返回一个处理统计请求的Gin处理函数
func HandleStatsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStatsController(ctx, container)

		switch method {
		case "getStats":
			controller.GetStats()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// 1. GetStats 获取聚合统计
// @Summary      获取聚合统计
// @Description  返回全局统计单例，公开端点。统计行尚未生成时返回404
// @Tags         Stats
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Stats
// @Failure      404  {object}  response.ErrorResponse
// @Router       /stats [get]
func (c *StatsController) GetStats() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.GetStats()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to get stats")
		return
	}
	if stats == nil {
		response.Fail(c.Ctx, code.ErrStatsNotFound)
		return
	}

	response.Success(c.Ctx, stats)
}
