package controllers

import (
	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/domain/services/container"
	"meditrack-http-service/internal/error/code"
	"meditrack-http-service/internal/error/response"
)

// ActivityController 活动日志控制器
type ActivityController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewActivityController 创建一个新的活动日志控制器
func NewActivityController(ctx *gin.Context, container *container.ServiceContainer) *ActivityController {
	return &ActivityController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleActivityFunc 返回一个处理活动日志请求的Gin处理函数
func HandleActivityFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewActivityController(ctx, container)

		switch method {
		case "getAllActivities":
			controller.GetAllActivities()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// 1. GetAllActivities 获取全部活动日志
// @Summary      获取全部活动日志
// @Description  按时间倒序返回系统活动日志，公开端点
// @Tags         Activity
// @Accept       json
// @Produce      json
// @Success      200  {array}   models.Activity
// @Router       /activities [get]
func (c *ActivityController) GetAllActivities() {
	activityService := c.Container.GetService("activity").(services.InterfaceActivityService)
	activities, err := activityService.GetAllActivities()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to get activities")
		return
	}

	response.Success(c.Ctx, activities)
}
