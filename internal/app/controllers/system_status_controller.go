package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/domain/services/container"
	"meditrack-http-service/internal/error/code"
	"meditrack-http-service/internal/error/response"
)

// InterfaceSystemStatusController 定义系统状态控制器接口
type InterfaceSystemStatusController interface {
	GetAllStatuses()
	UpdateStatus()
}

// SystemStatusController 系统状态控制器
type SystemStatusController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSystemStatusController 创建一个新的系统状态控制器
func NewSystemStatusController(ctx *gin.Context, container *container.ServiceContainer) *SystemStatusController {
	return &SystemStatusController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateSystemStatusRequest 更新系统状态请求，所有字段可选
type UpdateSystemStatusRequest struct {
	Name   *string `json:"name" example:"GPS Tracking"`
	Status *string `json:"status" binding:"omitempty,oneof=operational partial offline" example:"operational"`
	Icon   *string `json:"icon" example:"fa-satellite"`
}

// HandleSystemStatusFunc 返回一个处理系统状态请求的Gin处理函数
func HandleSystemStatusFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSystemStatusController(ctx, container)

		switch method {
		case "getAllStatuses":
			controller.GetAllStatuses()
		case "updateStatus":
			controller.UpdateStatus()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// 1. GetAllStatuses 获取全部系统状态
// @Summary      获取全部系统状态
// @Description  返回所有系统组件的运行状态，公开端点
// @Tags         SystemStatus
// @Accept       json
// @Produce      json
// @Success      200  {array}   models.SystemStatus
// @Router       /system-status [get]
func (c *SystemStatusController) GetAllStatuses() {
	systemService := c.Container.GetService("system").(services.InterfaceSystemService)
	statuses, err := systemService.GetAllStatuses()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to get system statuses")
		return
	}

	response.Success(c.Ctx, statuses)
}

// 2. UpdateStatus 更新系统状态
// @Summary      更新系统状态
// @Description  部分更新系统组件状态，仅限管理员
// @Tags         SystemStatus
// @Accept       json
// @Produce      json
// @Param        id path int true "状态ID"
// @Param        request body UpdateSystemStatusRequest true "要更新的字段"
// @Success      200  {object}  models.SystemStatus
// @Failure      400  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /system-status/{id} [patch]
// @Security     BearerAuth
func (c *SystemStatusController) UpdateStatus() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid status ID")
		return
	}

	var req UpdateSystemStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}

	systemService := c.Container.GetService("system").(services.InterfaceSystemService)
	status, err := systemService.UpdateStatus(uint(id), updates)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to update system status")
		return
	}
	if status == nil {
		response.Fail(c.Ctx, code.ErrSystemStatusNotFound)
		return
	}

	response.Success(c.Ctx, status)
}
