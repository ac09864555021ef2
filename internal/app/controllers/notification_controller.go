package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/app/middleware"
	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/domain/services/container"
	"meditrack-http-service/internal/error/code"
	"meditrack-http-service/internal/error/response"
)

// NotificationController 站内通知控制器
type NotificationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNotificationController 创建一个新的通知控制器
func NewNotificationController(ctx *gin.Context, container *container.ServiceContainer) *NotificationController {
	return &NotificationController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleNotificationFunc 返回一个处理通知请求的Gin处理函数
func HandleNotificationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNotificationController(ctx, container)

		switch method {
		case "getMyNotifications":
			controller.GetMyNotifications()
		case "markAsRead":
			controller.MarkAsRead()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// 1. GetMyNotifications 获取当前用户的通知
// @Summary      获取当前用户的通知
// @Description  按创建时间倒序返回认证调用者的全部通知
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Success      200  {array}   models.Notification
// @Failure      401  {object}  response.ErrorResponse
// @Router       /notifications [get]
// @Security     BearerAuth
func (c *NotificationController) GetMyNotifications() {
	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	notifications, err := notificationService.GetNotificationsByUserID(middleware.CallerID(c.Ctx))
	if err != nil {
		response.ServerError(c.Ctx, "Failed to get notifications")
		return
	}

	response.Success(c.Ctx, notifications)
}

// 2. MarkAsRead 标记通知为已读
// @Summary      标记通知为已读
// @Description  将指定通知标记为已读并返回更新后的记录
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Param        id path int true "通知ID"
// @Success      200  {object}  models.Notification
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /notifications/{id}/read [patch]
// @Security     BearerAuth
func (c *NotificationController) MarkAsRead() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid notification ID")
		return
	}

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	notification, err := notificationService.MarkAsRead(uint(id))
	if err != nil {
		response.ServerError(c.Ctx, "Failed to mark notification as read")
		return
	}
	if notification == nil {
		response.Fail(c.Ctx, code.ErrNotificationNotFound)
		return
	}

	response.Success(c.Ctx, notification)
}
