package controllers

import (
	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/app/middleware"
	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/domain/services/container"
	"meditrack-http-service/internal/error/code"
	"meditrack-http-service/internal/error/response"
)

// SettingsController 用户设置控制器
type SettingsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSettingsController 创建一个新的设置控制器
func NewSettingsController(ctx *gin.Context, container *container.ServiceContainer) *SettingsController {
	return &SettingsController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateSettingsRequest 更新用户设置请求，所有字段可选
type UpdateSettingsRequest struct {
	EmergencyAlerts         *bool `json:"emergencyAlerts"`
	EmailNotifications      *bool `json:"emailNotifications"`
	SmsNotifications        *bool `json:"smsNotifications"`
	LocationSharing         *bool `json:"locationSharing"`
	AnonymousDataCollection *bool `json:"anonymousDataCollection"`
}

// HandleSettingsFunc 返回一个处理设置请求的Gin处理函数
func HandleSettingsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSettingsController(ctx, container)

		switch method {
		case "getSettings":
			controller.GetSettings()
		case "updateSettings":
			controller.UpdateSettings()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// 1. GetSettings 获取当前用户设置
// @Summary      获取当前用户设置
// @Description  返回认证调用者的偏好设置
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Setting
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /settings [get]
// @Security     BearerAuth
func (c *SettingsController) GetSettings() {
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	settings, err := userService.GetSettings(middleware.CallerID(c.Ctx))
	if err != nil {
		response.ServerError(c.Ctx, "Failed to get settings")
		return
	}
	if settings == nil {
		response.Fail(c.Ctx, code.ErrSettingsNotFound)
		return
	}

	response.Success(c.Ctx, settings)
}

// 2. UpdateSettings 更新当前用户设置
// @Summary      更新当前用户设置
// @Description  部分更新偏好设置，设置行不存在时自动创建
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body UpdateSettingsRequest true "要更新的开关"
// @Success      200  {object}  models.Setting
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Router       /settings [patch]
// @Security     BearerAuth
func (c *SettingsController) UpdateSettings() {
	var req UpdateSettingsRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	updates := make(map[string]interface{})
	if req.EmergencyAlerts != nil {
		updates["emergency_alerts"] = *req.EmergencyAlerts
	}
	if req.EmailNotifications != nil {
		updates["email_notifications"] = *req.EmailNotifications
	}
	if req.SmsNotifications != nil {
		updates["sms_notifications"] = *req.SmsNotifications
	}
	if req.LocationSharing != nil {
		updates["location_sharing"] = *req.LocationSharing
	}
	if req.AnonymousDataCollection != nil {
		updates["anonymous_data_collection"] = *req.AnonymousDataCollection
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	settings, err := userService.UpdateSettings(middleware.CallerID(c.Ctx), updates)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to update settings")
		return
	}

	response.Success(c.Ctx, settings)
}
