package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/app/middleware"
	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/domain/services/container"
	"meditrack-http-service/internal/error/code"
	"meditrack-http-service/internal/error/response"
)

// InterfaceEmergencyRequestController 定义紧急请求控制器接口
type InterfaceEmergencyRequestController interface {
	CreateRequest()
	GetAllRequests()
	GetMyRequests()
	UpdateRequest()
}

// EmergencyRequestController 紧急请求控制器
type EmergencyRequestController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEmergencyRequestController 创建一个新的紧急请求控制器
func NewEmergencyRequestController(ctx *gin.Context, container *container.ServiceContainer) *EmergencyRequestController {
	return &EmergencyRequestController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateEmergencyRequestRequest 创建紧急请求的请求体。
// userId 来自认证上下文，请求体中的同名字段会被忽略。
type CreateEmergencyRequestRequest struct {
	Latitude       string `json:"latitude" binding:"required" example:"40.7128"`
	Longitude      string `json:"longitude" binding:"required" example:"-74.0060"`
	Description    string `json:"description" example:"Medical emergency"`
	Status         string `json:"status" binding:"omitempty,oneof=pending in_progress resolved cancelled critical" example:"pending"`
	ResponseTeamID *uint  `json:"responseTeamId"`
}

// UpdateEmergencyRequestRequest 更新紧急请求的请求体，所有字段可选
type UpdateEmergencyRequestRequest struct {
	Status         *string `json:"status" binding:"omitempty,oneof=pending in_progress resolved cancelled critical" example:"resolved"`
	Latitude       *string `json:"latitude" example:"40.7128"`
	Longitude      *string `json:"longitude" example:"-74.0060"`
	Description    *string `json:"description" example:"Updated description"`
	ResponseTeamID *uint   `json:"responseTeamId"`
}

// HandleEmergencyRequestFunc 返回一个处理紧急请求的Gin处理函数
func HandleEmergencyRequestFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEmergencyRequestController(ctx, container)

		switch method {
		case "createRequest":
			controller.CreateRequest()
		case "getAllRequests":
			controller.GetAllRequests()
		case "getMyRequests":
			controller.GetMyRequests()
		case "updateRequest":
			controller.UpdateRequest()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// 1. CreateRequest 创建紧急请求
// @Summary      创建紧急请求
// @Description  以认证调用者身份上报一条紧急求助请求
// @Tags         EmergencyRequest
// @Accept       json
// @Produce      json
// @Param        request body CreateEmergencyRequestRequest true "请求信息"
// @Success      201  {object}  models.EmergencyRequest
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /emergency-requests [post]
// @Security     BearerAuth
func (c *EmergencyRequestController) CreateRequest() {
	var req CreateEmergencyRequestRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	request := &models.EmergencyRequest{
		UserID:         middleware.CallerID(c.Ctx),
		Status:         req.Status,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Description:    req.Description,
		ResponseTeamID: req.ResponseTeamID,
	}

	emergencyService := c.Container.GetService("emergency").(services.InterfaceEmergencyService)
	if err := emergencyService.CreateRequest(request); err != nil {
		response.ServerError(c.Ctx, "Failed to create emergency request")
		return
	}

	response.Created(c.Ctx, request)
}

// 2. GetAllRequests 获取全部紧急请求
// @Summary      获取全部紧急请求
// @Description  返回系统中所有紧急请求，仅限管理员和响应队伍
// @Tags         EmergencyRequest
// @Accept       json
// @Produce      json
// @Success      200  {array}   models.EmergencyRequest
// @Failure      401  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Router       /emergency-requests [get]
// @Security     BearerAuth
func (c *EmergencyRequestController) GetAllRequests() {
	emergencyService := c.Container.GetService("emergency").(services.InterfaceEmergencyService)
	requests, err := emergencyService.GetAllRequests()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to get emergency requests")
		return
	}

	response.Success(c.Ctx, requests)
}

// 3. GetMyRequests 获取当前用户的紧急请求
// @Summary      获取当前用户的紧急请求
// @Description  返回认证调用者上报的全部紧急请求
// @Tags         EmergencyRequest
// @Accept       json
// @Produce      json
// @Success      200  {array}   models.EmergencyRequest
// @Failure      401  {object}  response.ErrorResponse
// @Router       /emergency-requests/me [get]
// @Security     BearerAuth
func (c *EmergencyRequestController) GetMyRequests() {
	emergencyService := c.Container.GetService("emergency").(services.InterfaceEmergencyService)
	requests, err := emergencyService.GetRequestsByUserID(middleware.CallerID(c.Ctx))
	if err != nil {
		response.ServerError(c.Ctx, "Failed to get emergency requests")
		return
	}

	response.Success(c.Ctx, requests)
}

// 4. UpdateRequest 更新紧急请求
// @Summary      更新紧急请求
// @Description  部分更新紧急请求字段，仅限管理员和响应队伍
// @Tags         EmergencyRequest
// @Accept       json
// @Produce      json
// @Param        id path int true "请求ID"
// @Param        request body UpdateEmergencyRequestRequest true "要更新的字段"
// @Success      200  {object}  models.EmergencyRequest
// @Failure      400  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /emergency-requests/{id} [patch]
// @Security     BearerAuth
func (c *EmergencyRequestController) UpdateRequest() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request ID")
		return
	}

	var req UpdateEmergencyRequestRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ResponseTeamID != nil {
		updates["response_team_id"] = *req.ResponseTeamID
	}

	emergencyService := c.Container.GetService("emergency").(services.InterfaceEmergencyService)
	request, err := emergencyService.UpdateRequest(uint(id), updates)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to update emergency request")
		return
	}
	if request == nil {
		response.Fail(c.Ctx, code.ErrEmergencyRequestNotFound)
		return
	}

	response.Success(c.Ctx, request)
}
