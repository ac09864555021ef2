package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/domain/services/container"
	"meditrack-http-service/internal/error/code"
	"meditrack-http-service/internal/error/response"
)

// InterfaceResponseTeamController 定义响应队伍控制器接口
type InterfaceResponseTeamController interface {
	GetAllTeams()
	GetAvailableTeams()
	CreateTeam()
	UpdateTeam()
}

// ResponseTeamController 响应队伍控制器
type ResponseTeamController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResponseTeamController 创建一个新的响应队伍控制器
func NewResponseTeamController(ctx *gin.Context, container *container.ServiceContainer) *ResponseTeamController {
	return &ResponseTeamController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateResponseTeamRequest 创建响应队伍请求
type CreateResponseTeamRequest struct {
	Name      string `json:"name" binding:"required" example:"Team Alpha"`
	Status    string `json:"status" binding:"omitempty,oneof=available busy offline" example:"available"`
	Latitude  string `json:"latitude" example:"40.7128"`
	Longitude string `json:"longitude" example:"-74.0060"`
}

// UpdateResponseTeamRequest 更新响应队伍请求，所有字段可选
type UpdateResponseTeamRequest struct {
	Name      *string `json:"name" example:"Team Alpha"`
	Status    *string `json:"status" binding:"omitempty,oneof=available busy offline" example:"busy"`
	Latitude  *string `json:"latitude" example:"40.7128"`
	Longitude *string `json:"longitude" example:"-74.0060"`
}

// HandleResponseTeamFunc 返回一个处理响应队伍请求的Gin处理函数
func HandleResponseTeamFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResponseTeamController(ctx, container)

		switch method {
		case "getAllTeams":
			controller.GetAllTeams()
		case "getAvailableTeams":
			controller.GetAvailableTeams()
		case "createTeam":
			controller.CreateTeam()
		case "updateTeam":
			controller.UpdateTeam()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// 1. GetAllTeams 获取全部响应队伍
// @Summary      获取全部响应队伍
// @Description  返回系统中所有响应队伍，公开端点
// @Tags         ResponseTeam
// @Accept       json
// @Produce      json
// @Success      200  {array}   models.ResponseTeam
// @Router       /response-teams [get]
func (c *ResponseTeamController) GetAllTeams() {
	teamService := c.Container.GetService("team").(services.InterfaceTeamService)
	teams, err := teamService.GetAllTeams()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to get response teams")
		return
	}

	response.Success(c.Ctx, teams)
}

// 2. GetAvailableTeams 获取可用响应队伍
// @Summary      获取可用响应队伍
// @Description  仅返回状态为available的响应队伍，公开端点
// @Tags         ResponseTeam
// @Accept       json
// @Produce      json
// @Success      200  {array}   models.ResponseTeam
// @Router       /response-teams/available [get]
func (c *ResponseTeamController) GetAvailableTeams() {
	teamService := c.Container.GetService("team").(services.InterfaceTeamService)
	teams, err := teamService.GetAvailableTeams()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to get available response teams")
		return
	}

	response.Success(c.Ctx, teams)
}

// 3. CreateTeam 创建响应队伍
// @Summary      创建响应队伍
// @Description  创建新的响应队伍，仅限管理员
// @Tags         ResponseTeam
// @Accept       json
// @Produce      json
// @Param        request body CreateResponseTeamRequest true "队伍信息"
// @Success      201  {object}  models.ResponseTeam
// @Failure      400  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Router       /response-teams [post]
// @Security     BearerAuth
func (c *ResponseTeamController) CreateTeam() {
	var req CreateResponseTeamRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	team := &models.ResponseTeam{
		Name:      req.Name,
		Status:    req.Status,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	teamService := c.Container.GetService("team").(services.InterfaceTeamService)
	if err := teamService.CreateTeam(team); err != nil {
		response.ServerError(c.Ctx, "Failed to create response team")
		return
	}

	response.Created(c.Ctx, team)
}

// 4. UpdateTeam 更新响应队伍
// @Summary      更新响应队伍
// @Description  部分更新响应队伍字段，仅限管理员和响应队伍
// @Tags         ResponseTeam
// @Accept       json
// @Produce      json
// @Param        id path int true "队伍ID"
// @Param        request body UpdateResponseTeamRequest true "要更新的字段"
// @Success      200  {object}  models.ResponseTeam
// @Failure      400  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /response-teams/{id} [patch]
// @Security     BearerAuth
func (c *ResponseTeamController) UpdateTeam() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid team ID")
		return
	}

	var req UpdateResponseTeamRequest
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
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}

	teamService := c.Container.GetService("team").(services.InterfaceTeamService)
	team, err := teamService.UpdateTeam(uint(id), updates)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to update response team")
		return
	}
	if team == nil {
		response.Fail(c.Ctx, code.ErrResponseTeamNotFound)
		return
	}

	response.Success(c.Ctx, team)
}
