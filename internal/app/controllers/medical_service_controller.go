package controllers

import (
	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/domain/services/container"
	"meditrack-http-service/internal/error/code"
	"meditrack-http-service/internal/error/response"
)

// InterfaceMedicalServiceController 定义医疗服务控制器接口
type InterfaceMedicalServiceController interface {
	GetAllServices()
	GetServicesByType()
	CreateService()
}

// MedicalServiceController 医疗服务控制器
type MedicalServiceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMedicalServiceController 创建一个新的医疗服务控制器
func NewMedicalServiceController(ctx *gin.Context, container *container.ServiceContainer) *MedicalServiceController {
	return &MedicalServiceController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateMedicalServiceRequest 创建医疗服务请求
type CreateMedicalServiceRequest struct {
	Name         string `json:"name" binding:"required" example:"City General Hospital"`
	Type         string `json:"type" binding:"required" example:"hospital"`
	Address      string `json:"address" binding:"required" example:"123 Main St"`
	Latitude     string `json:"latitude" binding:"required" example:"40.7128"`
	Longitude    string `json:"longitude" binding:"required" example:"-74.0060"`
	Rating       string `json:"rating" example:"4.5"`
	ReviewCount  int    `json:"reviewCount" example:"120"`
	Phone        string `json:"phone" example:"555-123-4567"`
	OpeningHours string `json:"openingHours" example:"24/7"`
	Distance     string `json:"distance" example:"1.2 miles"`
}

// HandleMedicalServiceFunc 返回一个处理医疗服务请求的Gin处理函数
func HandleMedicalServiceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMedicalServiceController(ctx, container)

		switch method {
		case "getAllServices":
			controller.GetAllServices()
		case "getServicesByType":
			controller.GetServicesByType()
		case "createService":
			controller.CreateService()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// 1. GetAllServices 获取全部医疗服务
// @Summary      获取全部医疗服务
// @Description  返回所有登记的医疗服务机构，公开端点
// @Tags         MedicalService
// @Accept       json
// @Produce      json
// @Success      200  {array}   models.MedicalService
// @Router       /medical-services [get]
func (c *MedicalServiceController) GetAllServices() {
	medicalService := c.Container.GetService("medical").(services.InterfaceMedicalService)
	list, err := medicalService.GetAllServices()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to get medical services")
		return
	}

	response.Success(c.Ctx, list)
}

// 2. GetServicesByType 按类型获取医疗服务
// @Summary      按类型获取医疗服务
// @Description  返回指定类型的医疗服务机构，类型为自由文本，公开端点
// @Tags         MedicalService
// @Accept       json
// @Produce      json
// @Param        type path string true "服务类型，如 hospital、pharmacy"
// @Success      200  {array}   models.MedicalService
// @Router       /medical-services/type/{type} [get]
func (c *MedicalServiceController) GetServicesByType() {
	serviceType := c.Ctx.Param("type")

	medicalService := c.Container.GetService("medical").(services.InterfaceMedicalService)
	list, err := medicalService.GetServicesByType(serviceType)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to get medical services")
		return
	}

	response.Success(c.Ctx, list)
}

// 3. CreateService 创建医疗服务
// @Summary      创建医疗服务
// @Description  登记新的医疗服务机构，仅限管理员
// @Tags         MedicalService
// @Accept       json
// @Produce      json
// @Param        request body CreateMedicalServiceRequest true "机构信息"
// @Success      201  {object}  models.MedicalService
// @Failure      400  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Router       /medical-services [post]
// @Security     BearerAuth
func (c *MedicalServiceController) CreateService() {
	var req CreateMedicalServiceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	service := &models.MedicalService{
		Name:         req.Name,
		Type:         req.Type,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Rating:       req.Rating,
		ReviewCount:  req.ReviewCount,
		Phone:        req.Phone,
		OpeningHours: req.OpeningHours,
		Distance:     req.Distance,
	}

	medicalService := c.Container.GetService("medical").(services.InterfaceMedicalService)
	if err := medicalService.CreateService(service); err != nil {
		response.ServerError(c.Ctx, "Failed to create medical service")
		return
	}

	response.Created(c.Ctx, service)
}
