package middleware

import (
	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/error/response"
)

// Permission 标识一类需要角色检查的变更操作
type Permission string

const (
	PermEmergencyRequestCreate Permission = "emergency_request:create"
	PermEmergencyRequestList   Permission = "emergency_request:list_all"
	PermEmergencyRequestUpdate Permission = "emergency_request:update"
	PermResponseTeamCreate     Permission = "response_team:create"
	PermResponseTeamUpdate     Permission = "response_team:update"
	PermMedicalServiceCreate   Permission = "medical_service:create"
	PermSystemStatusUpdate     Permission = "system_status:update"
	PermUserDelete             Permission = "user:delete"
)

// policyTable 声明式的权限表：每类端点允许的角色集合。
// 所有端点共用同一个检查入口，避免逐个handler手写角色判断产生漂移。
var policyTable = map[Permission][]string{
	PermEmergencyRequestCreate: {models.UserTypeUser, models.UserTypeAdmin, models.UserTypeResponseTeam},
	PermEmergencyRequestList:   {models.UserTypeAdmin, models.UserTypeResponseTeam},
	PermEmergencyRequestUpdate: {models.UserTypeAdmin, models.UserTypeResponseTeam},
	PermResponseTeamCreate:     {models.UserTypeAdmin},
	PermResponseTeamUpdate:     {models.UserTypeAdmin, models.UserTypeResponseTeam},
	PermMedicalServiceCreate:   {models.UserTypeAdmin},
	PermSystemStatusUpdate:     {models.UserTypeAdmin},
	PermUserDelete:             {models.UserTypeAdmin},
}

// RoleAllowed 判断角色是否允许执行某类操作
func RoleAllowed(perm Permission, role string) bool {
	for _, allowed := range policyTable[perm] {
		if allowed == role {
			return true
		}
	}
	return false
}

// RequirePermission 检查已认证调用者的角色是否满足权限表。
// 必须在Authenticate之后使用。
func RequirePermission(perm Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !RoleAllowed(perm, CallerType(c)) {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
