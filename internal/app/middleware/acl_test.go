package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"meditrack-http-service/internal/domain/models"
)

func TestRoleAllowed(t *testing.T) {
	tests := []struct {
		perm Permission
		role string
		want bool
	}{
		// 所有角色都能上报紧急请求
		{PermEmergencyRequestCreate, models.UserTypeUser, true},
		{PermEmergencyRequestCreate, models.UserTypeAdmin, true},
		{PermEmergencyRequestCreate, models.UserTypeResponseTeam, true},

		// 全量列表和更新只对admin和response_team开放
		{PermEmergencyRequestList, models.UserTypeUser, false},
		{PermEmergencyRequestList, models.UserTypeAdmin, true},
		{PermEmergencyRequestList, models.UserTypeResponseTeam, true},
		{PermEmergencyRequestUpdate, models.UserTypeUser, false},
		{PermEmergencyRequestUpdate, models.UserTypeResponseTeam, true},

		// 队伍创建仅admin，队伍更新admin和response_team
		{PermResponseTeamCreate, models.UserTypeAdmin, true},
		{PermResponseTeamCreate, models.UserTypeResponseTeam, false},
		{PermResponseTeamUpdate, models.UserTypeResponseTeam, true},
		{PermResponseTeamUpdate, models.UserTypeUser, false},

		// 仅admin的操作
		{PermMedicalServiceCreate, models.UserTypeAdmin, true},
		{PermMedicalServiceCreate, models.UserTypeUser, false},
		{PermSystemStatusUpdate, models.UserTypeAdmin, true},
		{PermSystemStatusUpdate, models.UserTypeResponseTeam, false},
		{PermUserDelete, models.UserTypeAdmin, true},
		{PermUserDelete, models.UserTypeUser, false},

		// 未知角色一律拒绝
		{PermEmergencyRequestCreate, "stranger", false},
		{PermEmergencyRequestCreate, "", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoleAllowed(tt.perm, tt.role),
			"perm=%s role=%s", tt.perm, tt.role)
	}
}
