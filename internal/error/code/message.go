package code

// 错误码消息映射。消息直接作为响应体返回给前端，保持英文。
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "Success",
	ErrUnknown:          "Internal server error",
	ErrBind:             "Invalid request payload",
	ErrValidation:       "Validation failed",
	ErrAuthRequired:     "Authentication required",
	ErrTokenInvalid:     "Invalid token",
	ErrPermissionDenied: "Unauthorized access",
	ErrTooManyRequests:  "Too many requests",

	// 用户相关错误码
	ErrUserNotFound:       "User not found",
	ErrUsernameTaken:      "Username already exists",
	ErrInvalidCredentials: "Invalid credentials",

	// 紧急请求相关错误码
	ErrEmergencyRequestNotFound: "Emergency request not found",

	// 响应队伍相关错误码
	ErrResponseTeamNotFound: "Response team not found",

	// 其他资源相关错误码
	ErrMedicalServiceNotFound: "Medical service not found",
	ErrSystemStatusNotFound:   "System status not found",
	ErrNotificationNotFound:   "Notification not found",
	ErrSettingsNotFound:       "Settings not found",
	ErrStatsNotFound:          "Stats not found",

	// 数据库相关错误码
	ErrDatabase: "Internal server error",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrAuthRequired:     StatusUnauthorized,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// 用户相关错误码
	ErrUserNotFound:       StatusNotFound,
	ErrUsernameTaken:      StatusConflict,
	ErrInvalidCredentials: StatusUnauthorized,

	// 紧急请求相关错误码
	ErrEmergencyRequestNotFound: StatusNotFound,

	// 响应队伍相关错误码
	ErrResponseTeamNotFound: StatusNotFound,

	// 其他资源相关错误码
	ErrMedicalServiceNotFound: StatusNotFound,
	ErrSystemStatusNotFound:   StatusNotFound,
	ErrNotificationNotFound:   StatusNotFound,
	ErrSettingsNotFound:       StatusNotFound,
	ErrStatsNotFound:          StatusNotFound,

	// 数据库相关错误码
	ErrDatabase: StatusInternalServerError,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Internal server error"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
