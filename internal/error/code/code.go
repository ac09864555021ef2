package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusCreated - 201: 创建成功.
	StatusCreated = 201
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未认证.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 资源冲突.
	StatusConflict = 409
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrAuthRequired - 401: 缺少调用者身份.
	ErrAuthRequired
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: 角色权限不足.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUsernameTaken - 409: 用户名已被占用.
	ErrUsernameTaken
	// ErrInvalidCredentials - 401: 用户名或密码错误.
	ErrInvalidCredentials
)

// 紧急请求相关错误码 (102xxx).
const (
	// ErrEmergencyRequestNotFound - 404: 紧急请求不存在.
	ErrEmergencyRequestNotFound int = iota + 102000
)

// 响应队伍相关错误码 (103xxx).
const (
	// ErrResponseTeamNotFound - 404: 响应队伍不存在.
	ErrResponseTeamNotFound int = iota + 103000
)

// 其他资源相关错误码 (104xxx).
const (
	// ErrMedicalServiceNotFound - 404: 医疗服务不存在.
	ErrMedicalServiceNotFound int = iota + 104000
	// ErrSystemStatusNotFound - 404: 系统状态不存在.
	ErrSystemStatusNotFound
	// ErrNotificationNotFound - 404: 通知不存在.
	ErrNotificationNotFound
	// ErrSettingsNotFound - 404: 设置不存在.
	ErrSettingsNotFound
	// ErrStatsNotFound - 404: 统计数据不存在.
	ErrStatsNotFound
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
)
