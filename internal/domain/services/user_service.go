package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/infrastructure/storage"
)

// ErrUsernameTaken 用户名已被占用
var ErrUsernameTaken = errors.New("username already exists")

// InterfaceUserService 定义用户服务接口
type InterfaceUserService interface {
	CheckPassword(password, hash string) bool
	Register(user *models.User) error
	Authenticate(username, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id uint) (bool, error)
	GetSettings(userID uint) (*models.Setting, error)
	UpdateSettings(userID uint, updates map[string]interface{}) (*models.Setting, error)
}

// UserService 提供用户账户和用户设置相关的服务
type UserService struct {
	Store storage.Store
}

// NewUserService 创建用户服务
func NewUserService(store storage.Store) InterfaceUserService {
	return &UserService{Store: store}
}

// 1 CheckPassword 验证密码是否匹配
func (s *UserService) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// 2 Register 创建新用户并写入默认设置。
// 密码在这里哈希，两个存储实现都不会看到明文。
func (s *UserService) Register(user *models.User) error {
	existing, err := s.Store.GetUserByUsername(user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	if user.UserType == "" {
		user.UserType = models.UserTypeUser
	}

	if err := s.Store.CreateUser(user); err != nil {
		return err
	}

	return s.Store.CreateUserSettings(models.DefaultSetting(user.ID))
}

// 3 Authenticate 校验用户名密码，不匹配时返回 (nil, nil)
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.Store.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.CheckPassword(password, user.Password) {
		return nil, nil
	}
	return user, nil
}

// 4 GetUserByID 根据ID获取用户，未找到返回 (nil, nil)
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.Store.GetUser(id)
}

// 5 GetUserByUsername 根据用户名获取用户
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	return s.Store.GetUserByUsername(username)
}

// 6 UpdateUser 部分更新用户资料
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	return s.Store.UpdateUser(id, updates)
}

// 7 DeleteUser 删除用户。不做级联清理，
// 该用户的紧急请求、通知和设置保持原样。
func (s *UserService) DeleteUser(id uint) (bool, error) {
	return s.Store.DeleteUser(id)
}

// 8 GetSettings 获取用户设置，没有设置行时返回 (nil, nil)
func (s *UserService) GetSettings(userID uint) (*models.Setting, error) {
	return s.Store.GetUserSettings(userID)
}

// 9 UpdateSettings 部分更新用户设置，不存在时先创建默认行再合并
func (s *UserService) UpdateSettings(userID uint, updates map[string]interface{}) (*models.Setting, error) {
	setting, err := s.Store.GetUserSettings(userID)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		if err := s.Store.CreateUserSettings(models.DefaultSetting(userID)); err != nil {
			return nil, err
		}
	}
	return s.Store.UpdateUserSettings(userID, updates)
}
