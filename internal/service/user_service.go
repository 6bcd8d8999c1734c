// Package service 业务服务层：校验入参、调用存储、转换响应
package service

import (
	"context"
	"sync"

	"github.com/haierkeys/note-vault/internal/dto"
	"github.com/haierkeys/note-vault/internal/model"
	"github.com/haierkeys/note-vault/internal/store"
	"github.com/haierkeys/note-vault/pkg/code"
	"github.com/haierkeys/note-vault/pkg/convert"
	"github.com/haierkeys/note-vault/pkg/kvstore"
	"github.com/haierkeys/note-vault/pkg/logger"
	pkgapp "github.com/haierkeys/note-vault/pkg/app"
	"github.com/haierkeys/note-vault/pkg/timex"
	"github.com/haierkeys/note-vault/pkg/util"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// usersStorageKey 全部账号共用的存储键
const usersStorageKey = "users"

// UserService defines the mock-auth account operations. Accounts live as a
// JSON array in the storage medium; passwords are bcrypt hashes and sessions
// are stateless JWTs. This intentionally stays a local, single-machine mock.
// UserService 模拟认证账号服务接口。
type UserService interface {
	Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error)
	Login(ctx context.Context, params *dto.UserLoginRequest) (*dto.UserDTO, error)
	Info(ctx context.Context, uid string) (*dto.UserDTO, error)
	UpdateSettings(ctx context.Context, uid string, params *dto.UserSettingsRequest) (*dto.UserDTO, error)
	// AllUserIDs 返回全部账号 ID（含访客哨兵），供后台任务遍历各集合
	AllUserIDs(ctx context.Context) ([]string, error)
}

type userService struct {
	medium       kvstore.Store
	tokenManager pkgapp.TokenManager
	logger       *zap.Logger

	mu sync.Mutex
}

// NewUserService creates UserService instance
// NewUserService 创建 UserService 实例
func NewUserService(medium kvstore.Store, tokenManager pkgapp.TokenManager, lg *zap.Logger) UserService {
	return &userService{medium: medium, tokenManager: tokenManager, logger: lg}
}

func (svc *userService) Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	svc.mu.Lock()
	defer svc.mu.Unlock()

	users, err := svc.loadUsers()
	if err != nil {
		return nil, code.ErrorStorageFailure.WithDetails(err.Error())
	}

	for _, u := range users {
		if u.Email == params.Email {
			return nil, code.ErrorUserAlreadyExists
		}
	}

	hash, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        params.Email,
		Name:         params.Name,
		PasswordHash: hash,
		CreatedAt:    timex.Now(),
		Settings: model.UserSettings{
			Theme:       "light",
			DefaultView: "all",
		},
	}
	users = append(users, user)

	if err := svc.saveUsers(users); err != nil {
		return nil, code.ErrorStorageFailure.WithDetails(err.Error())
	}

	svc.logger.Info("user registered", zap.String(logger.FieldUID, user.ID))
	return svc.userDTOWithToken(user)
}

func (svc *userService) Login(ctx context.Context, params *dto.UserLoginRequest) (*dto.UserDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	svc.mu.Lock()
	defer svc.mu.Unlock()

	users, err := svc.loadUsers()
	if err != nil {
		return nil, code.ErrorStorageFailure.WithDetails(err.Error())
	}

	var user *model.User
	for _, u := range users {
		if u.Email == params.Email {
			user = u
			break
		}
	}
	if user == nil {
		return nil, code.ErrorUserNotFound
	}
	if !util.CheckPasswordHash(user.PasswordHash, params.Password) {
		return nil, code.ErrorUserPasswordWrong
	}

	return svc.userDTOWithToken(user)
}

func (svc *userService) Info(ctx context.Context, uid string) (*dto.UserDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	svc.mu.Lock()
	defer svc.mu.Unlock()

	user, _, err := svc.findByID(uid)
	if err != nil {
		return nil, err
	}
	return toUserDTO(user), nil
}

func (svc *userService) UpdateSettings(ctx context.Context, uid string, params *dto.UserSettingsRequest) (*dto.UserDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	svc.mu.Lock()
	defer svc.mu.Unlock()

	user, users, err := svc.findByID(uid)
	if err != nil {
		return nil, err
	}

	if params.Theme != nil {
		user.Settings.Theme = *params.Theme
	}
	if params.DefaultView != nil {
		user.Settings.DefaultView = *params.DefaultView
	}

	if err := svc.saveUsers(users); err != nil {
		return nil, code.ErrorStorageFailure.WithDetails(err.Error())
	}
	return toUserDTO(user), nil
}

func (svc *userService) AllUserIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	svc.mu.Lock()
	defer svc.mu.Unlock()

	users, err := svc.loadUsers()
	if err != nil {
		return nil, err
	}
	ids := []string{model.GuestOwnerID}
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

// findByID 调用方需持有锁
func (svc *userService) findByID(uid string) (*model.User, []*model.User, error) {
	users, err := svc.loadUsers()
	if err != nil {
		return nil, nil, code.ErrorStorageFailure.WithDetails(err.Error())
	}
	for _, u := range users {
		if u.ID == uid {
			return u, users, nil
		}
	}
	return nil, nil, code.ErrorUserNotFound
}

func (svc *userService) loadUsers() ([]*model.User, error) {
	raw, ok, err := svc.medium.Get(usersStorageKey)
	if err != nil {
		return nil, &store.StorageError{Op: "load", Key: usersStorageKey, Err: err}
	}
	if !ok {
		return []*model.User{}, nil
	}
	var users []*model.User
	if err := sonic.Unmarshal([]byte(raw), &users); err != nil {
		// 账号表损坏按空表处理，与笔记集合的降级策略一致
		svc.logger.Error("stored user list is malformed, falling back to empty", zap.Error(err))
		return []*model.User{}, nil
	}
	return users, nil
}

func (svc *userService) saveUsers(users []*model.User) error {
	data, err := sonic.Marshal(users)
	if err != nil {
		return &store.StorageError{Op: "serialize", Key: usersStorageKey, Err: err}
	}
	if err := svc.medium.Set(usersStorageKey, string(data)); err != nil {
		return &store.StorageError{Op: "save", Key: usersStorageKey, Err: err}
	}
	return nil
}

func (svc *userService) userDTOWithToken(user *model.User) (*dto.UserDTO, error) {
	token, err := svc.tokenManager.Generate(user.ID, user.Name)
	if err != nil {
		return nil, code.ErrorUserTokenGenerate.WithDetails(err.Error())
	}
	out := toUserDTO(user)
	out.Token = token
	return out, nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	out := convert.StructAssign(user, &dto.UserDTO{}).(*dto.UserDTO)
	return out
}
