package service

import (
	"context"
	"errors"

	"Pulse/models"
	"Pulse/pkg/encrypt"
	"Pulse/pkg/response"
	"Pulse/pkg/snowflake"
	"Pulse/types"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error)
	Login(ctx context.Context, username string, password string) (*models.Users, error)
	List(ctx context.Context) ([]*models.Users, error)
	Get(ctx context.Context, id int64) (*models.Users, error)
	Update(ctx context.Context, requesterID int64, targetID int64, req *types.UpdateUserReq) (*models.Users, error)
	Delete(ctx context.Context, requesterID int64, targetID int64) error
}

type UserService struct {
	UsersRepo UserRepository
}

// Register 注册用户
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error) {
	if s.UsersRepo.IsUsernameExist(ctx, req.Username) {
		return nil, response.BadRequest("账号已存在! ")
	}
	if req.Email != "" && s.UsersRepo.IsEmailExist(ctx, req.Email) {
		return nil, response.BadRequest("邮箱已被占用! ")
	}

	user := &models.Users{
		Id:        snowflake.GenID(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  encrypt.HashPassword(req.Password),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.UsersRepo.Create(ctx, user); err != nil {
		// 并发注册同名账号时由唯一键兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.BadRequest("账号已存在! ")
		}
		return nil, err
	}

	return user, nil
}

// Login 登录处理，校验通过后由 handler 签发 token
func (s *UserService) Login(ctx context.Context, username string, password string) (*models.Users, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.BadRequest("登录账号不存在! ")
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, response.BadRequest("登录密码填写错误! ")
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*models.Users, error) {
	return s.UsersRepo.FindAll(ctx, "id ASC")
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.Users, error) {
	user, err := s.UsersRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("用户不存在")
		}
		return nil, err
	}
	return user, nil
}

// Update 更新用户资料，仅本人可操作
func (s *UserService) Update(ctx context.Context, requesterID int64, targetID int64, req *types.UpdateUserReq) (*models.Users, error) {
	target, err := s.Get(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if !CanModifyUser(requesterID, target.Id) {
		return nil, response.Forbidden("无权限操作他人账号")
	}

	data := map[string]any{}
	if req.Username != nil && *req.Username != target.Username {
		if s.UsersRepo.IsUsernameExist(ctx, *req.Username) {
			return nil, response.BadRequest("账号已存在! ")
		}
		data["username"] = *req.Username
	}
	if req.Email != nil && *req.Email != target.Email {
		if *req.Email != "" && s.UsersRepo.IsEmailExist(ctx, *req.Email) {
			return nil, response.BadRequest("邮箱已被占用! ")
		}
		data["email"] = *req.Email
	}
	if req.FirstName != nil {
		data["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		data["last_name"] = *req.LastName
	}

	if len(data) > 0 {
		if err := s.UsersRepo.UpdateById(ctx, target.Id, data); err != nil {
			return nil, err
		}
	}

	return s.UsersRepo.FindById(ctx, target.Id)
}

// Delete 注销账号，级联删除其帖子与点赞
func (s *UserService) Delete(ctx context.Context, requesterID int64, targetID int64) error {
	target, err := s.Get(ctx, targetID)
	if err != nil {
		return err
	}

	if !CanModifyUser(requesterID, target.Id) {
		return response.Forbidden("无权限操作他人账号")
	}

	return s.UsersRepo.DeleteCascade(ctx, target.Id)
}
