package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"keepnote/internal/constant"
	"keepnote/internal/dto"
	"keepnote/internal/entity"
	"keepnote/internal/pkg/serverutils"
	"keepnote/internal/repository"
)

type IUserService interface {
	Create(ctx context.Context, req *dto.UserRequest) (*dto.UserResponse, error)
	Show(ctx context.Context, id string) (*dto.UserResponse, error)
	GetAll(ctx context.Context) ([]*dto.UserResponse, error)
	Update(ctx context.Context, id string, req *dto.UserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type userService struct {
	userRepository   repository.IUserRepository
	publisherService IPublisherService
	logger           *log.Entry
}

func NewUserService(
	userRepository repository.IUserRepository,
	publisherService IPublisherService,
	logger *log.Entry,
) IUserService {
	return &userService{
		userRepository:   userRepository,
		publisherService: publisherService,
		logger:           logger.WithField("resource", constant.ResourceUser),
	}
}

func (c *userService) Create(ctx context.Context, req *dto.UserRequest) (*dto.UserResponse, error) {
	if req.UserId == "" {
		return nil, fmt.Errorf("userId is required: %w", serverutils.ErrBadRequest)
	}

	hash, err := hashPassword(req.UserPassword)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:        req.UserId,
		Name:      req.UserName,
		Password:  hash,
		Mobile:    req.UserMobile,
		CreatedAt: now(),
	}

	err = c.userRepository.Create(ctx, user)
	if err != nil {
		return nil, createError(c.logger, err)
	}

	c.logger.WithField("user_id", user.Id).Debug("user created")
	publishEvent(ctx, c.publisherService, c.logger, constant.ResourceUser, constant.ActionCreated, user.Id)

	return userResponse(user), nil
}

func (c *userService) Show(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := c.userRepository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	return userResponse(user), nil
}

func (c *userService) GetAll(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := c.userRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		res = append(res, userResponse(user))
	}
	return res, nil
}

// Update overwrites the profile of an existing user. An empty password keeps
// the stored hash.
func (c *userService) Update(ctx context.Context, id string, req *dto.UserRequest) (*dto.UserResponse, error) {
	existing, err := c.userRepository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:        existing.Id,
		Name:      req.UserName,
		Password:  existing.Password,
		Mobile:    req.UserMobile,
		CreatedAt: existing.CreatedAt,
	}
	if req.UserPassword != "" {
		user.Password, err = hashPassword(req.UserPassword)
		if err != nil {
			return nil, err
		}
	}

	err = c.userRepository.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	c.logger.WithField("user_id", id).Debug("user updated")
	publishEvent(ctx, c.publisherService, c.logger, constant.ResourceUser, constant.ActionUpdated, id)

	return userResponse(user), nil
}

func (c *userService) Delete(ctx context.Context, id string) (bool, error) {
	_, err := c.userRepository.GetById(ctx, id)
	if err != nil {
		return false, err
	}

	err = c.userRepository.DeleteById(ctx, id)
	if err != nil {
		return false, err
	}

	c.logger.WithField("user_id", id).Debug("user deleted")
	publishEvent(ctx, c.publisherService, c.logger, constant.ResourceUser, constant.ActionDeleted, id)

	return true, nil
}

func checkPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w: %w", serverutils.ErrBadRequest, err)
	}
	return string(hash), nil
}

func userResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		UserId:        user.Id,
		UserName:      user.Name,
		UserMobile:    user.Mobile,
		UserAddedDate: user.CreatedAt,
	}
}
