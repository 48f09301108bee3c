package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sustainable-bao-backend/domain"
	"sustainable-bao-backend/entities"
	"sustainable-bao-backend/internal/utils/mailing"
	"sustainable-bao-backend/pkg/jwt"
)

const (
	bcryptCost        = 10
	temporaryPassword = "Temp@123"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		ChangePassword(ctx context.Context, userID string, req domain.ChangePasswordRequest) error
		GetAllUsers(ctx context.Context) ([]domain.UserResponse, error)
		DeleteUser(ctx context.Context, id string) error
		ResetPassword(ctx context.Context, id string) (domain.ResetPasswordResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	_, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err == nil {
		return domain.RegisterResponse{}, domain.ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req domain.ChangePasswordRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	return response, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	_, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepository.DeleteUser(ctx, id)
}

// ResetPassword replaces the user's password with a temporary one and mails
// it to them when an address is on file. Mail failure does not roll back the
// reset; the temporary password is still returned to the admin.
func (s *userService) ResetPassword(ctx context.Context, id string) (domain.ResetPasswordResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ResetPasswordResponse{}, domain.ErrUserNotFound
		}
		return domain.ResetPasswordResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcryptCost)
	if err != nil {
		return domain.ResetPasswordResponse{}, err
	}

	user.Password = string(hashed)
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.ResetPasswordResponse{}, err
	}

	if user.Email != "" {
		body := fmt.Sprintf(
			"<p>Hello %s,</p><p>Your password has been reset. Temporary password: <b>%s</b></p><p>Please change it after logging in.</p>",
			user.Username, temporaryPassword,
		)
		_ = mailing.SendMail(user.Email, "Your password has been reset", body)
	}

	return domain.ResetPasswordResponse{TemporaryPassword: temporaryPassword}, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}
