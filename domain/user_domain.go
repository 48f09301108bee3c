package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "user profile retrieved successfully"
	MessageSuccessChangePassword = "password updated successfully"
	MessageSuccessGetUsers       = "users retrieved successfully"
	MessageSuccessDeleteUser     = "user deleted successfully"
	MessageSuccessResetPassword  = "password reset successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve user profile"
	MessageFailedChangePassword = "failed to update password"
	MessageFailedGetUsers       = "failed to retrieve users"
	MessageFailedDeleteUser     = "failed to delete user"
	MessageFailedResetPassword  = "failed to reset password"

	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3"`
		Email    string `json:"email" validate:"omitempty,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	RegisterResponse struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		CreatedAt time.Time `json:"created_at"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}

	ChangePasswordRequest struct {
		NewPassword string `json:"new_password" validate:"required,min=6"`
	}

	ResetPasswordResponse struct {
		TemporaryPassword string `json:"temporary_password"`
	}
)
