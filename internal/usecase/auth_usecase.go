package usecase

import (
	"context"
	"errors"

	"grace-media/internal/entity"
	"grace-media/internal/repo/persistent"
	"grace-media/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type LoginResult struct {
	Token string              `json:"token"`
	User  *entity.UserProfile `json:"user"`
}

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCase{userRepo: userRepo, jwtService: jwtService}
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, NewValidationError("email and password are required")
	}

	userModel, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		// An unknown email reads the same as a bad password.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, &QueryError{Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userModel.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(userModel.ID, userModel.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User: &entity.UserProfile{
			ID:        userModel.ID,
			Email:     userModel.Email,
			FullName:  userModel.FullName,
			Phone:     userModel.Phone,
			Bio:       userModel.Bio,
			AvatarURL: userModel.AvatarURL,
			Role:      entity.Role(userModel.Role),
			CreatedAt: userModel.CreatedAt,
			UpdatedAt: userModel.UpdatedAt,
		},
	}, nil
}
