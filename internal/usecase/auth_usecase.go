package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/errors"
	"github.com/transport-admin/internal/pkg/validator"
	"github.com/transport-admin/internal/usecase/dto"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthClaims - полезная нагрузка токена доступа
type AuthClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthUseCase struct {
	staffRepo    repository.StaffRepository
	presenceRepo repository.PresenceRepository
	jwtSecret    []byte
	tokenTTL     time.Duration
	markerTTL    time.Duration
	logger       *zap.Logger
}

func NewAuthUseCase(
	staffRepo repository.StaffRepository,
	presenceRepo repository.PresenceRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	markerTTL time.Duration,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		staffRepo:    staffRepo,
		presenceRepo: presenceRepo,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		markerTTL:    markerTTL,
		logger:       logger,
	}
}

// SignIn проверяет учётные данные и выдаёт токен доступа. Успешный вход
// сразу пишет маркер присутствия, не дожидаясь первого heartbeat.
func (uc *AuthUseCase) SignIn(ctx context.Context, req dto.SignInRequest) (*dto.SignInResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	user, err := uc.staffRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Не раскрываем, существует ли пользователь
		uc.logger.Warn("Sign-in attempt for unknown email", zap.String("email", req.Email))
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		uc.logger.Warn("Sign-in with wrong password", zap.String("user_id", user.ID))
		return nil, errors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := AuthClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.jwtSecret)
	if err != nil {
		uc.logger.Error("Failed to sign token", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	marker := &domain.PresenceMarker{
		UserID:   user.ID,
		Online:   true,
		LastSeen: now,
	}
	if err := uc.presenceRepo.SetMarker(ctx, marker, uc.markerTTL); err != nil {
		// Вход важнее маркера присутствия
		uc.logger.Warn("Failed to write initial presence marker",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}

	uc.logger.Info("User signed in", zap.String("user_id", user.ID))

	return &dto.SignInResponse{
		Token: token,
		User:  user,
	}, nil
}

// ParseToken проверяет подпись и срок действия токена
func (uc *AuthUseCase) ParseToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrUnauthorized
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.ErrUnauthorized
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok {
		return nil, errors.ErrUnauthorized
	}

	return claims, nil
}
