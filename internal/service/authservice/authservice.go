package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/qiwi/pkg/auth"
)

const (
	subject  = "gateway"
	tokenTTL = 15 * time.Minute
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service guards the gateway with a single password whose bcrypt hash comes
// from the configuration.
type Service struct {
	passwordHash string
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	now          func() time.Time
}

func New(passwordHash string, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		passwordHash: passwordHash,
		hashService:  hashService,
		jwtService:   jwtService,
		now:          time.Now,
	}
}

func (s *Service) Authenticate(_ context.Context, password string) error {
	if s.passwordHash == "" {
		zap.L().Warn("login attempt while no gateway password is configured")
		return ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(s.passwordHash, password); !ok {
		zap.L().Info("invalid credentials")
		return ErrInvalidCredentials
	}
	zap.L().Info("gateway client authenticated")
	return nil
}

func (s *Service) GenerateToken() (string, time.Time, error) {
	expirationTime := s.now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(subject, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", time.Time{}, err
	}
	return token, expirationTime, nil
}
