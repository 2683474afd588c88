package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/churn-service/internal/auth"
	"github.com/spec-kit/churn-service/internal/classifier"
	"github.com/spec-kit/churn-service/internal/config"
	"github.com/spec-kit/churn-service/internal/domain"
	"github.com/spec-kit/churn-service/internal/events"
	apperrors "github.com/spec-kit/churn-service/pkg/util"
)

// AuthService handles operator login and operator-only model actions.
type AuthService struct {
	username     string
	passwordHash string
	tokenMgr     *auth.TokenManager
	handle       *classifier.Handle
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, handle *classifier.Handle, dispatcher events.Dispatcher, logger *zap.Logger) *AuthService {
	return &AuthService{
		username:     cfg.OperatorUsername,
		passwordHash: cfg.OperatorPasswordHash,
		tokenMgr:     auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		handle:       handle,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// LoginOperator checks the operator credentials and issues a token.
func (s *AuthService) LoginOperator(_ context.Context, username, password string) (string, time.Time, error) {
	if s.passwordHash == "" {
		return "", time.Time{}, apperrors.NewUnauthorized("operator login disabled")
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(s.passwordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(username, domain.RoleOperator)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, exp, nil
}

// ReloadModel re-reads the artifact; the previous model stays active on failure.
func (s *AuthService) ReloadModel(ctx context.Context, operator string) (*classifier.Pipeline, error) {
	previous := ""
	if p := s.handle.Current(); p != nil {
		previous = p.Name()
	}

	next, err := s.handle.Reload()
	if err != nil {
		s.logger.Error("model reload failed", zap.String("path", s.handle.Path()), zap.Error(err))
		return nil, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventModelReloaded,
			Timestamp: time.Now().UTC(),
			Payload: events.ModelReloadedPayload{
				PreviousModel: previous,
				CurrentModel:  next.Name(),
				Operator:      operator,
			},
		})
	}
	return next, nil
}
