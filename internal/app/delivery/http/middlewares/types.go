package middlewares

import (
	"context"
	"konsulin-portal/internal/app/config"
	"konsulin-portal/internal/app/models"
	"time"

	"go.uber.org/zap"
)

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*models.Principal, error)
}

type HTTPObserver interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Tokens         TokenVerifier
	Metrics        HTTPObserver
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, tokens TokenVerifier, metrics HTTPObserver) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		Tokens:         tokens,
		Metrics:        metrics,
	}
}
