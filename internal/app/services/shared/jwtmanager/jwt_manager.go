package jwtmanager

import (
	"context"
	"errors"
	"fmt"
	"konsulin-portal/internal/app/config"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// Claims is the portal bearer token payload. The subject is the user id.
type Claims struct {
	Role constvars.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 bearer tokens shared with the booking backend.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	issuer string
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		issuer: cfg.JWT.Issuer,
	}, nil
}

func (j *JWTManager) CreateToken(ctx context.Context, userID string, role constvars.Role, ttl time.Duration) (string, error) {
	j.log.Info("JWTManager.CreateToken called", zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)))

	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("subject is required")
	}
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", role)
	}

	now := time.Now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// VerifyToken checks signature, expiry and issuer, and returns the caller.
func (j *JWTManager) VerifyToken(ctx context.Context, token string) (*models.Principal, error) {
	j.log.Debug("JWTManager.VerifyToken called", zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)))

	if strings.TrimSpace(token) == "" {
		return nil, errors.New("token is required")
	}

	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}
	if j.issuer != "" && !claims.VerifyIssuer(j.issuer, true) {
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}

	return &models.Principal{
		UserID: claims.Subject,
		Role:   claims.Role,
		Token:  token,
	}, nil
}
