package auth

import (
	"context"
	"log/slog"

	"elevatehub/internal/config"
	"elevatehub/internal/domain/models"
)

// JWTVerifier defines the interface for JWT token verification.
// The middleware stays agnostic to how signatures are checked.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns domain.ErrUnauthorized if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.Claims, error)

	// Close releases any resources held by the verifier (e.g., HTTP connections for JWKS).
	Close() error
}

// NewVerifier builds the verifier the configuration asks for. JWKS_URL wins
// over JWT_SECRET. Neither set returns nil, nil and tokens are not checked.
func NewVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (JWTVerifier, error) {
	switch {
	case cfg.JWKSURL != "":
		v, err := NewJWKSVerifier(ctx, cfg.JWKSURL, logger)
		if err != nil {
			return nil, err
		}
		return v, nil
	case cfg.JWTSecret != "":
		v, err := NewHMACVerifier(cfg.JWTSecret, logger)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, nil
	}
}
