package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/constants"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/database"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
)

// sessionRepo implements dispatch.SessionRepo on Redis
type sessionRepo struct {
	redisClient *database.RedisClient
}

// NewSessionRepo creates a Redis backed session repository
func NewSessionRepo(redisClient *database.RedisClient) dispatch.SessionRepo {
	return &sessionRepo{redisClient: redisClient}
}

// RevokeToken marks tokenID revoked until ttl elapses, which should cover the
// token's remaining lifetime
func (r *sessionRepo) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return fmt.Errorf("%w: token id is required", dispatch.ErrValidation)
	}
	if ttl <= 0 {
		return nil
	}
	key := fmt.Sprintf(constants.KeyRevokedToken, tokenID)
	if err := r.redisClient.Set(ctx, key, "1", ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID was revoked
func (r *sessionRepo) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	revoked, err := r.redisClient.Exists(ctx, fmt.Sprintf(constants.KeyRevokedToken, tokenID))
	if err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}
	return revoked, nil
}
