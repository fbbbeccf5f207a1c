package auth

import (
	"context"
	"time"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/app/models"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionRedisRepository struct {
	redis contracts.RedisRepository
}

func NewSessionRedisRepository(redis contracts.RedisRepository) contracts.SessionRepository {
	return &sessionRedisRepository{redis: redis}
}

func (r *sessionRedisRepository) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return r.redis.Set(ctx, constvars.RedisKeySessionPrefix+session.ID, session, ttl)
}

func (r *sessionRedisRepository) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.redis.Get(ctx, constvars.RedisKeySessionPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	return session, nil
}

func (r *sessionRedisRepository) Delete(ctx context.Context, sessionID string) error {
	return r.redis.Delete(ctx, constvars.RedisKeySessionPrefix+sessionID)
}
