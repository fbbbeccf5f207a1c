package contracts

import (
	"context"
	"time"

	"cpn-service/internal/app/models"
)

type SessionRepository interface {
	Save(ctx context.Context, session *models.Session, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
