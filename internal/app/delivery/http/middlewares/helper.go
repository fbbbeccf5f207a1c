package middlewares

import (
	"context"

	"cpn-service/internal/app/models"
	"cpn-service/internal/pkg/constvars"
)

func sessionFrom(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session, ok
}
