package contracts

import (
	"context"

	"cpn-service/internal/app/models"
	"cpn-service/internal/pkg/dto/requests"
	"cpn-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	FindSession(ctx context.Context, sessionID string) (*models.Session, error)
}

// AuthRecordsClient performs the credential exchange against the records
// API and returns the remote bearer token.
type AuthRecordsClient interface {
	Login(ctx context.Context, username, password string) (string, error)
}
