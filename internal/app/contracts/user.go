package contracts

import (
	"context"

	"cpn-service/internal/app/models"
	"cpn-service/internal/pkg/dto/requests"
)

type UserUsecase interface {
	FindAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, request *requests.CreateUser) (*models.User, error)
	Update(ctx context.Context, userID string, request *requests.UpdateUser) (*models.User, error)
	SetEnabled(ctx context.Context, userID string, enabled bool) (*models.User, error)
	FindRoles(ctx context.Context) ([]models.Role, error)
	CreateRole(ctx context.Context, request *requests.CreateRole) (*models.Role, error)
}

type UserRecordsClient interface {
	FindUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, request *requests.CreateUser) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*models.User, error)
	SetUserEnabled(ctx context.Context, userID string, enabled bool) (*models.User, error)
	FindRoles(ctx context.Context) ([]models.Role, error)
	CreateRole(ctx context.Context, request *requests.CreateRole) (*models.Role, error)
}
