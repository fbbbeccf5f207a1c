package users

import (
	"context"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/app/models"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type userUsecase struct {
	Log               *zap.Logger
	UserRecordsClient contracts.UserRecordsClient
}

func NewUserUsecase(logger *zap.Logger, userRecordsClient contracts.UserRecordsClient) contracts.UserUsecase {
	return &userUsecase{
		Log:               logger,
		UserRecordsClient: userRecordsClient,
	}
}

func (uc *userUsecase) FindAll(ctx context.Context) ([]models.User, error) {
	return uc.UserRecordsClient.FindUsers(ctx)
}

func (uc *userUsecase) Create(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	user, err := uc.UserRecordsClient.CreateUser(ctx, request)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("user account created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", user.ID),
		zap.Strings("roles", user.Roles),
	)
	return user, nil
}

func (uc *userUsecase) Update(ctx context.Context, userID string, request *requests.UpdateUser) (*models.User, error) {
	return uc.UserRecordsClient.UpdateUser(ctx, userID, request)
}

func (uc *userUsecase) FindRoles(ctx context.Context) ([]models.Role, error) {
	return uc.UserRecordsClient.FindRoles(ctx)
}

func (uc *userUsecase) CreateRole(ctx context.Context, request *requests.CreateRole) (*models.Role, error) {
	role, err := uc.UserRecordsClient.CreateRole(ctx, request)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("role created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("role_name", role.Name),
	)
	return role, nil
}

func (uc *userUsecase) SetEnabled(ctx context.Context, userID string, enabled bool) (*models.User, error) {
	user, err := uc.UserRecordsClient.SetUserEnabled(ctx, userID, enabled)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("user account toggled",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", userID),
		zap.Bool("enabled", enabled),
	)
	return user, nil
}
