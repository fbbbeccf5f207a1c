package users

import (
	"context"
	"net/url"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/app/models"
	"cpn-service/internal/app/services/shared/recordsapi"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/dto/requests"
)

type userRecordsClient struct {
	client *recordsapi.Client
}

func NewUserRecordsClient(client *recordsapi.Client) contracts.UserRecordsClient {
	return &userRecordsClient{client: client}
}

func (c *userRecordsClient) FindUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.client.Do(ctx, constvars.MethodGet, "/users", nil, &users, constvars.ResourceUser)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (c *userRecordsClient) CreateUser(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	user := new(models.User)
	err := c.client.Do(ctx, constvars.MethodPost, "/users", request, user, constvars.ResourceUser)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *userRecordsClient) UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*models.User, error) {
	user := new(models.User)
	err := c.client.Do(ctx, constvars.MethodPut, "/users/"+url.PathEscape(userID), request, user, constvars.ResourceUser)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *userRecordsClient) FindRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := c.client.Do(ctx, constvars.MethodGet, "/roles", nil, &roles, constvars.ResourceRole)
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *userRecordsClient) CreateRole(ctx context.Context, request *requests.CreateRole) (*models.Role, error) {
	role := new(models.Role)
	err := c.client.Do(ctx, constvars.MethodPost, "/roles", request, role, constvars.ResourceRole)
	if err != nil {
		return nil, err
	}
	return role, nil
}

func (c *userRecordsClient) SetUserEnabled(ctx context.Context, userID string, enabled bool) (*models.User, error) {
	action := "/disable"
	if enabled {
		action = "/enable"
	}
	user := new(models.User)
	err := c.client.Do(ctx, constvars.MethodPatch, "/users/"+url.PathEscape(userID)+action, nil, user, constvars.ResourceUser)
	if err != nil {
		return nil, err
	}
	return user, nil
}
