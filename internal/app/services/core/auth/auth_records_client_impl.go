package auth

import (
	"context"
	"errors"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/app/services/shared/recordsapi"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/exceptions"
)

type authRecordsClient struct {
	client *recordsapi.Client
}

func NewAuthRecordsClient(client *recordsapi.Client) contracts.AuthRecordsClient {
	return &authRecordsClient{client: client}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *authRecordsClient) Login(ctx context.Context, username, password string) (string, error) {
	body := loginRequest{Username: username, Password: password}
	out := new(loginResponse)
	err := c.client.Do(ctx, constvars.MethodPost, "/auth/login", body, out, constvars.ResourceAuth)
	if err != nil {
		var customErr *exceptions.CustomError
		// The records API answers 401 to bad credentials; without a
		// session attached that must read as "wrong password", not
		// "session expired".
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
			return "", exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevRecordsUnauthorized)
		}
		return "", err
	}
	if out.Token == "" {
		return "", exceptions.ErrRemoteTokenUndecodable(nil)
	}
	return out.Token, nil
}
