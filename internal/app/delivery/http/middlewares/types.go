package middlewares

import (
	"cpn-service/internal/app/config"
	"cpn-service/internal/app/contracts"
)

type Middlewares struct {
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}
