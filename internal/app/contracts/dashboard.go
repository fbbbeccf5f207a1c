package contracts

import (
	"context"

	"cpn-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	Summary(ctx context.Context) (*responses.Dashboard, error)
}
