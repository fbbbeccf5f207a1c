package contracts

import (
	"context"

	"cpn-service/internal/pkg/dto/requests"
	"cpn-service/internal/pkg/formengine"
)

type AntecedentUsecase interface {
	FindAll(ctx context.Context, antecedentType string) ([]formengine.BlockDefinition, error)
	Create(ctx context.Context, request *requests.CreateAntecedent) (*formengine.BlockDefinition, error)
	Update(ctx context.Context, antecedentID int64, request *requests.UpdateAntecedent) (*formengine.BlockDefinition, error)
	Delete(ctx context.Context, antecedentID int64) error
}

// AntecedentRecordsClient manages antecedent block definitions on the
// records API. FetchActiveBlocks is what the form engine consumes; an
// empty antecedentType fetches every active block.
type AntecedentRecordsClient interface {
	FetchActiveBlocks(ctx context.Context, antecedentType string) ([]formengine.BlockDefinition, error)
	FetchBlocks(ctx context.Context, antecedentType string) ([]formengine.BlockDefinition, error)
	CreateBlock(ctx context.Context, block *formengine.BlockDefinition) (*formengine.BlockDefinition, error)
	UpdateBlock(ctx context.Context, block *formengine.BlockDefinition) (*formengine.BlockDefinition, error)
	DeleteBlock(ctx context.Context, antecedentID int64) error
}
