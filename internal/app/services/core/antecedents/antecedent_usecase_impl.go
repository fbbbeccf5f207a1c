package antecedents

import (
	"context"
	"strconv"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/dto/requests"
	"cpn-service/internal/pkg/formengine"

	"go.uber.org/zap"
)

type antecedentUsecase struct {
	Log                     *zap.Logger
	AntecedentRecordsClient contracts.AntecedentRecordsClient
}

func NewAntecedentUsecase(logger *zap.Logger, antecedentRecordsClient contracts.AntecedentRecordsClient) contracts.AntecedentUsecase {
	return &antecedentUsecase{
		Log:                     logger,
		AntecedentRecordsClient: antecedentRecordsClient,
	}
}

func (uc *antecedentUsecase) FindAll(ctx context.Context, antecedentType string) ([]formengine.BlockDefinition, error) {
	blocks, err := uc.AntecedentRecordsClient.FetchBlocks(ctx, antecedentType)
	if err != nil {
		return nil, err
	}
	for i := range blocks {
		blocks[i].Fields = formengine.SortFields(blocks[i].Fields)
	}
	return blocks, nil
}

func (uc *antecedentUsecase) Create(ctx context.Context, request *requests.CreateAntecedent) (*formengine.BlockDefinition, error) {
	uc.warnUnknownFieldTypes(ctx, request.Code, request.Fields)
	block := &formengine.BlockDefinition{
		Code:           request.Code,
		Name:           request.Name,
		Description:    request.Description,
		AntecedentType: request.AntecedentType,
		Active:         request.Active,
		Fields:         toFieldDefinitions(request.Fields),
	}
	return uc.AntecedentRecordsClient.CreateBlock(ctx, block)
}

func (uc *antecedentUsecase) Update(ctx context.Context, antecedentID int64, request *requests.UpdateAntecedent) (*formengine.BlockDefinition, error) {
	uc.warnUnknownFieldTypes(ctx, strconv.FormatInt(antecedentID, 10), request.Fields)
	block := &formengine.BlockDefinition{
		ID:             antecedentID,
		Name:           request.Name,
		Description:    request.Description,
		AntecedentType: request.AntecedentType,
		Active:         request.Active,
		Fields:         toFieldDefinitions(request.Fields),
	}
	return uc.AntecedentRecordsClient.UpdateBlock(ctx, block)
}

func (uc *antecedentUsecase) Delete(ctx context.Context, antecedentID int64) error {
	return uc.AntecedentRecordsClient.DeleteBlock(ctx, antecedentID)
}

// Unknown field types are accepted and will render as plain text, but an
// admin typo deserves a trace.
func (uc *antecedentUsecase) warnUnknownFieldTypes(ctx context.Context, blockCode string, fields []requests.AntecedentField) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	for _, field := range fields {
		if !formengine.IsKnownFieldType(field.Type) {
			uc.Log.Warn("unknown antecedent field type, will render as text",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBlockCodeKey, blockCode),
				zap.String(constvars.LoggingFieldTypeKey, field.Type),
			)
		}
	}
}

func toFieldDefinitions(fields []requests.AntecedentField) []formengine.FieldDefinition {
	defs := make([]formengine.FieldDefinition, 0, len(fields))
	for _, field := range fields {
		defs = append(defs, formengine.FieldDefinition{
			Code:         field.Code,
			Label:        field.Label,
			Type:         field.Type,
			Required:     field.Required,
			DisplayOrder: field.DisplayOrder,
			Constraints:  field.Constraints,
		})
	}
	return defs
}
