package antecedents

import (
	"context"
	"testing"

	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/dto/requests"
	"cpn-service/internal/pkg/formengine"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubRecordsClient struct{}

func (stubRecordsClient) FetchActiveBlocks(context.Context, string) ([]formengine.BlockDefinition, error) {
	return nil, nil
}
func (stubRecordsClient) FetchBlocks(context.Context, string) ([]formengine.BlockDefinition, error) {
	return nil, nil
}
func (stubRecordsClient) CreateBlock(_ context.Context, b *formengine.BlockDefinition) (*formengine.BlockDefinition, error) {
	return b, nil
}
func (stubRecordsClient) UpdateBlock(_ context.Context, b *formengine.BlockDefinition) (*formengine.BlockDefinition, error) {
	return b, nil
}
func (stubRecordsClient) DeleteBlock(context.Context, int64) error { return nil }

func TestWarnUnknownFieldTypes(t *testing.T) {
	unknownFields := []requests.AntecedentField{
		{Code: "weird", Label: "Weird", Type: "RADIO"},
	}

	t.Run("create warns with the block code", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		uc := NewAntecedentUsecase(zap.New(core), stubRecordsClient{})

		_, err := uc.Create(context.Background(), &requests.CreateAntecedent{
			Code:           "OBS",
			Name:           "Antécédents obstétricaux",
			AntecedentType: constvars.AntecedentTypeObstetrics,
			Fields:         unknownFields,
		})
		assert.NoError(t, err)

		entries := logs.All()
		assert.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "OBS", fields[constvars.LoggingBlockCodeKey])
		assert.Equal(t, "RADIO", fields[constvars.LoggingFieldTypeKey])
	})

	t.Run("update warns with the block id", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		uc := NewAntecedentUsecase(zap.New(core), stubRecordsClient{})

		_, err := uc.Update(context.Background(), 7, &requests.UpdateAntecedent{
			Name:           "Antécédents obstétricaux",
			AntecedentType: constvars.AntecedentTypeObstetrics,
			Fields:         unknownFields,
		})
		assert.NoError(t, err)

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, "7", entries[0].ContextMap()[constvars.LoggingBlockCodeKey])
	})

	t.Run("known types stay quiet", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		uc := NewAntecedentUsecase(zap.New(core), stubRecordsClient{})

		_, err := uc.Create(context.Background(), &requests.CreateAntecedent{
			Code:           "OBS",
			Name:           "Antécédents obstétricaux",
			AntecedentType: constvars.AntecedentTypeObstetrics,
			Fields: []requests.AntecedentField{
				{Code: "count", Label: "Nombre", Type: "INTEGER"},
			},
		})
		assert.NoError(t, err)
		assert.Zero(t, logs.Len())
	})
}
