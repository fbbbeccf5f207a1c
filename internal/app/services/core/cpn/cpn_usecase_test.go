package cpn

import (
	"context"
	"errors"
	"testing"
	"time"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/app/models"
	"cpn-service/internal/pkg/dto/requests"
	"cpn-service/internal/pkg/exceptions"
	"cpn-service/internal/pkg/formengine"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func intPtr(i int) *int { return &i }

type fakeAntecedentClient struct {
	blocks       []formengine.BlockDefinition
	err          error
	fetchedTypes []string
}

func (f *fakeAntecedentClient) FetchActiveBlocks(_ context.Context, antecedentType string) ([]formengine.BlockDefinition, error) {
	f.fetchedTypes = append(f.fetchedTypes, antecedentType)
	return f.blocks, f.err
}
func (f *fakeAntecedentClient) FetchBlocks(context.Context, string) ([]formengine.BlockDefinition, error) {
	return f.blocks, f.err
}
func (f *fakeAntecedentClient) CreateBlock(_ context.Context, b *formengine.BlockDefinition) (*formengine.BlockDefinition, error) {
	return b, nil
}
func (f *fakeAntecedentClient) UpdateBlock(_ context.Context, b *formengine.BlockDefinition) (*formengine.BlockDefinition, error) {
	return b, nil
}
func (f *fakeAntecedentClient) DeleteBlock(context.Context, int64) error { return nil }

type fakeCpnClient struct {
	calls    int
	payloads []formengine.SubmissionPayload
}

func (f *fakeCpnClient) CreateRecord(_ context.Context, payload formengine.SubmissionPayload) (*formengine.CreatedRecord, error) {
	f.calls++
	f.payloads = append(f.payloads, payload)
	return &formengine.CreatedRecord{ID: "rec-42"}, nil
}
func (f *fakeCpnClient) FindRecordsByPatient(context.Context, string) ([]models.CpnRecord, error) {
	return nil, nil
}
func (f *fakeCpnClient) FindRecordByID(context.Context, string) (*models.CpnRecord, error) {
	return nil, nil
}

type fakeAuditRepository struct {
	inserted []*models.SubmissionAudit
}

func (f *fakeAuditRepository) Insert(_ context.Context, audit *models.SubmissionAudit) error {
	f.inserted = append(f.inserted, audit)
	return nil
}
func (f *fakeAuditRepository) CountSince(context.Context, time.Time) (int64, error) {
	return int64(len(f.inserted)), nil
}

type fakePublisher struct {
	events []contracts.RecordCreatedEvent
}

func (f *fakePublisher) PublishRecordCreated(_ context.Context, event contracts.RecordCreatedEvent) error {
	f.events = append(f.events, event)
	return nil
}

func obstetricsSchema() []formengine.BlockDefinition {
	return []formengine.BlockDefinition{{
		ID:             1,
		Code:           "OBS",
		Name:           "Antécédents obstétricaux",
		AntecedentType: "OBSTETRICS",
		Active:         true,
		Fields: []formengine.FieldDefinition{
			{Code: "notes", Type: "TEXT", DisplayOrder: intPtr(2)},
			{Code: "count", Type: "INTEGER", Required: true, DisplayOrder: intPtr(1),
				Constraints: formengine.Constraints{"min": float64(0), "max": float64(15)}},
		},
	}}
}

func newTestUsecase(schema *fakeAntecedentClient, records *fakeCpnClient) (contracts.CpnUsecase, *fakeAuditRepository, *fakePublisher) {
	audit := &fakeAuditRepository{}
	publisher := &fakePublisher{}
	uc := NewCpnUsecase(zap.NewNop(), schema, records, audit, publisher)
	return uc, audit, publisher
}

func TestRenderForm(t *testing.T) {
	t.Run("fields come back in display order with widgets", func(t *testing.T) {
		uc, _, _ := newTestUsecase(&fakeAntecedentClient{blocks: obstetricsSchema()}, &fakeCpnClient{})

		form, err := uc.RenderForm(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, form.Notice)
		assert.Len(t, form.Blocks, 1)
		assert.Equal(t, "count", form.Blocks[0].Fields[0].Code)
		assert.Equal(t, formengine.ControlNumber, form.Blocks[0].Fields[0].Widget.Control)
		assert.Equal(t, "notes", form.Blocks[0].Fields[1].Code)
	})

	t.Run("fetch is scoped to obstetric antecedents", func(t *testing.T) {
		schema := &fakeAntecedentClient{blocks: append(obstetricsSchema(), formengine.BlockDefinition{
			ID:             7,
			Code:           "SURG",
			AntecedentType: "GENERAL",
			Active:         true,
		})}
		uc, _, _ := newTestUsecase(schema, &fakeCpnClient{})

		form, err := uc.RenderForm(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"OBSTETRICS"}, schema.fetchedTypes)
		assert.Len(t, form.Blocks, 1)
		assert.Equal(t, "OBS", form.Blocks[0].Code)
	})

	t.Run("schema failure degrades with a notice", func(t *testing.T) {
		uc, _, _ := newTestUsecase(&fakeAntecedentClient{err: errors.New("records down")}, &fakeCpnClient{})

		form, err := uc.RenderForm(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, formengine.NoticeSchemaUnavailable, form.Notice)
		assert.Empty(t, form.Blocks)
	})
}

func TestSubmit(t *testing.T) {
	t.Run("missing required field blocks the submission", func(t *testing.T) {
		records := &fakeCpnClient{}
		uc, audit, publisher := newTestUsecase(&fakeAntecedentClient{blocks: obstetricsSchema()}, records)

		_, err := uc.Submit(context.Background(), &requests.SubmitCpn{
			PatientID: "pat-1",
			LmpDate:   "2026-01-10",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, "Champ requis", customErr.Fields["1.count"])
		assert.Equal(t, 0, records.calls)
		assert.Empty(t, audit.inserted)
		assert.Empty(t, publisher.events)
	})

	t.Run("valid submission coerces values and traces", func(t *testing.T) {
		records := &fakeCpnClient{}
		uc, audit, publisher := newTestUsecase(&fakeAntecedentClient{blocks: obstetricsSchema()}, records)

		result, err := uc.Submit(context.Background(), &requests.SubmitCpn{
			PatientID: "pat-1",
			LmpDate:   "2026-01-10",
			Values: []requests.BlockValues{{
				AntecedentID: 1,
				Fields:       map[string]interface{}{"count": "2"},
			}},
		})
		assert.NoError(t, err)
		assert.Equal(t, "rec-42", result.RecordID)
		assert.Equal(t, "2026-10-17", result.EstimatedDueDate)

		assert.Equal(t, 1, records.calls)
		payload := records.payloads[0]
		assert.Equal(t, "pat-1", payload.PatientID)
		assert.Equal(t, "2026-01-10", payload.LastAmenorrheaDate)
		assert.Equal(t, int64(2), payload.Antecedents[0].Values["count"])
		_, hasNotes := payload.Antecedents[0].Values["notes"]
		assert.False(t, hasNotes)

		assert.Len(t, audit.inserted, 1)
		assert.Equal(t, "rec-42", audit.inserted[0].RecordID)
		assert.Len(t, publisher.events, 1)
		assert.Equal(t, "pat-1", publisher.events[0].PatientID)
	})

	t.Run("out of range value reports one field error", func(t *testing.T) {
		records := &fakeCpnClient{}
		uc, _, _ := newTestUsecase(&fakeAntecedentClient{blocks: obstetricsSchema()}, records)

		_, err := uc.Submit(context.Background(), &requests.SubmitCpn{
			PatientID: "pat-1",
			LmpDate:   "2026-01-10",
			Values: []requests.BlockValues{{
				AntecedentID: 1,
				Fields:       map[string]interface{}{"count": "16"},
			}},
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, map[string]string{"1.count": "Max 15"}, customErr.Fields)
		assert.Equal(t, 0, records.calls)
	})

	t.Run("missing patient and date report header errors", func(t *testing.T) {
		uc, _, _ := newTestUsecase(&fakeAntecedentClient{blocks: nil}, &fakeCpnClient{})

		_, err := uc.Submit(context.Background(), &requests.SubmitCpn{})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, "Patient requis", customErr.Fields["patientID"])
		assert.Equal(t, "La date est requise", customErr.Fields["lmpDate"])
	})
}

func TestSchedule(t *testing.T) {
	uc, _, _ := newTestUsecase(&fakeAntecedentClient{}, &fakeCpnClient{})

	t.Run("computes due date and visit calendar", func(t *testing.T) {
		schedule, err := uc.Schedule(context.Background(), "2026-01-10")
		assert.NoError(t, err)
		assert.Equal(t, "2026-10-17", schedule.EstimatedDueDate)
		assert.Len(t, schedule.Consultations, 14)
		assert.Equal(t, 12, schedule.Consultations[0].Week)
		assert.Equal(t, "2026-04-04", schedule.Consultations[0].Date)
	})

	t.Run("rejects an unparseable date", func(t *testing.T) {
		_, err := uc.Schedule(context.Background(), "10/01/2026")
		assert.Error(t, err)
	})
}
