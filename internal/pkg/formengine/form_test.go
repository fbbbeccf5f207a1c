package formengine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type sourceFunc func(ctx context.Context) ([]BlockDefinition, error)

func (f sourceFunc) FetchBlocks(ctx context.Context, _ string) ([]BlockDefinition, error) {
	return f(ctx)
}

type fakeSink struct {
	mu       sync.Mutex
	calls    int
	payloads []SubmissionPayload
	record   *CreatedRecord
	err      error
}

func (s *fakeSink) Submit(_ context.Context, payload SubmissionPayload) (*CreatedRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.payloads = append(s.payloads, payload)
	return s.record, s.err
}

func obstetricsBlocks() []BlockDefinition {
	return []BlockDefinition{{
		ID:             1,
		Code:           "OBS",
		AntecedentType: "OBSTETRICS",
		Active:         true,
		Fields: []FieldDefinition{
			{Code: "count", Type: "INTEGER", Required: true, Constraints: Constraints{"min": float64(0), "max": float64(15)}},
			{Code: "notes", Type: "TEXT"},
		},
	}}
}

func TestFormOpen(t *testing.T) {
	t.Run("loads schema and becomes ready", func(t *testing.T) {
		source := sourceFunc(func(context.Context) ([]BlockDefinition, error) {
			return obstetricsBlocks(), nil
		})
		form := NewForm(source, &fakeSink{}, "OBSTETRICS", zap.NewNop())

		assert.Equal(t, StateClosed, form.State())
		assert.NoError(t, form.Open(context.Background()))
		assert.Equal(t, StateReady, form.State())
		assert.Len(t, form.Blocks(), 1)
		assert.Empty(t, form.Notice())
	})

	t.Run("filters inactive blocks and sorts fields", func(t *testing.T) {
		source := sourceFunc(func(context.Context) ([]BlockDefinition, error) {
			return []BlockDefinition{
				{ID: 1, AntecedentType: "OBSTETRICS", Active: false},
				{ID: 2, AntecedentType: "OBSTETRICS", Active: true, Fields: []FieldDefinition{
					{Code: "b", DisplayOrder: intPtr(2)},
					{Code: "a", DisplayOrder: intPtr(1)},
				}},
			}, nil
		})
		form := NewForm(source, &fakeSink{}, "OBSTETRICS", zap.NewNop())
		assert.NoError(t, form.Open(context.Background()))

		blocks := form.Blocks()
		assert.Len(t, blocks, 1)
		assert.Equal(t, int64(2), blocks[0].ID)
		assert.Equal(t, "a", blocks[0].Fields[0].Code)
	})

	t.Run("blocks of another antecedent type stay off the form", func(t *testing.T) {
		source := sourceFunc(func(context.Context) ([]BlockDefinition, error) {
			return append(obstetricsBlocks(),
				BlockDefinition{ID: 2, Code: "SURG", AntecedentType: "GENERAL", Active: true, Fields: []FieldDefinition{
					{Code: "surgeries", Type: "TEXT", Required: true},
				}},
				BlockDefinition{ID: 3, Code: "GYN", AntecedentType: "GYNECO", Active: true},
			), nil
		})
		sink := &fakeSink{record: &CreatedRecord{ID: "rec-1"}}
		form := NewForm(source, sink, "OBSTETRICS", zap.NewNop())
		assert.NoError(t, form.Open(context.Background()))

		blocks := form.Blocks()
		assert.Len(t, blocks, 1)
		assert.Equal(t, int64(1), blocks[0].ID)

		// the foreign required field must not block or leak into a submission
		form.SetPatient("pat-1")
		form.SetLMP("2026-01-10")
		form.SetValue(1, "count", "2")
		record, errs, err := form.Submit(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, errs)
		assert.Equal(t, "rec-1", record.ID)
		assert.Len(t, sink.payloads[0].Antecedents, 1)
		assert.Equal(t, int64(1), sink.payloads[0].Antecedents[0].AntecedentID)
	})

	t.Run("degrades to empty form when schema fails", func(t *testing.T) {
		source := sourceFunc(func(context.Context) ([]BlockDefinition, error) {
			return nil, errors.New("records api down")
		})
		form := NewForm(source, &fakeSink{}, "OBSTETRICS", zap.NewNop())
		assert.NoError(t, form.Open(context.Background()))

		assert.Equal(t, StateReady, form.State())
		assert.Empty(t, form.Blocks())
		assert.Equal(t, NoticeSchemaUnavailable, form.Notice())
	})

	t.Run("reopen supersedes a load still in flight", func(t *testing.T) {
		release := make(chan struct{})
		var calls int
		var mu sync.Mutex
		source := sourceFunc(func(context.Context) ([]BlockDefinition, error) {
			mu.Lock()
			calls++
			call := calls
			mu.Unlock()
			if call == 1 {
				<-release
				return []BlockDefinition{{ID: 100, AntecedentType: "OBSTETRICS", Active: true}}, nil
			}
			return []BlockDefinition{{ID: 200, AntecedentType: "OBSTETRICS", Active: true}}, nil
		})
		form := NewForm(source, &fakeSink{}, "OBSTETRICS", zap.NewNop())

		done := make(chan struct{})
		go func() {
			_ = form.Open(context.Background())
			close(done)
		}()
		for form.State() != StateLoadingSchema {
			time.Sleep(time.Millisecond)
		}
		assert.NoError(t, form.Open(context.Background()))
		close(release)
		<-done

		blocks := form.Blocks()
		assert.Len(t, blocks, 1)
		assert.Equal(t, int64(200), blocks[0].ID)
	})

	t.Run("reopen resets previous inputs", func(t *testing.T) {
		source := sourceFunc(func(context.Context) ([]BlockDefinition, error) {
			return obstetricsBlocks(), nil
		})
		form := NewForm(source, &fakeSink{}, "OBSTETRICS", zap.NewNop())
		assert.NoError(t, form.Open(context.Background()))
		form.SetPatient("pat-1")
		form.SetValue(1, "count", "3")

		assert.NoError(t, form.Open(context.Background()))
		errs := form.Validate()
		assert.Equal(t, "Patient requis", errs["patientID"])
		assert.Equal(t, "Champ requis", errs["1.count"])
	})
}

func TestFormSubmit(t *testing.T) {
	t.Run("validation failure never reaches the sink", func(t *testing.T) {
		source := sourceFunc(func(context.Context) ([]BlockDefinition, error) {
			return obstetricsBlocks(), nil
		})
		sink := &fakeSink{record: &CreatedRecord{ID: "rec-1"}}
		form := NewForm(source, sink, "OBSTETRICS", zap.NewNop())
		assert.NoError(t, form.Open(context.Background()))
		form.SetPatient("pat-1")
		form.SetLMP("2026-01-10")

		record, errs, err := form.Submit(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, record)
		assert.Equal(t, map[string]string{"1.count": "Champ requis"}, errs)
		assert.Equal(t, 0, sink.calls)
		assert.Equal(t, StateReady, form.State())
	})

	t.Run("successful submit sends coerced payload once and closes", func(t *testing.T) {
		source := sourceFunc(func(context.Context) ([]BlockDefinition, error) {
			return obstetricsBlocks(), nil
		})
		sink := &fakeSink{record: &CreatedRecord{ID: "rec-1"}}
		form := NewForm(source, sink, "OBSTETRICS", zap.NewNop())
		assert.NoError(t, form.Open(context.Background()))
		form.SetPatient("pat-1")
		form.SetLMP("2026-01-10")
		form.SetValue(1, "count", "2")

		record, errs, err := form.Submit(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, errs)
		assert.Equal(t, "rec-1", record.ID)
		assert.Equal(t, StateClosed, form.State())

		assert.Equal(t, 1, sink.calls)
		payload := sink.payloads[0]
		assert.Equal(t, "pat-1", payload.PatientID)
		assert.Equal(t, "2026-01-10", payload.LastAmenorrheaDate)
		assert.Equal(t, int64(2), payload.Antecedents[0].Values["count"])

		// closed form ignores further submits
		record, errs, err = form.Submit(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, record)
		assert.Nil(t, errs)
		assert.Equal(t, 1, sink.calls)
	})

	t.Run("sink failure returns to ready", func(t *testing.T) {
		source := sourceFunc(func(context.Context) ([]BlockDefinition, error) {
			return obstetricsBlocks(), nil
		})
		sink := &fakeSink{err: errors.New("records api 500")}
		form := NewForm(source, sink, "OBSTETRICS", zap.NewNop())
		assert.NoError(t, form.Open(context.Background()))
		form.SetPatient("pat-1")
		form.SetLMP("2026-01-10")
		form.SetValue(1, "count", "0")

		record, errs, err := form.Submit(context.Background())
		assert.Error(t, err)
		assert.Nil(t, record)
		assert.Empty(t, errs)
		assert.Equal(t, StateReady, form.State())
	})

	t.Run("close during flight discards the result", func(t *testing.T) {
		source := sourceFunc(func(context.Context) ([]BlockDefinition, error) {
			return obstetricsBlocks(), nil
		})
		form := NewForm(source, nil, "OBSTETRICS", zap.NewNop())

		release := make(chan struct{})
		started := make(chan struct{})
		form.sink = sourceSink{started: started, release: release}
		assert.NoError(t, form.Open(context.Background()))
		form.SetPatient("pat-1")
		form.SetLMP("2026-01-10")
		form.SetValue(1, "count", "1")

		type result struct {
			record *CreatedRecord
			err    error
		}
		done := make(chan result, 1)
		go func() {
			record, _, err := form.Submit(context.Background())
			done <- result{record: record, err: err}
		}()
		<-started
		form.Close()
		close(release)

		got := <-done
		assert.NoError(t, got.err)
		assert.Nil(t, got.record)
		assert.Equal(t, StateClosed, form.State())
	})
}

type sourceSink struct {
	started chan struct{}
	release chan struct{}
}

func (s sourceSink) Submit(context.Context, SubmissionPayload) (*CreatedRecord, error) {
	close(s.started)
	<-s.release
	return &CreatedRecord{ID: "rec-late"}, nil
}

func TestSchedule(t *testing.T) {
	lmp := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	t.Run("due date is lmp plus 280 days", func(t *testing.T) {
		assert.Equal(t, time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC), EstimatedDueDate(lmp))
	})

	t.Run("visit weeks follow the antenatal cadence", func(t *testing.T) {
		plan := PlanConsultations(lmp)
		weeks := make([]int, 0, len(plan))
		for _, c := range plan {
			weeks = append(weeks, c.Week)
		}
		assert.Equal(t, []int{12, 16, 20, 24, 28, 30, 32, 34, 36, 37, 38, 39, 40, 41}, weeks)
		assert.Equal(t, lmp.AddDate(0, 0, 84), plan[0].Date)
	})

	t.Run("upcoming drops past visits", func(t *testing.T) {
		now := lmp.AddDate(0, 0, 30*7)
		upcoming := UpcomingConsultations(lmp, now)
		assert.Equal(t, 30, upcoming[0].Week)
	})
}
