package formengine

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// State is the lifecycle of one form session.
type State string

const (
	StateClosed        State = "CLOSED"
	StateLoadingSchema State = "LOADING_SCHEMA"
	StateReady         State = "READY"
	StateSubmitting    State = "SUBMITTING"
)

// Notice shown when the schema could not be fetched and the form degrades
// to an empty antecedent section.
const NoticeSchemaUnavailable = "Antécédents indisponibles pour le moment"

// SchemaSource provides the active antecedent blocks that make up the
// dynamic part of the form, scoped to one antecedent type. An empty type
// means no scoping.
type SchemaSource interface {
	FetchBlocks(ctx context.Context, antecedentType string) ([]BlockDefinition, error)
}

// SubmissionSink receives the assembled payload once it validates.
type SubmissionSink interface {
	Submit(ctx context.Context, payload SubmissionPayload) (*CreatedRecord, error)
}

// Form is the dynamic antecedent form session. All methods are safe for
// concurrent use; the sequence counter makes sure a reopen supersedes any
// schema load still in flight.
type Form struct {
	mu             sync.Mutex
	source         SchemaSource
	sink           SubmissionSink
	antecedentType string
	log            *zap.Logger

	state   State
	loadSeq uint64

	blocks    []BlockDefinition
	values    ValueMap
	patientID string
	lmpDate   string
	notice    string
}

// NewForm builds a session over the given source and sink. Blocks whose
// type differs from antecedentType never reach the rendered form.
func NewForm(source SchemaSource, sink SubmissionSink, antecedentType string, log *zap.Logger) *Form {
	return &Form{
		source:         source,
		sink:           sink,
		antecedentType: antecedentType,
		log:            log,
		state:          StateClosed,
	}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Notice returns the degraded-mode message, empty when the schema loaded.
func (f *Form) Notice() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notice
}

// Open starts a fresh session: previous inputs are dropped, the schema is
// fetched and the form becomes READY. A fetch failure does not fail the
// form; it opens with zero blocks and a notice so the patient and date
// inputs stay usable.
func (f *Form) Open(ctx context.Context) error {
	f.mu.Lock()
	f.loadSeq++
	seq := f.loadSeq
	f.state = StateLoadingSchema
	f.blocks = nil
	f.values = nil
	f.patientID = ""
	f.lmpDate = ""
	f.notice = ""
	f.mu.Unlock()

	blocks, err := f.source.FetchBlocks(ctx, f.antecedentType)

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.loadSeq || f.state == StateClosed {
		// A later Open or a Close superseded this load.
		return nil
	}
	if err != nil {
		f.log.Warn("antecedent schema unavailable, opening degraded form", zap.Error(err))
		f.blocks = []BlockDefinition{}
		f.notice = NoticeSchemaUnavailable
	} else {
		f.blocks = normalizeBlocks(blocks, f.antecedentType)
	}
	f.values = NewValues(f.blocks)
	f.state = StateReady
	return nil
}

// Close drops the session. Any in-flight schema load or submission notices
// the closed state and discards its result.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateClosed
	f.blocks = nil
	f.values = nil
	f.patientID = ""
	f.lmpDate = ""
	f.notice = ""
}

func (f *Form) SetPatient(patientID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateReady {
		return
	}
	f.patientID = patientID
}

func (f *Form) SetLMP(date string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateReady {
		return
	}
	f.lmpDate = date
}

// SetValue records raw input for one field. Inputs outside READY are
// ignored so a stale UI cannot mutate a closed or submitting form.
func (f *Form) SetValue(blockID int64, fieldCode string, raw interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateReady {
		return
	}
	f.values.Set(blockID, fieldCode, raw)
}

// Blocks returns the loaded schema with fields in display order.
func (f *Form) Blocks() []BlockDefinition {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]BlockDefinition, len(f.blocks))
	copy(out, f.blocks)
	return out
}

// Validate runs the header and block rules against the current inputs.
func (f *Form) Validate() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	errs := ValidateHeader(f.patientID, f.lmpDate)
	for key, msg := range Validate(f.blocks, f.values) {
		errs[key] = msg
	}
	return errs
}

// Submit validates, assembles the payload and sends it at most once. When
// validation fails the field errors come back and the sink is never
// called. A successful submit closes the form; if the form was closed
// while the request was in flight the result is discarded.
func (f *Form) Submit(ctx context.Context) (*CreatedRecord, map[string]string, error) {
	f.mu.Lock()
	if f.state != StateReady {
		f.mu.Unlock()
		return nil, nil, nil
	}
	errs := ValidateHeader(f.patientID, f.lmpDate)
	for key, msg := range Validate(f.blocks, f.values) {
		errs[key] = msg
	}
	if len(errs) > 0 {
		f.mu.Unlock()
		return nil, errs, nil
	}
	payload := BuildSubmission(f.patientID, f.lmpDate, f.blocks, f.values)
	f.state = StateSubmitting
	seq := f.loadSeq
	f.mu.Unlock()

	record, err := f.sink.Submit(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.loadSeq || f.state == StateClosed {
		return nil, nil, nil
	}
	if err != nil {
		f.state = StateReady
		return nil, nil, err
	}
	f.state = StateClosed
	f.blocks = nil
	f.values = nil
	f.patientID = ""
	f.lmpDate = ""
	return record, nil, nil
}

func normalizeBlocks(blocks []BlockDefinition, antecedentType string) []BlockDefinition {
	out := make([]BlockDefinition, 0, len(blocks))
	for _, block := range blocks {
		if !block.Active {
			continue
		}
		if antecedentType != "" && block.AntecedentType != antecedentType {
			continue
		}
		block.Fields = SortFields(block.Fields)
		out = append(out, block)
	}
	return out
}
