package cpn

import (
	"context"
	"time"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/app/models"
	"cpn-service/internal/app/services/shared/recordsapi"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/dto/requests"
	"cpn-service/internal/pkg/dto/responses"
	"cpn-service/internal/pkg/exceptions"
	"cpn-service/internal/pkg/formengine"

	"go.uber.org/zap"
)

type cpnUsecase struct {
	Log                     *zap.Logger
	AntecedentRecordsClient contracts.AntecedentRecordsClient
	CpnRecordsClient        contracts.CpnRecordsClient
	AuditRepository         contracts.SubmissionAuditRepository
	EventPublisher          contracts.EventPublisher
}

func NewCpnUsecase(
	logger *zap.Logger,
	antecedentRecordsClient contracts.AntecedentRecordsClient,
	cpnRecordsClient contracts.CpnRecordsClient,
	auditRepository contracts.SubmissionAuditRepository,
	eventPublisher contracts.EventPublisher,
) contracts.CpnUsecase {
	return &cpnUsecase{
		Log:                     logger,
		AntecedentRecordsClient: antecedentRecordsClient,
		CpnRecordsClient:        cpnRecordsClient,
		AuditRepository:         auditRepository,
		EventPublisher:          eventPublisher,
	}
}

// schemaSource adapts the antecedent client to the form engine.
type schemaSource struct {
	client contracts.AntecedentRecordsClient
}

func (s schemaSource) FetchBlocks(ctx context.Context, antecedentType string) ([]formengine.BlockDefinition, error) {
	return s.client.FetchActiveBlocks(ctx, antecedentType)
}

// submissionSink adapts the cpn client to the form engine.
type submissionSink struct {
	client contracts.CpnRecordsClient
}

func (s submissionSink) Submit(ctx context.Context, payload formengine.SubmissionPayload) (*formengine.CreatedRecord, error) {
	return s.client.CreateRecord(ctx, payload)
}

// newForm builds a CPN session. The prenatal form carries obstetric
// blocks only.
func (uc *cpnUsecase) newForm() *formengine.Form {
	return formengine.NewForm(
		schemaSource{client: uc.AntecedentRecordsClient},
		submissionSink{client: uc.CpnRecordsClient},
		constvars.AntecedentTypeObstetrics,
		uc.Log,
	)
}

// RenderForm opens a fresh form session and returns its renderable shape.
// A schema fetch failure degrades to the fixed inputs with a notice
// instead of failing the page.
func (uc *cpnUsecase) RenderForm(ctx context.Context) (*responses.CpnForm, error) {
	form := uc.newForm()
	if err := form.Open(ctx); err != nil {
		return nil, err
	}

	blocks := form.Blocks()
	views := make([]responses.BlockView, 0, len(blocks))
	for _, block := range blocks {
		view := responses.BlockView{
			AntecedentID:   block.ID,
			Code:           block.Code,
			Name:           block.Name,
			Description:    block.Description,
			AntecedentType: block.AntecedentType,
			Fields:         make([]responses.FieldView, 0, len(block.Fields)),
		}
		for _, field := range block.Fields {
			view.Fields = append(view.Fields, responses.FieldView{
				Code:     field.Code,
				Label:    field.Label,
				Type:     string(field.FieldType()),
				Required: field.Required,
				Widget:   formengine.WidgetFor(field),
			})
		}
		views = append(views, view)
	}

	return &responses.CpnForm{
		Notice: form.Notice(),
		Blocks: views,
	}, nil
}

// Submit replays one client submission through the form engine: open,
// fill, validate, send. Validation errors surface as a field map, the
// records API is reached at most once.
func (uc *cpnUsecase) Submit(ctx context.Context, request *requests.SubmitCpn) (*responses.CpnSubmitted, error) {
	form := uc.newForm()
	if err := form.Open(ctx); err != nil {
		return nil, err
	}

	form.SetPatient(request.PatientID)
	form.SetLMP(request.LmpDate)
	for _, blockValues := range request.Values {
		for code, raw := range blockValues.Fields {
			form.SetValue(blockValues.AntecedentID, code, raw)
		}
	}

	record, fieldErrors, err := form.Submit(ctx)
	if err != nil {
		return nil, err
	}
	if len(fieldErrors) > 0 {
		return nil, exceptions.ErrFormValidation(fieldErrors)
	}

	lmp, parseErr := time.Parse(constvars.ISODateLayout, request.LmpDate)
	estimatedDueDate := ""
	if parseErr == nil {
		estimatedDueDate = formengine.EstimatedDueDate(lmp).Format(constvars.ISODateLayout)
	}

	uc.trace(ctx, record, request)

	return &responses.CpnSubmitted{
		RecordID:         record.ID,
		EstimatedDueDate: estimatedDueDate,
	}, nil
}

// trace writes the audit document and publishes the created-record event.
// Both are best effort; the record already exists on the records API.
func (uc *cpnUsecase) trace(ctx context.Context, record *formengine.CreatedRecord, request *requests.SubmitCpn) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	submittedBy, role := "", ""
	if session, ok := recordsapi.SessionFromContext(ctx); ok {
		submittedBy = session.Username
		role = session.Role
	}

	fieldCount := 0
	for _, blockValues := range request.Values {
		fieldCount += len(blockValues.Fields)
	}

	now := time.Now()
	audit := &models.SubmissionAudit{
		RecordID:    record.ID,
		PatientID:   request.PatientID,
		SubmittedBy: submittedBy,
		Role:        role,
		BlockCount:  len(request.Values),
		FieldCount:  fieldCount,
		SubmittedAt: now,
	}
	if err := uc.AuditRepository.Insert(ctx, audit); err != nil {
		uc.Log.Error("submission audit insert failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCpnIDKey, record.ID),
			zap.Error(err),
		)
	}

	event := contracts.RecordCreatedEvent{
		RecordID:    record.ID,
		PatientID:   request.PatientID,
		SubmittedBy: submittedBy,
		SubmittedAt: now.Format(time.RFC3339),
	}
	if err := uc.EventPublisher.PublishRecordCreated(ctx, event); err != nil {
		uc.Log.Error("record created event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCpnIDKey, record.ID),
			zap.Error(err),
		)
	}
}

func (uc *cpnUsecase) Schedule(ctx context.Context, lmpDate string) (*responses.CpnSchedule, error) {
	lmp, err := time.Parse(constvars.ISODateLayout, lmpDate)
	if err != nil {
		return nil, exceptions.ErrFormValidation(map[string]string{"lmpDate": "La date est requise"})
	}

	plan := formengine.PlanConsultations(lmp)
	consultations := make([]responses.Consultation, 0, len(plan))
	for _, consultation := range plan {
		consultations = append(consultations, responses.Consultation{
			Week: consultation.Week,
			Date: consultation.Date.Format(constvars.ISODateLayout),
		})
	}

	return &responses.CpnSchedule{
		LmpDate:          lmpDate,
		EstimatedDueDate: formengine.EstimatedDueDate(lmp).Format(constvars.ISODateLayout),
		Consultations:    consultations,
	}, nil
}

func (uc *cpnUsecase) FindByPatient(ctx context.Context, patientID string) ([]models.CpnRecord, error) {
	return uc.CpnRecordsClient.FindRecordsByPatient(ctx, patientID)
}

func (uc *cpnUsecase) FindByID(ctx context.Context, cpnID string) (*models.CpnRecord, error) {
	return uc.CpnRecordsClient.FindRecordByID(ctx, cpnID)
}
