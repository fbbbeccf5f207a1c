package contracts

import (
	"context"
	"time"

	"cpn-service/internal/app/models"
	"cpn-service/internal/pkg/dto/requests"
	"cpn-service/internal/pkg/dto/responses"
	"cpn-service/internal/pkg/formengine"
)

type CpnUsecase interface {
	RenderForm(ctx context.Context) (*responses.CpnForm, error)
	Submit(ctx context.Context, request *requests.SubmitCpn) (*responses.CpnSubmitted, error)
	Schedule(ctx context.Context, lmpDate string) (*responses.CpnSchedule, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.CpnRecord, error)
	FindByID(ctx context.Context, cpnID string) (*models.CpnRecord, error)
}

// CpnRecordsClient is the pregnancy-record surface of the records API.
type CpnRecordsClient interface {
	CreateRecord(ctx context.Context, payload formengine.SubmissionPayload) (*formengine.CreatedRecord, error)
	FindRecordsByPatient(ctx context.Context, patientID string) ([]models.CpnRecord, error)
	FindRecordByID(ctx context.Context, cpnID string) (*models.CpnRecord, error)
}

type SubmissionAuditRepository interface {
	Insert(ctx context.Context, audit *models.SubmissionAudit) error
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
