package dashboard

import (
	"context"
	"time"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	Log                     *zap.Logger
	DossierRecordsClient    contracts.DossierRecordsClient
	UserRecordsClient       contracts.UserRecordsClient
	AntecedentRecordsClient contracts.AntecedentRecordsClient
	AuditRepository         contracts.SubmissionAuditRepository
}

func NewDashboardUsecase(
	logger *zap.Logger,
	dossierRecordsClient contracts.DossierRecordsClient,
	userRecordsClient contracts.UserRecordsClient,
	antecedentRecordsClient contracts.AntecedentRecordsClient,
	auditRepository contracts.SubmissionAuditRepository,
) contracts.DashboardUsecase {
	return &dashboardUsecase{
		Log:                     logger,
		DossierRecordsClient:    dossierRecordsClient,
		UserRecordsClient:       userRecordsClient,
		AntecedentRecordsClient: antecedentRecordsClient,
		AuditRepository:         auditRepository,
	}
}

// Summary aggregates the landing-page counters. The record counter comes
// from the local audit trail rather than another records API round trip;
// it counts submissions made through this service since the first of the
// month.
func (uc *dashboardUsecase) Summary(ctx context.Context) (*responses.Dashboard, error) {
	dossiers, err := uc.DossierRecordsClient.SearchDossiers(ctx, "")
	if err != nil {
		return nil, err
	}

	users, err := uc.UserRecordsClient.FindUsers(ctx)
	if err != nil {
		return nil, err
	}
	activeUsers := 0
	for _, user := range users {
		if user.Enabled {
			activeUsers++
		}
	}

	blocks, err := uc.AntecedentRecordsClient.FetchActiveBlocks(ctx, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	recordCount, err := uc.AuditRepository.CountSince(ctx, startOfMonth)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("audit count failed, reporting zero",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		recordCount = 0
	}

	return &responses.Dashboard{
		DossierCount:     len(dossiers),
		CpnRecordCount:   int(recordCount),
		ActiveUserCount:  activeUsers,
		AntecedentBlocks: len(blocks),
	}, nil
}
