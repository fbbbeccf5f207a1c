package dossiers

import (
	"context"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/app/models"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type dossierUsecase struct {
	Log                  *zap.Logger
	DossierRecordsClient contracts.DossierRecordsClient
}

func NewDossierUsecase(logger *zap.Logger, dossierRecordsClient contracts.DossierRecordsClient) contracts.DossierUsecase {
	return &dossierUsecase{
		Log:                  logger,
		DossierRecordsClient: dossierRecordsClient,
	}
}

func (uc *dossierUsecase) Create(ctx context.Context, request *requests.CreateDossier) (*models.Dossier, error) {
	// Gender stays editable on the intake form; the clinic's patients
	// default to F when left untouched.
	gender := request.Gender
	if gender == "" {
		gender = "F"
	}

	patient := &models.Patient{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		BirthDate: request.BirthDate,
		Gender:    gender,
		Phone:     request.Phone,
		Address:   request.Address,
	}

	dossier, err := uc.DossierRecordsClient.CreateDossier(ctx, patient)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dossier created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDossierIDKey, dossier.UniqueID),
	)
	return dossier, nil
}

func (uc *dossierUsecase) Search(ctx context.Context, search string) ([]models.Dossier, error) {
	return uc.DossierRecordsClient.SearchDossiers(ctx, search)
}

func (uc *dossierUsecase) FindByUniqueID(ctx context.Context, uniqueID string) (*models.Dossier, error) {
	return uc.DossierRecordsClient.FindDossierByUniqueID(ctx, uniqueID)
}
