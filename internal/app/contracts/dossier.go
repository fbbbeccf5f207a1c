package contracts

import (
	"context"

	"cpn-service/internal/app/models"
	"cpn-service/internal/pkg/dto/requests"
)

type DossierUsecase interface {
	Create(ctx context.Context, request *requests.CreateDossier) (*models.Dossier, error)
	Search(ctx context.Context, search string) ([]models.Dossier, error)
	FindByUniqueID(ctx context.Context, uniqueID string) (*models.Dossier, error)
}

// DossierRecordsClient is the dossier surface of the records API.
type DossierRecordsClient interface {
	CreateDossier(ctx context.Context, patient *models.Patient) (*models.Dossier, error)
	SearchDossiers(ctx context.Context, search string) ([]models.Dossier, error)
	FindDossierByUniqueID(ctx context.Context, uniqueID string) (*models.Dossier, error)
}
