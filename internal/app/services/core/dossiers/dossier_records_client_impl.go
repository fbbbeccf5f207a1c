package dossiers

import (
	"context"
	"net/url"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/app/models"
	"cpn-service/internal/app/services/shared/recordsapi"
	"cpn-service/internal/pkg/constvars"
)

type dossierRecordsClient struct {
	client *recordsapi.Client
}

func NewDossierRecordsClient(client *recordsapi.Client) contracts.DossierRecordsClient {
	return &dossierRecordsClient{client: client}
}

func (c *dossierRecordsClient) CreateDossier(ctx context.Context, patient *models.Patient) (*models.Dossier, error) {
	dossier := new(models.Dossier)
	err := c.client.Do(ctx, constvars.MethodPost, "/dossier", patient, dossier, constvars.ResourceDossier)
	if err != nil {
		return nil, err
	}
	return dossier, nil
}

func (c *dossierRecordsClient) SearchDossiers(ctx context.Context, search string) ([]models.Dossier, error) {
	path := "/dossier"
	if search != "" {
		path += "?" + constvars.URLQueryParamSearch + "=" + url.QueryEscape(search)
	}
	var dossiers []models.Dossier
	err := c.client.Do(ctx, constvars.MethodGet, path, nil, &dossiers, constvars.ResourceDossier)
	if err != nil {
		return nil, err
	}
	return dossiers, nil
}

func (c *dossierRecordsClient) FindDossierByUniqueID(ctx context.Context, uniqueID string) (*models.Dossier, error) {
	dossier := new(models.Dossier)
	err := c.client.Do(ctx, constvars.MethodGet, "/dossier/"+url.PathEscape(uniqueID), nil, dossier, constvars.ResourceDossier)
	if err != nil {
		return nil, err
	}
	return dossier, nil
}
