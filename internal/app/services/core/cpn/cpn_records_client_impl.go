package cpn

import (
	"context"
	"net/url"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/app/models"
	"cpn-service/internal/app/services/shared/recordsapi"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/formengine"
)

type cpnRecordsClient struct {
	client *recordsapi.Client
}

func NewCpnRecordsClient(client *recordsapi.Client) contracts.CpnRecordsClient {
	return &cpnRecordsClient{client: client}
}

func (c *cpnRecordsClient) CreateRecord(ctx context.Context, payload formengine.SubmissionPayload) (*formengine.CreatedRecord, error) {
	record := new(formengine.CreatedRecord)
	err := c.client.Do(ctx, constvars.MethodPost, "/cpn", payload, record, constvars.ResourceCpn)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (c *cpnRecordsClient) FindRecordsByPatient(ctx context.Context, patientID string) ([]models.CpnRecord, error) {
	path := "/cpn?" + constvars.URLQueryParamPatientID + "=" + url.QueryEscape(patientID)
	var records []models.CpnRecord
	err := c.client.Do(ctx, constvars.MethodGet, path, nil, &records, constvars.ResourceCpn)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *cpnRecordsClient) FindRecordByID(ctx context.Context, cpnID string) (*models.CpnRecord, error) {
	record := new(models.CpnRecord)
	err := c.client.Do(ctx, constvars.MethodGet, "/cpn/"+url.PathEscape(cpnID), nil, record, constvars.ResourceCpn)
	if err != nil {
		return nil, err
	}
	return record, nil
}
