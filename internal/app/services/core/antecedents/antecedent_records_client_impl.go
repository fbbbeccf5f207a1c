package antecedents

import (
	"context"
	"net/url"
	"strconv"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/app/services/shared/recordsapi"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/formengine"
)

type antecedentRecordsClient struct {
	client *recordsapi.Client
}

func NewAntecedentRecordsClient(client *recordsapi.Client) contracts.AntecedentRecordsClient {
	return &antecedentRecordsClient{client: client}
}

func (c *antecedentRecordsClient) FetchActiveBlocks(ctx context.Context, antecedentType string) ([]formengine.BlockDefinition, error) {
	path := "/antecedent?active=true"
	if antecedentType != "" {
		path += "&" + constvars.URLQueryParamAntecedentType + "=" + url.QueryEscape(antecedentType)
	}
	var blocks []formengine.BlockDefinition
	err := c.client.Do(ctx, constvars.MethodGet, path, nil, &blocks, constvars.ResourceAntecedent)
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (c *antecedentRecordsClient) FetchBlocks(ctx context.Context, antecedentType string) ([]formengine.BlockDefinition, error) {
	path := "/antecedent"
	if antecedentType != "" {
		path += "?" + constvars.URLQueryParamAntecedentType + "=" + url.QueryEscape(antecedentType)
	}
	var blocks []formengine.BlockDefinition
	err := c.client.Do(ctx, constvars.MethodGet, path, nil, &blocks, constvars.ResourceAntecedent)
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (c *antecedentRecordsClient) CreateBlock(ctx context.Context, block *formengine.BlockDefinition) (*formengine.BlockDefinition, error) {
	created := new(formengine.BlockDefinition)
	err := c.client.Do(ctx, constvars.MethodPost, "/antecedent", block, created, constvars.ResourceAntecedent)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *antecedentRecordsClient) UpdateBlock(ctx context.Context, block *formengine.BlockDefinition) (*formengine.BlockDefinition, error) {
	updated := new(formengine.BlockDefinition)
	path := "/antecedent/" + strconv.FormatInt(block.ID, 10)
	err := c.client.Do(ctx, constvars.MethodPut, path, block, updated, constvars.ResourceAntecedent)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *antecedentRecordsClient) DeleteBlock(ctx context.Context, antecedentID int64) error {
	path := "/antecedent/" + strconv.FormatInt(antecedentID, 10)
	return c.client.Do(ctx, constvars.MethodDelete, path, nil, nil, constvars.ResourceAntecedent)
}
