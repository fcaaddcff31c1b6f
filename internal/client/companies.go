package client

import (
	"context"
	"net/http"

	"investadmin/internal/models"
)

// CompaniesClient talks to the financial companies service.
type CompaniesClient struct {
	base
}

// NewCompaniesClient creates a client for the financial companies service at baseURL.
func NewCompaniesClient(baseURL string, httpClient *http.Client) *CompaniesClient {
	return &CompaniesClient{base: newBase(baseURL, httpClient)}
}

// ListCompanies fetches every financial company.
func (c *CompaniesClient) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := c.getJSON(ctx, "/companies", "fetching companies", &companies); err != nil {
		return nil, err
	}
	return companies, nil
}
