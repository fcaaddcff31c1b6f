package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"investadmin/internal/models"
)

// RawInvestment is an investment response passed through without decoding.
type RawInvestment struct {
	ContentType string
	Body        []byte
}

// ExportRequest is the payload accepted by the investments export endpoint.
type ExportRequest struct {
	CSVContentEncoded string `json:"csvContentEncoded"`
}

// InvestmentsClient talks to the investments service.
type InvestmentsClient struct {
	base
}

// NewInvestmentsClient creates a client for the investments service at baseURL.
// The caller owns httpClient and its timeout.
func NewInvestmentsClient(baseURL string, httpClient *http.Client) *InvestmentsClient {
	return &InvestmentsClient{base: newBase(baseURL, httpClient)}
}

// GetInvestment fetches one investment and returns the upstream body untouched.
func (c *InvestmentsClient) GetInvestment(ctx context.Context, id string) (*RawInvestment, error) {
	const op = "fetching investment"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/investments/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: creating request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req, op)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: reading body: %w", op, err)
	}
	return &RawInvestment{ContentType: resp.Header.Get("Content-Type"), Body: body}, nil
}

// ListInvestments fetches every investment.
func (c *InvestmentsClient) ListInvestments(ctx context.Context) ([]models.Investment, error) {
	var investments []models.Investment
	if err := c.getJSON(ctx, "/investments", "fetching investments", &investments); err != nil {
		return nil, err
	}
	return investments, nil
}

// ExportReport URL-encodes csv and posts it to the export endpoint.
func (c *InvestmentsClient) ExportReport(ctx context.Context, csv []byte) error {
	body := ExportRequest{CSVContentEncoded: EncodeURIComponent(string(csv))}
	return c.postJSON(ctx, "/investments/export", "exporting report", body)
}
