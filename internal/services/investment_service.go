package services

import (
	"context"

	"investadmin/internal/client"
	apperrors "investadmin/internal/errors"
)

// InvestmentService proxies single investment lookups to the investments service.
type InvestmentService struct {
	investments InvestmentsAPI
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(investments InvestmentsAPI) *InvestmentService {
	return &InvestmentService{investments: investments}
}

// GetInvestment returns the upstream representation of one investment.
// An upstream 404 becomes ErrInvestmentNotFound; every other failure is ErrUpstream.
func (s *InvestmentService) GetInvestment(ctx context.Context, id string) (*client.RawInvestment, error) {
	raw, err := s.investments.GetInvestment(ctx, id)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, apperrors.Wrap(apperrors.ErrInvestmentNotFound, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrUpstream, err)
	}
	return raw, nil
}

var _ InvestmentServicer = (*InvestmentService)(nil)
