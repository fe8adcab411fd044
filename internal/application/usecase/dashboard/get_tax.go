package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// GetTaxInput represents the input for a PLR tax lookup.
type GetTaxInput struct {
	Gross string
}

// GetTaxOutput represents the withholding on a gross amount and the table used.
type GetTaxOutput struct {
	Breakdown valueobject.TaxBreakdown
	Table     []valueobject.TaxBracketInfo
}

// GetTaxUseCase applies the PLR withholding table.
type GetTaxUseCase struct{}

// NewGetTaxUseCase creates a new GetTaxUseCase instance.
func NewGetTaxUseCase() *GetTaxUseCase {
	return &GetTaxUseCase{}
}

// Execute computes tax and net for the gross amount.
func (uc *GetTaxUseCase) Execute(ctx context.Context, input GetTaxInput) (*GetTaxOutput, error) {
	gross := decimal.NewFromFloat(valueobject.CleanNumber(input.Gross)).Round(2)
	if gross.IsNegative() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidGrossAmount,
			"gross amount must not be negative",
			domainerror.ErrInvalidGrossAmount,
		)
	}

	return &GetTaxOutput{
		Breakdown: valueobject.CalculatePLRNet(gross),
		Table:     valueobject.PLRTaxTable(),
	}, nil
}
