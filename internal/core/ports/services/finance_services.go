package services

import (
	"context"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// FinanceSvcFacade defines the lifetime aggregation service.
type FinanceSvcFacade interface {
	// GetUnifiedTotals aggregates verified income, expenses, and manual
	// adjustments across every period into the society's current
	// balance. A source stream that cannot be fetched contributes zero
	// rather than failing the whole summary.
	GetUnifiedTotals(ctx context.Context) (*domain.UnifiedTotals, error)
}
