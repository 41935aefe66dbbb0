package insighting

import (
	"context"

	"github.com/vfg2006/resale-tracker-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Insighter expõe o feed de insights do painel de vendas
type Insighter interface {
	// GetInsights agrega as vendas do período em série diária e resumo
	GetInsights(ctx context.Context, filters *domain.InsightFilters) (*domain.InsightsResponse, error)
}
