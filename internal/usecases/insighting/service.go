package insighting

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/vfg2006/resale-tracker-api/infrastructure/repository"
	"github.com/vfg2006/resale-tracker-api/internal/config"
	"github.com/vfg2006/resale-tracker-api/internal/domain"
	"github.com/vfg2006/resale-tracker-api/pkg/utils"
)

var ErrInvalidDateRange = errors.New("a data de início não pode ser posterior à data de fim")

// Service monta o feed de insights a partir das vendas persistidas
type Service struct {
	soldItemRepository repository.SoldItemRepository
	defaultRangeDays   int
	group              singleflight.Group
	now                func() time.Time
}

func NewService(cfg config.Insights, soldItemRepo repository.SoldItemRepository) *Service {
	rangeDays := cfg.DefaultRangeDays
	if rangeDays <= 0 {
		rangeDays = 30
	}

	return &Service{
		soldItemRepository: soldItemRepo,
		defaultRangeDays:   rangeDays,
		now:                time.Now,
	}
}

// GetInsights carrega as vendas do período e delega a agregação para AggregateInsights.
// Datas ausentes assumem os últimos N dias. Consultas idênticas simultâneas
// compartilham a mesma leitura do banco; o cancelamento de um chamador não
// derruba a leitura dos demais e cada um recebe a própria cópia da resposta.
func (s *Service) GetInsights(ctx context.Context, filters *domain.InsightFilters) (*domain.InsightsResponse, error) {
	start, end := s.resolveRange(filters)
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	key := start.Format(time.DateOnly) + "|" + end.Format(time.DateOnly)

	flightCtx := context.WithoutCancel(ctx)
	result, err, shared := s.group.Do(key, func() (interface{}, error) {
		items, err := s.soldItemRepository.ListBySoldDateRange(flightCtx, start, end)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar vendas do período: %w", err)
		}

		series, summary := AggregateInsights(items, start, end)

		return &domain.InsightsResponse{
			Data:      series,
			Summary:   summary,
			StartDate: start.Format(time.DateOnly),
			EndDate:   end.Format(time.DateOnly),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.Format(time.DateOnly),
		"shared":     shared,
	}).Debug("insights: feed gerado")

	resp := *result.(*domain.InsightsResponse)
	resp.Data = slices.Clone(resp.Data)

	return &resp, nil
}

func (s *Service) resolveRange(filters *domain.InsightFilters) (time.Time, time.Time) {
	end := utils.DateOnly(s.now())
	if filters != nil && filters.EndDate != nil && !filters.EndDate.IsZero() {
		end = utils.DateOnly(*filters.EndDate)
	}

	start := end.AddDate(0, 0, -s.defaultRangeDays)
	if filters != nil && filters.StartDate != nil && !filters.StartDate.IsZero() {
		start = utils.DateOnly(*filters.StartDate)
	}

	return start, end
}
