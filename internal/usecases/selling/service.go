package selling

import (
	"context"

	"github.com/vfg2006/resale-tracker-api/infrastructure/repository"
	"github.com/vfg2006/resale-tracker-api/internal/domain"
	"github.com/vfg2006/resale-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/resale-tracker-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type SellingService interface {
	ListSoldItems(ctx context.Context) ([]domain.SoldItem, error)
	EditSoldItem(ctx context.Context, orderID string, edit domain.FieldEdit) (*domain.SoldItem, error)
}

type Service struct {
	soldItemRepository repository.SoldItemRepository
}

func NewService(soldItemRepo repository.SoldItemRepository) SellingService {
	return &Service{
		soldItemRepository: soldItemRepo,
	}
}

func (s *Service) ListSoldItems(ctx context.Context) ([]domain.SoldItem, error) {
	items, err := s.soldItemRepository.List(ctx)
	if err != nil {
		return nil, NewSellingError(ErrFetchSoldItems, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return items, nil
}

// EditSoldItem aplica a edição, recalcula as métricas quando necessário e persiste.
// Se a escrita falhar, o item recalculado é devolvido junto com o erro: o valor
// em memória não é revertido e fica fora de sincronia com o banco até nova edição.
func (s *Service) EditSoldItem(ctx context.Context, orderID string, edit domain.FieldEdit) (*domain.SoldItem, error) {
	logger := log.ForContext(ctx)

	if orderID == "" {
		return nil, NewSellingError(ErrOrderIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	current, err := s.soldItemRepository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, NewSellingError(ErrFetchSoldItems, apiErrors.ErrDatabaseOperation, orderID, err.Error())
	}
	if current == nil {
		return nil, NewSellingError(ErrSoldItemNotFound, apiErrors.ErrResourceNotFound, orderID, "")
	}

	updated := domain.RecomputeOnEdit(*current, edit)

	if err := s.soldItemRepository.Update(ctx, &updated); err != nil {
		logger.WithFields(log.Fields{
			"order_id":          orderID,
			"field":             string(edit.Field()),
			"item_cost":         updated.ItemCost,
			"net_return":        updated.NetReturn,
			"roi":               updated.ROI,
			"net_profit_margin": updated.NetProfitMargin,
			"error":             err.Error(),
		}).Error("sold-items: failed to persist edited item")

		return &updated, NewSellingError(ErrPersistFailed, apiErrors.ErrDatabaseOperation, orderID, err.Error())
	}

	logger.WithFields(log.Fields{
		"order_id": orderID,
		"field":    string(edit.Field()),
	}).Info("sold-items: item updated")

	return &updated, nil
}
