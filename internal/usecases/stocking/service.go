package stocking

import (
	"context"

	"github.com/vfg2006/resale-tracker-api/infrastructure/repository"
	"github.com/vfg2006/resale-tracker-api/internal/domain"
	"github.com/vfg2006/resale-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/resale-tracker-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type StockingService interface {
	ListInventoryItems(ctx context.Context) ([]domain.InventoryItem, error)
	EditInventoryItem(ctx context.Context, itemID string, edit domain.FieldEdit) (*domain.InventoryItem, error)
}

type Service struct {
	inventoryItemRepository repository.InventoryItemRepository
}

func NewService(inventoryItemRepo repository.InventoryItemRepository) StockingService {
	return &Service{
		inventoryItemRepository: inventoryItemRepo,
	}
}

func (s *Service) ListInventoryItems(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.inventoryItemRepository.List(ctx)
	if err != nil {
		return nil, NewStockingError(ErrFetchInventory, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return items, nil
}

func (s *Service) EditInventoryItem(ctx context.Context, itemID string, edit domain.FieldEdit) (*domain.InventoryItem, error) {
	logger := log.ForContext(ctx)

	if itemID == "" {
		return nil, NewStockingError(ErrItemIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	current, err := s.inventoryItemRepository.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, NewStockingError(ErrFetchInventory, apiErrors.ErrDatabaseOperation, itemID, err.Error())
	}
	if current == nil {
		return nil, NewStockingError(ErrInventoryItemNotFound, apiErrors.ErrResourceNotFound, itemID, "")
	}

	updated := domain.ApplyInventoryEdit(*current, edit)

	if err := s.inventoryItemRepository.Update(ctx, &updated); err != nil {
		logger.WithFields(log.Fields{
			"item_id": itemID,
			"field":   string(edit.Field()),
			"error":   err.Error(),
		}).Error("inventory: failed to persist edited item")

		return &updated, NewStockingError(ErrPersistFailed, apiErrors.ErrDatabaseOperation, itemID, err.Error())
	}

	logger.WithFields(log.Fields{
		"item_id": itemID,
		"field":   string(edit.Field()),
	}).Info("inventory: item updated")

	return &updated, nil
}
