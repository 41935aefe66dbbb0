package stocking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/resale-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/resale-tracker-api/internal/domain"
)

func TestService_EditInventoryItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInventoryRepo := mocks.NewMockInventoryItemRepository(ctrl)
	service := NewService(mockInventoryRepo)

	stored := func() *domain.InventoryItem {
		return &domain.InventoryItem{ItemID: "1234", ItemTitle: "Tênis", ListPrice: 80, SKU: "TN-01"}
	}

	t.Run("custo é sanitizado antes de persistir", func(t *testing.T) {
		mockInventoryRepo.EXPECT().GetByItemID(gomock.Any(), "1234").Return(stored(), nil)
		mockInventoryRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *domain.InventoryItem) error {
				assert.Equal(t, 12.5, item.ItemCost)
				return nil
			})

		item, err := service.EditInventoryItem(context.Background(), "1234", domain.ItemCostEdit{Value: "$12.50"})
		require.NoError(t, err)
		assert.Equal(t, 80.0, item.ListPrice)
	})

	t.Run("local de armazenamento", func(t *testing.T) {
		mockInventoryRepo.EXPECT().GetByItemID(gomock.Any(), "1234").Return(stored(), nil)
		mockInventoryRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		item, err := service.EditInventoryItem(context.Background(), "1234",
			domain.OtherFieldEdit{Name: domain.FieldStorageLocation, Value: " Prateleira B "})
		require.NoError(t, err)
		assert.Equal(t, "Prateleira B", item.StorageLocation)
	})

	t.Run("item inexistente", func(t *testing.T) {
		mockInventoryRepo.EXPECT().GetByItemID(gomock.Any(), "999").Return(nil, nil)

		item, err := service.EditInventoryItem(context.Background(), "999", domain.ItemCostEdit{Value: "1"})
		assert.ErrorIs(t, err, ErrInventoryItemNotFound)
		assert.Nil(t, item)
	})

	t.Run("falha na escrita mantém o valor editado", func(t *testing.T) {
		mockInventoryRepo.EXPECT().GetByItemID(gomock.Any(), "1234").Return(stored(), nil)
		mockInventoryRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))

		item, err := service.EditInventoryItem(context.Background(), "1234",
			domain.OtherFieldEdit{Name: domain.FieldSKU, Value: "TN-02"})
		assert.ErrorIs(t, err, ErrPersistFailed)
		require.NotNil(t, item)
		assert.Equal(t, "TN-02", item.SKU)
	})
}
