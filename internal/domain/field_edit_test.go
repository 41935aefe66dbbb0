package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSoldItemEdit(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		want    FieldEdit
		wantErr error
	}{
		{name: "custo", field: "item_cost", want: ItemCostEdit{Value: "1"}},
		{name: "local de compra", field: "purchased_at", want: OtherFieldEdit{Name: FieldPurchasedAt, Value: "1"}},
		{name: "métrica derivada", field: "roi", wantErr: ErrDerivedFieldNotEditable},
		{name: "campo somente leitura", field: "sold_for_price", wantErr: ErrFieldNotEditable},
		{name: "campo de estoque", field: "storage_location", wantErr: ErrFieldNotEditable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSoldItemEdit(tt.field, "1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, EditableField(tt.field), got.Field())
		})
	}
}

func TestNewInventoryItemEdit(t *testing.T) {
	for _, field := range []string{"item_cost", "purchased_at", "storage_location", "sku"} {
		edit, err := NewInventoryItemEdit(field, "x")
		require.NoError(t, err, field)
		assert.Equal(t, EditableField(field), edit.Field())
	}

	_, err := NewInventoryItemEdit("list_price", "10")
	assert.ErrorIs(t, err, ErrFieldNotEditable)

	_, err = NewInventoryItemEdit("net_return", "10")
	assert.ErrorIs(t, err, ErrDerivedFieldNotEditable)
}

func TestRecomputeOnEdit(t *testing.T) {
	base := sampleSoldItem()
	base.Recompute()

	t.Run("custo zerado dispara o guarda do ROI", func(t *testing.T) {
		got := RecomputeOnEdit(base, ItemCostEdit{Value: "0"})

		assert.Equal(t, 0.0, got.ItemCost)
		assert.Equal(t, 0.0, got.ROI)
		assert.InDelta(t, 47.7, got.NetReturn, 1e-9)
		assert.InDelta(t, 47.7/55*100, got.NetProfitMargin, 1e-9)
		// original intacto
		assert.Equal(t, 10.0, base.ItemCost)
	})

	t.Run("custo com símbolos é sanitizado", func(t *testing.T) {
		got := RecomputeOnEdit(base, ItemCostEdit{Value: "$ 20.00"})

		assert.Equal(t, 20.0, got.ItemCost)
		assert.InDelta(t, 27.7, got.NetReturn, 1e-9)
		assert.InDelta(t, 138.5, got.ROI, 1e-9)
	})

	t.Run("custo ilegível vira zero", func(t *testing.T) {
		got := RecomputeOnEdit(base, ItemCostEdit{Value: "abc"})

		assert.Equal(t, 0.0, got.ItemCost)
		assert.Equal(t, 0.0, got.ROI)
	})

	t.Run("campo não financeiro não altera métricas", func(t *testing.T) {
		got := RecomputeOnEdit(base, OtherFieldEdit{Name: FieldPurchasedAt, Value: "  Goodwill  "})

		assert.Equal(t, "Goodwill", got.PurchasedAt)
		assert.Equal(t, base.Metrics(), got.Metrics())
		assert.Equal(t, base.ItemCost, got.ItemCost)
	})

	t.Run("edições repetidas não acumulam arredondamento", func(t *testing.T) {
		got := base
		for i := 0; i < 50; i++ {
			got = RecomputeOnEdit(got, ItemCostEdit{Value: "10"})
		}

		assert.Equal(t, base.Metrics(), got.Metrics())
	})
}

func TestApplyInventoryEdit(t *testing.T) {
	item := InventoryItem{ItemID: "1", ListPrice: 25, SKU: "A1"}

	got := ApplyInventoryEdit(item, ItemCostEdit{Value: "7,50"})
	assert.Equal(t, 750.0, got.ItemCost)

	got = ApplyInventoryEdit(item, OtherFieldEdit{Name: FieldStorageLocation, Value: "Caixa 3"})
	assert.Equal(t, "Caixa 3", got.StorageLocation)

	got = ApplyInventoryEdit(item, OtherFieldEdit{Name: FieldSKU, Value: "B2"})
	assert.Equal(t, "B2", got.SKU)
	assert.Equal(t, 25.0, got.ListPrice)
	assert.Equal(t, "A1", item.SKU)
}
