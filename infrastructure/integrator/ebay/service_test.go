package ebay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	ebaydomain "github.com/vfg2006/resale-tracker-api/infrastructure/integrator/ebay/domain"
	"github.com/vfg2006/resale-tracker-api/infrastructure/integrator/ebay/ebayclient"
	"github.com/vfg2006/resale-tracker-api/infrastructure/integrator/ebay/mocks"
	"github.com/vfg2006/resale-tracker-api/internal/config"
)

func fee(feeType, value string) ebaydomain.MarketplaceFee {
	return ebaydomain.MarketplaceFee{FeeType: feeType, Amount: ebaydomain.Amount{Value: value}}
}

func TestBuildFeeIndex(t *testing.T) {
	transactions := []ebaydomain.Transaction{
		{
			OrderID:         "O1",
			TransactionType: ebaydomain.TransactionTypeShippingLabel,
			Amount:          ebaydomain.Amount{Value: "4.10"},
		},
		{
			OrderID:         "O1",
			TransactionType: ebaydomain.TransactionTypeSale,
			Amount:          ebaydomain.Amount{Value: "55.00"},
			OrderLineItems: []ebaydomain.OrderLineItem{{
				LineItemID: "L1",
				MarketplaceFees: []ebaydomain.MarketplaceFee{
					fee(ebaydomain.FeeTypeFinalValue, "3.00"),
					fee(ebaydomain.FeeTypeFinalValueFixed, "0.30"),
					fee(ebaydomain.FeeTypeInternational, "0.75"),
					fee("AD_FEE", "9.99"),
				},
			}},
		},
		{
			OrderID:         "O1",
			TransactionType: ebaydomain.TransactionTypeRefund,
			Amount:          ebaydomain.Amount{Value: "20.00"},
			OrderLineItems: []ebaydomain.OrderLineItem{{
				LineItemID: "L1",
				MarketplaceFees: []ebaydomain.MarketplaceFee{
					fee(ebaydomain.FeeTypeFinalValue, "1.20"),
					fee(ebaydomain.FeeTypeFinalValueFixed, "0.30"),
				},
			}},
		},
		{
			OrderID:         "O2",
			TransactionType: ebaydomain.TransactionTypeSale,
			OrderLineItems: []ebaydomain.OrderLineItem{{
				LineItemID:      "L2",
				MarketplaceFees: []ebaydomain.MarketplaceFee{fee(ebaydomain.FeeTypeFinalValue, "n/a")},
			}},
		},
	}

	index := BuildFeeIndex(transactions)

	require.Contains(t, index, "L1")
	l1 := index["L1"]
	assert.InDelta(t, 3.0, l1.FinalFee, 1e-9)
	assert.InDelta(t, 0.3, l1.FixedFinalFee, 1e-9)
	assert.InDelta(t, 0.75, l1.InternationalFee, 1e-9)
	assert.InDelta(t, 4.1, l1.CostToShip, 1e-9)
	assert.InDelta(t, 20.0, l1.RefundOwed, 1e-9)
	assert.InDelta(t, 1.5, l1.RefundToSeller(), 1e-9)

	require.Contains(t, index, "L2")
	assert.Equal(t, 0.0, index["L2"].FinalFee)
}

func TestFactorySoldItem(t *testing.T) {
	tx := ebaydomain.SoldTransaction{
		OrderLineItemID:  "111-222",
		TransactionID:    "222",
		TransactionPrice: ebaydomain.AmountType{Value: "50.0", CurrencyID: "USD"},
		Item: ebaydomain.ListingItem{
			ItemID:              "111",
			Title:               "Camisa de flanela",
			StartTime:           "2024-04-20T10:00:00.000Z",
			EndTime:             "2024-05-01T09:00:00.000Z",
			ViewItemURL:         "https://www.ebay.com/itm/111",
			QuantitySold:        1,
			ShippingServiceCost: ebaydomain.AmountType{Value: "5.0"},
		},
	}

	item := FactorySoldItem(tx)

	assert.Equal(t, "111-222", item.OrderID)
	assert.Equal(t, "222", item.TransactionID)
	assert.Equal(t, 50.0, item.SoldForPrice)
	assert.Equal(t, 5.0, item.ShippingPaid)
	assert.Equal(t, 10, item.TimeToSell)
	assert.Equal(t, "https://www.ebay.com/itm/111", item.PhotoURL)
	require.NotNil(t, item.SoldDate)
	assert.Equal(t, "2024-05-01", item.SoldDate.Format(time.DateOnly))

	tx.Item.EndTime = "ontem"
	item = FactorySoldItem(tx)
	assert.Nil(t, item.SoldDate)
	assert.Equal(t, 0, item.TimeToSell)
}

func TestIntegrator_GetSoldItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(config.SoldItemsSync{PageSize: 100}, mockClient)
	now := time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)
	integrator.now = func() time.Time { return now }

	t.Run("taxas são associadas pelo line item", func(t *testing.T) {
		mockClient.EXPECT().
			GetSoldList(gomock.Any(), 30, 100).
			Return([]ebaydomain.SoldTransaction{
				{OrderLineItemID: "111-L1", TransactionID: "L1", TransactionPrice: ebaydomain.AmountType{Value: "50"}},
				{OrderLineItemID: "333-L3", TransactionID: "L3", TransactionPrice: ebaydomain.AmountType{Value: "12"}},
			}, nil)
		mockClient.EXPECT().
			GetTransactions(gomock.Any(), ebayclient.TransactionFilter{
				From: now.AddDate(0, 0, -30).Add(-7 * 24 * time.Hour),
				To:   now,
			}).
			Return([]ebaydomain.Transaction{{
				OrderID:         "O1",
				TransactionType: ebaydomain.TransactionTypeSale,
				OrderLineItems: []ebaydomain.OrderLineItem{{
					LineItemID:      "L1",
					MarketplaceFees: []ebaydomain.MarketplaceFee{fee(ebaydomain.FeeTypeFinalValue, "3")},
				}},
			}}, nil)

		items, err := integrator.GetSoldItems(context.Background(), 30)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, 3.0, items[0].FinalFee)
		assert.Equal(t, 0.0, items[1].FinalFee)
		assert.Equal(t, 0.0, items[0].NetReturn)
	})

	t.Run("erro em uma das chamadas cancela a sincronização", func(t *testing.T) {
		mockClient.EXPECT().GetSoldList(gomock.Any(), 30, 100).Return(nil, errors.New("trading indisponível"))
		mockClient.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := integrator.GetSoldItems(context.Background(), 30)
		assert.EqualError(t, err, "trading indisponível")
	})
}

func TestIntegrator_GetInventoryItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(config.SoldItemsSync{PageSize: 200}, mockClient)

	mockClient.EXPECT().GetActiveList(gomock.Any(), 200).Return([]ebaydomain.ActiveItem{{
		ItemID:            "999",
		Title:             "Bota de couro",
		StartTime:         "2024-03-01T08:00:00.000Z",
		GalleryURL:        "https://i.ebayimg.com/999.jpg",
		CurrentPrice:      ebaydomain.AmountType{Value: "89.90"},
		QuantityAvailable: 2,
	}}, nil)

	items, err := integrator.GetInventoryItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 89.9, items[0].ListPrice)
	assert.Equal(t, 2, items[0].QuantityAvailable)
	require.NotNil(t, items[0].ListDate)
}
