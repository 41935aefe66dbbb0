package ebay

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	ebaydomain "github.com/vfg2006/resale-tracker-api/infrastructure/integrator/ebay/domain"
	"github.com/vfg2006/resale-tracker-api/infrastructure/integrator/ebay/ebayclient"
	"github.com/vfg2006/resale-tracker-api/internal/config"
	"github.com/vfg2006/resale-tracker-api/internal/domain"
	"github.com/vfg2006/resale-tracker-api/pkg/utils"
)

// Margem extra na consulta de transações: taxas e etiquetas podem ser lançadas
// antes ou depois do fim do anúncio
const transactionWindowPadding = 7 * 24 * time.Hour

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type EbayIntegrator interface {
	// GetSoldItems devolve as vendas do período já com taxas e reembolsos preenchidos.
	// Métricas derivadas não são calculadas aqui: dependem do custo gravado pelo usuário.
	GetSoldItems(ctx context.Context, lookbackDays int) ([]domain.SoldItem, error)
	GetInventoryItems(ctx context.Context) ([]domain.InventoryItem, error)
}

type Integrator struct {
	cfg    config.SoldItemsSync
	Client ebayclient.Client
	now    func() time.Time
}

func New(cfg config.SoldItemsSync, client ebayclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

func (s *Integrator) GetSoldItems(ctx context.Context, lookbackDays int) ([]domain.SoldItem, error) {
	var (
		sold         []ebaydomain.SoldTransaction
		transactions []ebaydomain.Transaction
	)

	now := s.now()
	filter := ebayclient.TransactionFilter{
		From: now.AddDate(0, 0, -lookbackDays).Add(-transactionWindowPadding),
		To:   now,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sold, err = s.Client.GetSoldList(gctx, lookbackDays, s.cfg.PageSize)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.Client.GetTransactions(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	feesByLineItem := BuildFeeIndex(transactions)

	items := make([]domain.SoldItem, 0, len(sold))
	unmatched := 0
	for _, tx := range sold {
		item := FactorySoldItem(tx)
		if fees, ok := feesByLineItem[tx.TransactionID]; ok {
			ApplyFees(&item, fees)
		} else {
			unmatched++
		}
		items = append(items, item)
	}

	logrus.WithFields(logrus.Fields{
		"sold_items":   len(items),
		"transactions": len(transactions),
		"without_fees": unmatched,
	}).Info("sync: vendas obtidas do eBay")

	return items, nil
}

func (s *Integrator) GetInventoryItems(ctx context.Context) ([]domain.InventoryItem, error) {
	active, err := s.Client.GetActiveList(ctx, s.cfg.PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]domain.InventoryItem, 0, len(active))
	for _, a := range active {
		items = append(items, FactoryInventoryItem(a))
	}

	return items, nil
}

// BuildFeeIndex agrupa as transações por pedido e indexa o resultado por
// cada line item do pedido
func BuildFeeIndex(transactions []ebaydomain.Transaction) map[string]*ebaydomain.OrderFees {
	byOrder := make(map[string]*ebaydomain.OrderFees)
	byLineItem := make(map[string]*ebaydomain.OrderFees)

	for _, txn := range transactions {
		fees, ok := byOrder[txn.OrderID]
		if !ok {
			fees = &ebaydomain.OrderFees{OrderID: txn.OrderID}
			byOrder[txn.OrderID] = fees
		}

		for _, line := range txn.OrderLineItems {
			if line.LineItemID != "" {
				byLineItem[line.LineItemID] = fees
			}
		}

		amount := utils.SanitizeAmount(txn.Amount.Value)

		switch txn.TransactionType {
		case ebaydomain.TransactionTypeSale:
			for _, line := range txn.OrderLineItems {
				for _, fee := range line.MarketplaceFees {
					value := utils.SanitizeAmount(fee.Amount.Value)
					switch fee.FeeType {
					case ebaydomain.FeeTypeFinalValue:
						fees.FinalFee += value
					case ebaydomain.FeeTypeFinalValueFixed:
						fees.FixedFinalFee += value
					case ebaydomain.FeeTypeInternational:
						fees.InternationalFee += value
					}
				}
			}
		case ebaydomain.TransactionTypeShippingLabel:
			fees.CostToShip += amount
		case ebaydomain.TransactionTypeRefund:
			fees.RefundOwed += amount
			for _, line := range txn.OrderLineItems {
				for _, fee := range line.MarketplaceFees {
					value := utils.SanitizeAmount(fee.Amount.Value)
					switch fee.FeeType {
					case ebaydomain.FeeTypeFinalValue:
						fees.RefundFinalFee += value
					case ebaydomain.FeeTypeFinalValueFixed:
						fees.RefundFixedFee += value
					}
				}
			}
		}
	}

	return byLineItem
}

func ApplyFees(item *domain.SoldItem, fees *ebaydomain.OrderFees) {
	item.FinalFee = fees.FinalFee
	item.FixedFinalFee = fees.FixedFinalFee
	item.InternationalFee = fees.InternationalFee
	item.CostToShip = fees.CostToShip
	item.RefundOwed = fees.RefundOwed
	item.RefundToSeller = fees.RefundToSeller()
}

func FactorySoldItem(tx ebaydomain.SoldTransaction) domain.SoldItem {
	listDate := parseTime(tx.Item.StartTime)
	soldDate := parseTime(tx.Item.EndTime)

	timeToSell := 0
	if listDate != nil && soldDate != nil {
		timeToSell = utils.WholeDaysBetween(*listDate, *soldDate)
	}

	photo := tx.Item.GalleryURL
	if photo == "" {
		photo = tx.Item.ViewItemURL
	}

	quantity := tx.Item.QuantitySold
	if quantity == 0 {
		quantity = tx.QuantityPurchased
	}

	return domain.SoldItem{
		OrderID:       tx.OrderLineItemID,
		TransactionID: tx.TransactionID,
		ItemID:        tx.Item.ItemID,
		ItemTitle:     tx.Item.Title,
		PhotoURL:      photo,
		ListDate:      listDate,
		SoldDate:      soldDate,
		TimeToSell:    timeToSell,
		SKU:           tx.Item.SKU,
		QuantitySold:  quantity,
		SoldForPrice:  utils.SanitizeAmount(tx.TransactionPrice.Value),
		ShippingPaid:  utils.SanitizeAmount(tx.Item.ShippingServiceCost.Value),
	}
}

func FactoryInventoryItem(a ebaydomain.ActiveItem) domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:            a.ItemID,
		ItemTitle:         a.Title,
		PhotoURL:          a.GalleryURL,
		ListPrice:         utils.SanitizeAmount(a.CurrentPrice.Value),
		ListDate:          parseTime(a.StartTime),
		QuantityAvailable: a.QuantityAvailable,
		SKU:               a.SKU,
	}
}

func parseTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		logrus.WithField("value", value).Debug("sync: data inválida retornada pelo eBay")
		return nil
	}

	t = t.UTC()
	return &t
}
