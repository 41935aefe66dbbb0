package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/resale-tracker-api/internal/domain"
	"github.com/vfg2006/resale-tracker-api/pkg/utils"
)

var legacyTimeLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
}

// ReadLegacySoldList converte a planilha de vendas exportada antigamente.
// Linhas sem Order ID são ignoradas e contadas em skipped.
func ReadLegacySoldList(r io.Reader) ([]domain.SoldItem, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao ler cabeçalho")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[normalizeHeader(name)] = i
	}
	if _, ok := index["order id"]; !ok {
		return nil, 0, fmt.Errorf("coluna Order ID ausente")
	}

	var (
		items   []domain.SoldItem
		skipped int
	)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, skipped, errors.Wrapf(err, "erro na linha %d", line)
		}

		get := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		orderID := get("order id")
		if orderID == "" {
			skipped++
			continue
		}

		item := domain.SoldItem{
			OrderID:          orderID,
			TransactionID:    get("transaction id"),
			ItemID:           get("item id"),
			ItemTitle:        firstNonEmpty(get("title"), get("item title")),
			PhotoURL:         get("photo url"),
			ListDate:         parseLegacyTime(get("list date")),
			SoldDate:         parseLegacyTime(get("sold date")),
			SKU:              get("sku"),
			PurchasedAt:      get("purchased at"),
			SoldForPrice:     utils.SanitizeAmount(get("sold for price")),
			ShippingPaid:     utils.SanitizeAmount(get("shipping paid")),
			FinalFee:         utils.SanitizeAmount(get("final fee")),
			FixedFinalFee:    utils.SanitizeAmount(get("fixed final fee")),
			InternationalFee: utils.SanitizeAmount(get("international fee")),
			CostToShip:       utils.SanitizeAmount(get("cost to ship")),
			ItemCost:         utils.SanitizeAmount(get("item cost")),
			RefundOwed:       utils.SanitizeAmount(get("refund owed")),
			RefundToSeller:   utils.SanitizeAmount(get("refund to seller")),
		}
		item.QuantitySold, _ = strconv.Atoi(get("quantity sold"))
		if item.ListDate != nil && item.SoldDate != nil {
			item.TimeToSell = utils.WholeDaysBetween(*item.ListDate, *item.SoldDate)
		}
		item.Recompute()

		items = append(items, item)
	}

	return items, skipped, nil
}

// normalizeHeader deixa "Time To Sell(days)" e "time to sell (days)" iguais
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
	if i := strings.Index(name, "("); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	return name
}

func parseLegacyTime(value string) *time.Time {
	if value == "" || value == "N/A" {
		return nil
	}
	for _, layout := range legacyTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			u := t.UTC()
			return &u
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
