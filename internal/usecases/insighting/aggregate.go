package insighting

import (
	"sort"
	"time"

	"github.com/vfg2006/resale-tracker-api/internal/domain"
	"github.com/vfg2006/resale-tracker-api/pkg/utils"
)

// AggregateInsights agrupa as vendas por dia dentro do intervalo [start, end]
// (inclusivo, comparando apenas a data) e calcula o resumo do período.
// Itens sem sold_date ficam de fora. Dias sem venda não aparecem na série.
func AggregateInsights(items []domain.SoldItem, start, end time.Time) ([]domain.InsightsDayBucket, domain.InsightsSummary) {
	from := utils.DateOnly(start)
	to := utils.DateOnly(end)

	buckets := make(map[time.Time]*domain.InsightsDayBucket)
	var summary domain.InsightsSummary
	var npmSum float64

	for _, item := range items {
		if item.SoldDate == nil {
			continue
		}

		day := utils.DateOnly(*item.SoldDate)
		if day.Before(from) || day.After(to) {
			continue
		}

		bucket, ok := buckets[day]
		if !ok {
			bucket = &domain.InsightsDayBucket{Date: day}
			buckets[day] = bucket
		}
		bucket.Gross += item.SoldForPrice
		bucket.Net += item.NetReturn

		summary.TotalGross += item.SoldForPrice
		summary.TotalNet += item.NetReturn
		summary.TotalCount++
		npmSum += item.NetProfitMargin
	}

	series := make([]domain.InsightsDayBucket, 0, len(buckets))
	for _, bucket := range buckets {
		series = append(series, *bucket)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	if summary.TotalCount == 0 {
		return series, domain.InsightsSummary{}
	}

	count := float64(summary.TotalCount)
	summary.AvgNPM = npmSum / count
	summary.AvgGross = summary.TotalGross / count
	summary.AvgNet = summary.TotalNet / count
	if summary.TotalGross > 0 {
		summary.TotalNPM = summary.TotalNet / summary.TotalGross * 100
	}

	return series, summary
}
