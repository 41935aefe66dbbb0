package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/resale-tracker-api/internal/domain"
)

func datePtr(year int, month time.Month, day, hour int) *time.Time {
	t := time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func soldItem(orderID string, soldDate *time.Time, soldFor, shipping, itemCost float64) domain.SoldItem {
	item := domain.SoldItem{
		OrderID:      orderID,
		SoldDate:     soldDate,
		SoldForPrice: soldFor,
		ShippingPaid: shipping,
		FinalFee:     soldFor * 0.06,
		ItemCost:     itemCost,
	}
	item.Recompute()
	return item
}

func TestAggregateInsights(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		items    []domain.SoldItem
		validate func(t *testing.T, series []domain.InsightsDayBucket, summary domain.InsightsSummary)
	}{
		{
			name: "duas vendas no mesmo dia formam um único bucket",
			items: []domain.SoldItem{
				{OrderID: "A", SoldDate: datePtr(2024, 5, 1, 9), SoldForPrice: 50, ShippingPaid: 5, NetReturn: 37.7, NetProfitMargin: 37.7 / 55 * 100},
				{OrderID: "B", SoldDate: datePtr(2024, 5, 1, 18), SoldForPrice: 30, NetReturn: 20, NetProfitMargin: 20.0 / 30 * 100},
			},
			validate: func(t *testing.T, series []domain.InsightsDayBucket, summary domain.InsightsSummary) {
				require.Len(t, series, 1)
				assert.Equal(t, "2024-05-01", series[0].Date.Format(time.DateOnly))
				assert.InDelta(t, 80, series[0].Gross, 1e-9)
				assert.InDelta(t, 57.7, series[0].Net, 1e-9)

				assert.Equal(t, 2, summary.TotalCount)
				assert.InDelta(t, 80, summary.TotalGross, 1e-9)
				assert.InDelta(t, 57.7, summary.TotalNet, 1e-9)
				assert.InDelta(t, (37.7/55*100+20.0/30*100)/2, summary.AvgNPM, 1e-9)
				assert.InDelta(t, 57.7/80*100, summary.TotalNPM, 1e-9)
				assert.InDelta(t, 40, summary.AvgGross, 1e-9)
				assert.InDelta(t, 28.85, summary.AvgNet, 1e-9)
			},
		},
		{
			name: "série esparsa e ordenada, limites inclusivos",
			items: []domain.SoldItem{
				soldItem("C", datePtr(2024, 5, 3, 23), 20, 0, 5),
				soldItem("A", datePtr(2024, 5, 1, 0), 10, 0, 2),
				soldItem("OUT-1", datePtr(2024, 4, 30, 23), 99, 0, 1),
				soldItem("OUT-2", datePtr(2024, 5, 4, 0), 99, 0, 1),
				soldItem("NO-DATE", nil, 99, 0, 1),
			},
			validate: func(t *testing.T, series []domain.InsightsDayBucket, summary domain.InsightsSummary) {
				require.Len(t, series, 2)
				assert.Equal(t, "2024-05-01", series[0].Date.Format(time.DateOnly))
				assert.Equal(t, "2024-05-03", series[1].Date.Format(time.DateOnly))
				assert.Equal(t, 2, summary.TotalCount)
				assert.InDelta(t, 30, summary.TotalGross, 1e-9)
			},
		},
		{
			name:  "sem vendas no período retorna resumo zerado",
			items: []domain.SoldItem{soldItem("OUT", datePtr(2024, 6, 1, 0), 10, 0, 1)},
			validate: func(t *testing.T, series []domain.InsightsDayBucket, summary domain.InsightsSummary) {
				assert.Empty(t, series)
				assert.NotNil(t, series)
				assert.Equal(t, domain.InsightsSummary{}, summary)
			},
		},
		{
			name: "média das margens difere da margem agregada",
			items: []domain.SoldItem{
				{OrderID: "BIG", SoldDate: datePtr(2024, 5, 2, 0), SoldForPrice: 1000, NetReturn: 100, NetProfitMargin: 10},
				{OrderID: "SMALL", SoldDate: datePtr(2024, 5, 2, 0), SoldForPrice: 10, NetReturn: 9, NetProfitMargin: 90},
			},
			validate: func(t *testing.T, series []domain.InsightsDayBucket, summary domain.InsightsSummary) {
				assert.InDelta(t, 50, summary.AvgNPM, 1e-9)
				assert.InDelta(t, 109.0/1010*100, summary.TotalNPM, 1e-9)
				assert.NotEqual(t, summary.AvgNPM, summary.TotalNPM)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, summary := AggregateInsights(tt.items, start, end)
			tt.validate(t, series, summary)
		})
	}
}

func TestAggregateInsights_Completude(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	var items []domain.SoldItem
	var wantGross float64
	for day := 1; day <= 40; day += 3 {
		sold := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, day-1)
		item := soldItem("O", &sold, float64(day), 1, 2)
		items = append(items, item)
		if !sold.After(end.Add(24 * time.Hour)) {
			wantGross += item.SoldForPrice
		}
	}

	series, summary := AggregateInsights(items, start, end)

	var gross float64
	var count int
	for i, bucket := range series {
		gross += bucket.Gross
		if i > 0 {
			assert.True(t, series[i-1].Date.Before(bucket.Date))
		}
		count++
	}
	assert.InDelta(t, wantGross, gross, 1e-9)
	assert.InDelta(t, summary.TotalGross, gross, 1e-9)
	assert.Equal(t, count, summary.TotalCount)
}

func TestAggregateInsights_DataComFuso(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 2024-05-01 22:00 -03:00 é 2024-05-02 em UTC
	sold := time.Date(2024, 5, 1, 22, 0, 0, 0, loc)
	items := []domain.SoldItem{{OrderID: "A", SoldDate: &sold, SoldForPrice: 10}}

	series, _ := AggregateInsights(items, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))

	require.Len(t, series, 1)
	assert.Equal(t, "2024-05-02", series[0].Date.Format(time.DateOnly))
}
