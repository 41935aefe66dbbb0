package domain

import (
	"encoding/json"
	"time"
)

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// InsightsDayBucket agrega as vendas de um único dia do calendário
type InsightsDayBucket struct {
	Date  time.Time
	Gross float64
	Net   float64
}

// MarshalJSON serializa a data como YYYY-MM-DD, formato esperado pelo gráfico
func (b InsightsDayBucket) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date  string  `json:"date"`
		Gross float64 `json:"gross"`
		Net   float64 `json:"net"`
	}{
		Date:  b.Date.Format(time.DateOnly),
		Gross: b.Gross,
		Net:   b.Net,
	})
}

// InsightsSummary resume o período consultado.
// AvgNPM é a média das margens por item; TotalNPM é a razão agregada
// total_net/total_gross*100. São estatísticas diferentes.
type InsightsSummary struct {
	TotalGross float64 `json:"total_gross"`
	TotalNet   float64 `json:"total_net"`
	TotalCount int     `json:"total_count"`
	AvgNPM     float64 `json:"avg_npm"`
	TotalNPM   float64 `json:"total_npm"`
	AvgGross   float64 `json:"avg_gross"`
	AvgNet     float64 `json:"avg_net"`
}

type InsightsResponse struct {
	Data      []InsightsDayBucket `json:"data"`
	Summary   InsightsSummary     `json:"summary"`
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
}
