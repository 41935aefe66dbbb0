package domain

import (
	"math"

	"github.com/vfg2006/resale-tracker-api/pkg/utils"
)

// MetricInputs são os campos monetários de uma venda usados no cálculo
type MetricInputs struct {
	SoldForPrice     float64
	ShippingPaid     float64
	FinalFee         float64
	FixedFinalFee    float64
	InternationalFee float64
	CostToShip       float64
	ItemCost         float64
}

// DerivedMetrics são os valores calculados em precisão total (os que são persistidos)
type DerivedMetrics struct {
	NetReturn       float64 `json:"net_return"`
	ROI             float64 `json:"roi"`
	NetProfitMargin float64 `json:"net_profit_margin"`
}

// MetricsDisplay é a versão arredondada para exibição. Nunca deve voltar para o cálculo.
type MetricsDisplay struct {
	NetReturn       string `json:"net_return"`
	ROI             string `json:"roi"`
	NetProfitMargin string `json:"net_profit_margin"`
}

// CalculateMetrics calcula retorno líquido, ROI e margem de lucro líquida.
//
//	net_return        = sold_for_price + shipping_paid - (fees + cost_to_ship + item_cost)
//	roi               = net_return / item_cost * 100, ou 0 se item_cost <= 0
//	net_profit_margin = net_return / (sold_for_price + shipping_paid) * 100, ou 0 se proceeds <= 0
func CalculateMetrics(in MetricInputs) DerivedMetrics {
	soldFor := finiteOrZero(in.SoldForPrice)
	shippingPaid := finiteOrZero(in.ShippingPaid)
	itemCost := finiteOrZero(in.ItemCost)

	proceeds := soldFor + shippingPaid
	netReturn := proceeds - (finiteOrZero(in.FinalFee) +
		finiteOrZero(in.FixedFinalFee) +
		finiteOrZero(in.InternationalFee) +
		finiteOrZero(in.CostToShip) +
		itemCost)

	roi := 0.0
	if itemCost > 0 {
		roi = (netReturn / itemCost) * 100
	}

	netProfitMargin := 0.0
	if proceeds > 0 {
		netProfitMargin = (netReturn / proceeds) * 100
	}

	return DerivedMetrics{
		NetReturn:       netReturn,
		ROI:             roi,
		NetProfitMargin: netProfitMargin,
	}
}

// Display arredonda as métricas: moeda com duas casas, percentuais inteiros
func (m DerivedMetrics) Display() MetricsDisplay {
	return MetricsDisplay{
		NetReturn:       utils.FormatCurrency(m.NetReturn),
		ROI:             utils.FormatPercent(m.ROI),
		NetProfitMargin: utils.FormatPercent(m.NetProfitMargin),
	}
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
