package domain

import "time"

// SoldItem representa uma venda concluída no marketplace.
// NetReturn, ROI e NetProfitMargin são derivados e só mudam via Recompute ou RecomputeOnEdit.
type SoldItem struct {
	OrderID          string     `json:"order_id"`
	TransactionID    string     `json:"transaction_id"`
	ItemID           string     `json:"item_id"`
	ItemTitle        string     `json:"item_title"`
	PhotoURL         string     `json:"photo_url"`
	ListDate         *time.Time `json:"list_date"`
	SoldDate         *time.Time `json:"sold_date"`
	TimeToSell       int        `json:"time_to_sell"`
	SKU              string     `json:"sku"`
	QuantitySold     int        `json:"quantity_sold"`
	SoldForPrice     float64    `json:"sold_for_price"`
	ShippingPaid     float64    `json:"shipping_paid"`
	FinalFee         float64    `json:"final_fee"`
	FixedFinalFee    float64    `json:"fixed_final_fee"`
	InternationalFee float64    `json:"international_fee"`
	CostToShip       float64    `json:"cost_to_ship"`
	ItemCost         float64    `json:"item_cost"`
	PurchasedAt      string     `json:"purchased_at"`
	NetReturn        float64    `json:"net_return"`
	ROI              float64    `json:"roi"`
	NetProfitMargin  float64    `json:"net_profit_margin"`
	RefundOwed       float64    `json:"refund_owed"`
	RefundToSeller   float64    `json:"refund_to_seller"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// MetricInputs extrai os campos que alimentam o cálculo das métricas
func (s SoldItem) MetricInputs() MetricInputs {
	return MetricInputs{
		SoldForPrice:     s.SoldForPrice,
		ShippingPaid:     s.ShippingPaid,
		FinalFee:         s.FinalFee,
		FixedFinalFee:    s.FixedFinalFee,
		InternationalFee: s.InternationalFee,
		CostToShip:       s.CostToShip,
		ItemCost:         s.ItemCost,
	}
}

// ApplyMetrics grava as métricas derivadas no item
func (s *SoldItem) ApplyMetrics(m DerivedMetrics) {
	s.NetReturn = m.NetReturn
	s.ROI = m.ROI
	s.NetProfitMargin = m.NetProfitMargin
}

// Recompute recalcula as métricas derivadas a partir dos campos atuais
func (s *SoldItem) Recompute() {
	s.ApplyMetrics(CalculateMetrics(s.MetricInputs()))
}

// Metrics devolve as métricas derivadas atualmente gravadas no item
func (s SoldItem) Metrics() DerivedMetrics {
	return DerivedMetrics{
		NetReturn:       s.NetReturn,
		ROI:             s.ROI,
		NetProfitMargin: s.NetProfitMargin,
	}
}
