package ebaydomain

// Tipos de transação da Finances API usados no cálculo das taxas
const (
	TransactionTypeSale          = "SALE"
	TransactionTypeShippingLabel = "SHIPPING_LABEL"
	TransactionTypeRefund        = "REFUND"
)

// Tipos de taxa cobrados pelo marketplace em cada item do pedido
const (
	FeeTypeFinalValue      = "FINAL_VALUE_FEE"
	FeeTypeFinalValueFixed = "FINAL_VALUE_FEE_FIXED_PER_ORDER"
	FeeTypeInternational   = "INTERNATIONAL_FEE"
)

type TransactionsResponse struct {
	Href         string        `json:"href"`
	Next         string        `json:"next"`
	Limit        int           `json:"limit"`
	Offset       int           `json:"offset"`
	Total        int           `json:"total"`
	Transactions []Transaction `json:"transactions"`
}

type Transaction struct {
	TransactionID   string          `json:"transactionId"`
	OrderID         string          `json:"orderId"`
	TransactionType string          `json:"transactionType"`
	TransactionDate string          `json:"transactionDate"`
	Amount          Amount          `json:"amount"`
	OrderLineItems  []OrderLineItem `json:"orderLineItems"`
}

type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type OrderLineItem struct {
	LineItemID      string           `json:"lineItemId"`
	MarketplaceFees []MarketplaceFee `json:"marketplaceFees"`
}

type MarketplaceFee struct {
	FeeType string `json:"feeType"`
	Amount  Amount `json:"amount"`
}

// OrderFees consolida as taxas e reembolsos de um pedido inteiro
type OrderFees struct {
	OrderID          string
	FinalFee         float64
	FixedFinalFee    float64
	InternationalFee float64
	CostToShip       float64
	RefundOwed       float64
	RefundFinalFee   float64
	RefundFixedFee   float64
}

// RefundToSeller é a parte das taxas devolvida ao vendedor num reembolso
func (f OrderFees) RefundToSeller() float64 {
	return f.RefundFinalFee + f.RefundFixedFee
}
