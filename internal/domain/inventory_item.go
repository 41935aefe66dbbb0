package domain

import "time"

// InventoryItem é um anúncio ativo ainda não vendido. Não possui métricas derivadas.
type InventoryItem struct {
	ItemID            string     `json:"item_id"`
	ItemTitle         string     `json:"item_title"`
	PhotoURL          string     `json:"photo_url"`
	ListPrice         float64    `json:"list_price"`
	ListDate          *time.Time `json:"list_date"`
	QuantityAvailable int        `json:"quantity_available"`
	StorageLocation   string     `json:"storage_location"`
	ItemCost          float64    `json:"item_cost"`
	PurchasedAt       string     `json:"purchased_at"`
	SKU               string     `json:"sku"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
