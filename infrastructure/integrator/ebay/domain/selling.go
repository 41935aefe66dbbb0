package ebaydomain

import "encoding/xml"

type GetMyeBaySellingRequest struct {
	XMLName    xml.Name     `xml:"urn:ebay:apis:eBLBaseComponents GetMyeBaySellingRequest"`
	ActiveList *ListRequest `xml:"ActiveList,omitempty"`
	SoldList   *ListRequest `xml:"SoldList,omitempty"`
}

type ListRequest struct {
	Include        bool       `xml:"Include"`
	DurationInDays int        `xml:"DurationInDays,omitempty"`
	Pagination     Pagination `xml:"Pagination"`
}

type Pagination struct {
	EntriesPerPage int `xml:"EntriesPerPage"`
	PageNumber     int `xml:"PageNumber"`
}

type GetMyeBaySellingResponse struct {
	XMLName    xml.Name            `xml:"GetMyeBaySellingResponse"`
	Ack        string              `xml:"Ack"`
	Errors     []TradingError      `xml:"Errors"`
	ActiveList *ActiveListResponse `xml:"ActiveList"`
	SoldList   *SoldListResponse   `xml:"SoldList"`
}

type TradingError struct {
	ShortMessage string `xml:"ShortMessage"`
	LongMessage  string `xml:"LongMessage"`
	ErrorCode    string `xml:"ErrorCode"`
	SeverityCode string `xml:"SeverityCode"`
}

type PaginationResult struct {
	TotalNumberOfPages   int `xml:"TotalNumberOfPages"`
	TotalNumberOfEntries int `xml:"TotalNumberOfEntries"`
}

type ActiveListResponse struct {
	Items            []ActiveItem     `xml:"ItemArray>Item"`
	PaginationResult PaginationResult `xml:"PaginationResult"`
}

type SoldListResponse struct {
	OrderTransactions []OrderTransaction `xml:"OrderTransactionArray>OrderTransaction"`
	PaginationResult  PaginationResult   `xml:"PaginationResult"`
}

// OrderTransaction traz uma venda avulsa ou um pedido com várias vendas
type OrderTransaction struct {
	Transaction *SoldTransaction `xml:"Transaction"`
	Order       *Order           `xml:"Order"`
}

type Order struct {
	OrderID      string            `xml:"OrderID"`
	Transactions []SoldTransaction `xml:"TransactionArray>Transaction"`
}

type SoldTransaction struct {
	OrderLineItemID   string      `xml:"OrderLineItemID"`
	TransactionID     string      `xml:"TransactionID"`
	TransactionPrice  AmountType  `xml:"TransactionPrice"`
	QuantityPurchased int         `xml:"QuantityPurchased"`
	Item              ListingItem `xml:"Item"`
}

type ListingItem struct {
	ItemID              string     `xml:"ItemID"`
	Title               string     `xml:"Title"`
	SKU                 string     `xml:"SKU"`
	StartTime           string     `xml:"ListingDetails>StartTime"`
	EndTime             string     `xml:"ListingDetails>EndTime"`
	ViewItemURL         string     `xml:"ListingDetails>ViewItemURL"`
	GalleryURL          string     `xml:"PictureDetails>GalleryURL"`
	QuantitySold        int        `xml:"SellingStatus>QuantitySold"`
	ShippingServiceCost AmountType `xml:"ShippingDetails>ShippingServiceOptions>ShippingServiceCost"`
}

type ActiveItem struct {
	ItemID            string     `xml:"ItemID"`
	Title             string     `xml:"Title"`
	SKU               string     `xml:"SKU"`
	StartTime         string     `xml:"ListingDetails>StartTime"`
	GalleryURL        string     `xml:"PictureDetails>GalleryURL"`
	CurrentPrice      AmountType `xml:"SellingStatus>CurrentPrice"`
	QuantityAvailable int        `xml:"QuantityAvailable"`
}

type AmountType struct {
	Value      string `xml:",chardata"`
	CurrencyID string `xml:"currencyID,attr"`
}
