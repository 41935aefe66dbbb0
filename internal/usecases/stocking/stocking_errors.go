package stocking

import (
	"errors"
	"fmt"
)

var (
	ErrItemIDRequired        = errors.New("item ID is required")
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrFetchInventory        = errors.New("error fetching inventory from database")
	ErrPersistFailed         = errors.New("error persisting inventory item")
)

type StockingError struct {
	Err     error
	Code    string
	ItemID  string
	Details string
}

func (e *StockingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *StockingError) Unwrap() error {
	return e.Err
}

func NewStockingError(err error, code string, itemID string, details string) *StockingError {
	return &StockingError{
		Err:     err,
		Code:    code,
		ItemID:  itemID,
		Details: details,
	}
}
