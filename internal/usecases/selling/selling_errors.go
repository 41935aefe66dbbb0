package selling

import (
	"errors"
	"fmt"
)

var (
	ErrOrderIDRequired  = errors.New("order ID is required")
	ErrSoldItemNotFound = errors.New("sold item not found")
	ErrFetchSoldItems   = errors.New("error fetching sold items from database")
	ErrPersistFailed    = errors.New("error persisting sold item")
)

// SellingError carrega o código da API e a venda envolvida
type SellingError struct {
	Err     error
	Code    string
	OrderID string
	Details string
}

func (e *SellingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SellingError) Unwrap() error {
	return e.Err
}

func NewSellingError(err error, code string, orderID string, details string) *SellingError {
	return &SellingError{
		Err:     err,
		Code:    code,
		OrderID: orderID,
		Details: details,
	}
}
