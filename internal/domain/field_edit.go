package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/resale-tracker-api/pkg/utils"
)

// EditableField identifica um campo que o usuário pode editar na tabela
type EditableField string

const (
	FieldItemCost        EditableField = "item_cost"
	FieldPurchasedAt     EditableField = "purchased_at"
	FieldStorageLocation EditableField = "storage_location"
	FieldSKU             EditableField = "sku"
)

var (
	ErrFieldNotEditable        = errors.New("campo não editável")
	ErrDerivedFieldNotEditable = errors.New("métricas derivadas não podem ser editadas diretamente")
)

var derivedFields = map[string]bool{
	"net_return":        true,
	"roi":               true,
	"net_profit_margin": true,
}

// IsDerivedField informa se o nome é de uma métrica calculada
func IsDerivedField(name string) bool {
	return derivedFields[name]
}

// FieldEdit é a edição de um único campo. Os únicos formatos possíveis são
// ItemCostEdit e OtherFieldEdit; o método não exportado fecha o conjunto.
type FieldEdit interface {
	Field() EditableField
	isFieldEdit()
}

// ItemCostEdit altera o custo de aquisição e dispara o recálculo das métricas
type ItemCostEdit struct {
	Value string
}

func (ItemCostEdit) Field() EditableField { return FieldItemCost }
func (ItemCostEdit) isFieldEdit()         {}

// Amount é o custo já sanitizado
func (e ItemCostEdit) Amount() float64 {
	return utils.SanitizeAmount(e.Value)
}

// OtherFieldEdit altera um campo não financeiro; métricas ficam intactas
type OtherFieldEdit struct {
	Name  EditableField
	Value string
}

func (e OtherFieldEdit) Field() EditableField { return e.Name }
func (OtherFieldEdit) isFieldEdit()           {}

// NewSoldItemEdit valida o nome do campo recebido para uma venda
func NewSoldItemEdit(field, value string) (FieldEdit, error) {
	switch EditableField(field) {
	case FieldItemCost:
		return ItemCostEdit{Value: value}, nil
	case FieldPurchasedAt:
		return OtherFieldEdit{Name: FieldPurchasedAt, Value: value}, nil
	}

	return nil, rejectField(field)
}

// NewInventoryItemEdit valida o nome do campo recebido para um item de estoque
func NewInventoryItemEdit(field, value string) (FieldEdit, error) {
	switch EditableField(field) {
	case FieldItemCost:
		return ItemCostEdit{Value: value}, nil
	case FieldPurchasedAt, FieldStorageLocation, FieldSKU:
		return OtherFieldEdit{Name: EditableField(field), Value: value}, nil
	}

	return nil, rejectField(field)
}

func rejectField(field string) error {
	if derivedFields[field] {
		return fmt.Errorf("%w: %s", ErrDerivedFieldNotEditable, field)
	}
	return fmt.Errorf("%w: %s", ErrFieldNotEditable, field)
}

// RecomputeOnEdit aplica a edição numa cópia do item.
// Custo: sanitiza, grava e recalcula as três métricas com os demais campos inalterados.
// Outros campos: grava somente o campo, sem tocar nas métricas.
func RecomputeOnEdit(item SoldItem, edit FieldEdit) SoldItem {
	switch e := edit.(type) {
	case ItemCostEdit:
		item.ItemCost = e.Amount()
		item.Recompute()
	case OtherFieldEdit:
		if e.Name == FieldPurchasedAt {
			item.PurchasedAt = strings.TrimSpace(e.Value)
		}
	}

	return item
}

// ApplyInventoryEdit aplica a edição numa cópia do item de estoque
func ApplyInventoryEdit(item InventoryItem, edit FieldEdit) InventoryItem {
	switch e := edit.(type) {
	case ItemCostEdit:
		item.ItemCost = e.Amount()
	case OtherFieldEdit:
		value := strings.TrimSpace(e.Value)
		switch e.Name {
		case FieldPurchasedAt:
			item.PurchasedAt = value
		case FieldStorageLocation:
			item.StorageLocation = value
		case FieldSKU:
			item.SKU = value
		}
	}

	return item
}
