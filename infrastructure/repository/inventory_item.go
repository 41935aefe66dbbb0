package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/resale-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/resale-tracker-api/internal/domain"
)

const (
	inventoryItemsTable = "inventory_items"
)

var inventoryItemColumns = []string{
	"item_id", "item_title", "photo_url", "list_price", "list_date",
	"quantity_available", "storage_location", "item_cost", "purchased_at", "sku",
	"created_at", "updated_at",
}

//go:generate mockgen -source=inventory_item.go -destination=mocks/inventory_item.go -package=mocks

type InventoryItemRepository interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
	GetByItemID(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	Upsert(ctx context.Context, items []domain.InventoryItem) error
}

type inventoryItemRepository struct {
	conn *postgres.Connection
}

func NewInventoryItemRepository(conn *postgres.Connection) InventoryItemRepository {
	return &inventoryItemRepository{
		conn: conn,
	}
}

func (r *inventoryItemRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	query, args, err := squirrel.
		Select(inventoryItemColumns...).
		From(inventoryItemsTable).
		OrderBy("list_date DESC NULLS LAST").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear estoque: %w", err)
		}
		items = append(items, *item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *inventoryItemRepository) GetByItemID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query, args, err := squirrel.
		Select(inventoryItemColumns...).
		From(inventoryItemsTable).
		Where(squirrel.Eq{"item_id": itemID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	item, err := scanInventoryItem(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear item de estoque: %w", err)
	}

	return item, nil
}

func (r *inventoryItemRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	query, args, err := squirrel.
		Update(inventoryItemsTable).
		Set("storage_location", item.StorageLocation).
		Set("item_cost", item.ItemCost).
		Set("purchased_at", item.PurchasedAt).
		Set("sku", item.SKU).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"item_id": item.ItemID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("item %s não encontrado: %w", item.ItemID, sql.ErrNoRows)
	}

	return nil
}

// Upsert atualiza os dados do anúncio mantendo os campos do usuário.
// O SKU do marketplace só preenche um SKU vazio.
func (r *inventoryItemRepository) Upsert(ctx context.Context, items []domain.InventoryItem) error {
	if len(items) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, item := range items {
			query, args, err := squirrel.StatementBuilder.
				Insert(inventoryItemsTable).
				Columns("item_id", "item_title", "photo_url", "list_price", "list_date", "quantity_available", "sku").
				Values(item.ItemID, item.ItemTitle, item.PhotoURL, item.ListPrice, item.ListDate, item.QuantityAvailable, item.SKU).
				Suffix(`
					ON CONFLICT (item_id) DO UPDATE SET
						item_title = EXCLUDED.item_title,
						photo_url = EXCLUDED.photo_url,
						list_price = EXCLUDED.list_price,
						list_date = EXCLUDED.list_date,
						quantity_available = EXCLUDED.quantity_available,
						sku = COALESCE(NULLIF(inventory_items.sku, ''), EXCLUDED.sku),
						updated_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return wrapExecError(err)
			}
		}

		return nil
	})
}

func scanInventoryItem(row rowScanner) (*domain.InventoryItem, error) {
	var (
		item                              domain.InventoryItem
		title, photo, location, purchased sql.NullString
		sku                               sql.NullString
		listPrice, itemCost               sql.NullFloat64
		listDate                          sql.NullTime
		quantity                          sql.NullInt64
	)

	err := row.Scan(
		&item.ItemID, &title, &photo, &listPrice, &listDate,
		&quantity, &location, &itemCost, &purchased, &sku,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.ItemTitle = title.String
	item.PhotoURL = photo.String
	item.ListPrice = listPrice.Float64
	item.ListDate = nullTimePtr(listDate)
	item.QuantityAvailable = int(quantity.Int64)
	item.StorageLocation = location.String
	item.ItemCost = itemCost.Float64
	item.PurchasedAt = purchased.String
	item.SKU = sku.String

	return &item, nil
}
