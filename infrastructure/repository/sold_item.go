package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vfg2006/resale-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/resale-tracker-api/internal/domain"
)

const (
	soldItemsTable = "sold_items"
)

var soldItemColumns = []string{
	"order_id", "transaction_id", "item_id", "item_title", "photo_url",
	"list_date", "sold_date", "time_to_sell", "sku", "quantity_sold",
	"sold_for_price", "shipping_paid", "final_fee", "fixed_final_fee",
	"international_fee", "cost_to_ship", "item_cost", "purchased_at",
	"net_return", "roi", "net_profit_margin", "refund_owed", "refund_to_seller",
	"created_at", "updated_at",
}

//go:generate mockgen -source=sold_item.go -destination=mocks/sold_item.go -package=mocks

type SoldItemRepository interface {
	List(ctx context.Context) ([]domain.SoldItem, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.SoldItem, error)
	ListBySoldDateRange(ctx context.Context, startDate, endDate time.Time) ([]domain.SoldItem, error)
	Update(ctx context.Context, item *domain.SoldItem) error
	Upsert(ctx context.Context, items []domain.SoldItem) error
	ItemCosts(ctx context.Context, orderIDs []string) (map[string]float64, error)
}

type soldItemRepository struct {
	conn *postgres.Connection
}

func NewSoldItemRepository(conn *postgres.Connection) SoldItemRepository {
	return &soldItemRepository{
		conn: conn,
	}
}

func (r *soldItemRepository) List(ctx context.Context) ([]domain.SoldItem, error) {
	query, args, err := squirrel.
		Select(soldItemColumns...).
		From(soldItemsTable).
		OrderBy("sold_date DESC NULLS LAST").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(ctx, query, args...)
}

func (r *soldItemRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.SoldItem, error) {
	query, args, err := squirrel.
		Select(soldItemColumns...).
		From(soldItemsTable).
		Where(squirrel.Eq{"order_id": orderID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	item, err := scanSoldItem(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	return item, nil
}

// ListBySoldDateRange retorna as vendas com sold_date em [startDate, endDate + 1 dia)
func (r *soldItemRepository) ListBySoldDateRange(ctx context.Context, startDate, endDate time.Time) ([]domain.SoldItem, error) {
	query, args, err := soldDateRangeQuery(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(ctx, query, args...)
}

// soldDateRangeQuery usa limites em UTC; strings de data seriam lidas no fuso da sessão
func soldDateRangeQuery(startDate, endDate time.Time) (string, []interface{}, error) {
	lower, upper := soldDateBounds(startDate, endDate)

	return squirrel.
		Select(soldItemColumns...).
		From(soldItemsTable).
		Where(squirrel.GtOrEq{"sold_date": lower}).
		Where(squirrel.Lt{"sold_date": upper}).
		OrderBy("sold_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func soldDateBounds(startDate, endDate time.Time) (time.Time, time.Time) {
	lower := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	upper := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return lower, upper
}

// Update grava item_cost e purchased_at e recalcula as métricas no banco a
// partir da linha gravada, devolvendo em item o estado final. Última escrita vence.
func (r *soldItemRepository) Update(ctx context.Context, item *domain.SoldItem) error {
	editQuery, editArgs, err := squirrel.
		Update(soldItemsTable).
		Set("item_cost", item.ItemCost).
		Set("purchased_at", item.PurchasedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"order_id": item.OrderID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	metricsQuery, metricsArgs, err := recomputeMetricsQuery(item.OrderID)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	var stored *domain.SoldItem
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, editQuery, editArgs...)
		if err != nil {
			return wrapExecError(err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}
		if rowsAffected == 0 {
			return fmt.Errorf("venda %s não encontrada: %w", item.OrderID, sql.ErrNoRows)
		}

		stored, err = scanSoldItem(tx.QueryRowContext(ctx, metricsQuery, metricsArgs...))
		if err != nil {
			return fmt.Errorf("erro ao recalcular métricas: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	*item = *stored
	return nil
}

func recomputeMetricsQuery(orderID string) (string, []interface{}, error) {
	metrics := metricsSQL("", "item_cost")

	return squirrel.
		Update(soldItemsTable).
		Set("net_return", squirrel.Expr(metrics.netReturn)).
		Set("roi", squirrel.Expr(metrics.roi)).
		Set("net_profit_margin", squirrel.Expr(metrics.netProfitMargin)).
		Where(squirrel.Eq{"order_id": orderID}).
		Suffix("RETURNING " + strings.Join(soldItemColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// Upsert insere ou atualiza as vendas vindas da sincronização.
// item_cost e purchased_at informados pelo usuário nunca são sobrescritos;
// no conflito as métricas são recalculadas com o item_cost já gravado.
func (r *soldItemRepository) Upsert(ctx context.Context, items []domain.SoldItem) error {
	if len(items) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, item := range items {
			query, args, err := soldItemUpsertQuery(item)
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

func soldItemUpsertQuery(item domain.SoldItem) (string, []interface{}, error) {
	metrics := metricsSQL("EXCLUDED.", soldItemsTable+".item_cost")

	return squirrel.StatementBuilder.
		Insert(soldItemsTable).
		Columns(
			"order_id", "transaction_id", "item_id", "item_title", "photo_url",
			"list_date", "sold_date", "time_to_sell", "sku", "quantity_sold",
			"sold_for_price", "shipping_paid", "final_fee", "fixed_final_fee",
			"international_fee", "cost_to_ship", "item_cost", "purchased_at",
			"net_return", "roi", "net_profit_margin", "refund_owed", "refund_to_seller",
		).
		Values(
			item.OrderID, item.TransactionID, item.ItemID, item.ItemTitle, item.PhotoURL,
			item.ListDate, item.SoldDate, item.TimeToSell, item.SKU, item.QuantitySold,
			item.SoldForPrice, item.ShippingPaid, item.FinalFee, item.FixedFinalFee,
			item.InternationalFee, item.CostToShip, item.ItemCost, item.PurchasedAt,
			item.NetReturn, item.ROI, item.NetProfitMargin, item.RefundOwed, item.RefundToSeller,
		).
		Suffix(`
			ON CONFLICT (order_id) DO UPDATE SET
				transaction_id = EXCLUDED.transaction_id,
				item_id = EXCLUDED.item_id,
				item_title = EXCLUDED.item_title,
				photo_url = EXCLUDED.photo_url,
				list_date = EXCLUDED.list_date,
				sold_date = EXCLUDED.sold_date,
				time_to_sell = EXCLUDED.time_to_sell,
				sku = EXCLUDED.sku,
				quantity_sold = EXCLUDED.quantity_sold,
				sold_for_price = EXCLUDED.sold_for_price,
				shipping_paid = EXCLUDED.shipping_paid,
				final_fee = EXCLUDED.final_fee,
				fixed_final_fee = EXCLUDED.fixed_final_fee,
				international_fee = EXCLUDED.international_fee,
				cost_to_ship = EXCLUDED.cost_to_ship,
				net_return = ` + metrics.netReturn + `,
				roi = ` + metrics.roi + `,
				net_profit_margin = ` + metrics.netProfitMargin + `,
				refund_owed = EXCLUDED.refund_owed,
				refund_to_seller = EXCLUDED.refund_to_seller,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

type metricsExprs struct {
	netReturn       string
	roi             string
	netProfitMargin string
}

// metricsSQL monta as fórmulas de domain.CalculateMetrics em SQL, na mesma
// ordem de operações. prefix qualifica os campos do marketplace e cost é a
// coluna de custo usada.
func metricsSQL(prefix, cost string) metricsExprs {
	num := func(col string) string {
		return "COALESCE(" + col + ", 0)"
	}

	itemCost := num(cost)
	proceeds := "(" + num(prefix+"sold_for_price") + " + " + num(prefix+"shipping_paid") + ")"
	netReturn := "(" + proceeds + " - (" +
		num(prefix+"final_fee") + " + " +
		num(prefix+"fixed_final_fee") + " + " +
		num(prefix+"international_fee") + " + " +
		num(prefix+"cost_to_ship") + " + " +
		itemCost + "))"

	return metricsExprs{
		netReturn:       netReturn,
		roi:             "CASE WHEN " + itemCost + " > 0 THEN (" + netReturn + " / " + itemCost + ") * 100 ELSE 0 END",
		netProfitMargin: "CASE WHEN " + proceeds + " > 0 THEN (" + netReturn + " / " + proceeds + ") * 100 ELSE 0 END",
	}
}

// ItemCosts retorna o custo já gravado de cada venda existente
func (r *soldItemRepository) ItemCosts(ctx context.Context, orderIDs []string) (map[string]float64, error) {
	costs := make(map[string]float64, len(orderIDs))
	if len(orderIDs) == 0 {
		return costs, nil
	}

	query, args, err := squirrel.
		Select("order_id", "item_cost").
		From(soldItemsTable).
		Where(squirrel.Eq{"order_id": orderIDs}).
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

	for rows.Next() {
		var orderID string
		var cost sql.NullFloat64
		if err := rows.Scan(&orderID, &cost); err != nil {
			return nil, fmt.Errorf("erro ao escanear custo: %w", err)
		}
		costs[orderID] = cost.Float64
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return costs, nil
}

func (r *soldItemRepository) query(ctx context.Context, query string, args ...interface{}) ([]domain.SoldItem, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.SoldItem, 0)
	for rows.Next() {
		item, err := scanSoldItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas: %w", err)
		}
		items = append(items, *item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSoldItem lê uma linha de sold_items; numéricos nulos viram zero
func scanSoldItem(row rowScanner) (*domain.SoldItem, error) {
	var (
		item                                        domain.SoldItem
		transactionID, itemID, title, photo, sku    sql.NullString
		purchasedAt                                 sql.NullString
		listDate, soldDate                          sql.NullTime
		timeToSell, quantitySold                    sql.NullInt64
		soldFor, shippingPaid, finalFee, fixedFee   sql.NullFloat64
		intlFee, costToShip, itemCost               sql.NullFloat64
		netReturn, roi, npm, refundOwed, refundBack sql.NullFloat64
	)

	err := row.Scan(
		&item.OrderID, &transactionID, &itemID, &title, &photo,
		&listDate, &soldDate, &timeToSell, &sku, &quantitySold,
		&soldFor, &shippingPaid, &finalFee, &fixedFee,
		&intlFee, &costToShip, &itemCost, &purchasedAt,
		&netReturn, &roi, &npm, &refundOwed, &refundBack,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.TransactionID = transactionID.String
	item.ItemID = itemID.String
	item.ItemTitle = title.String
	item.PhotoURL = photo.String
	item.SKU = sku.String
	item.PurchasedAt = purchasedAt.String
	item.ListDate = nullTimePtr(listDate)
	item.SoldDate = nullTimePtr(soldDate)
	item.TimeToSell = int(timeToSell.Int64)
	item.QuantitySold = int(quantitySold.Int64)
	item.SoldForPrice = soldFor.Float64
	item.ShippingPaid = shippingPaid.Float64
	item.FinalFee = finalFee.Float64
	item.FixedFinalFee = fixedFee.Float64
	item.InternationalFee = intlFee.Float64
	item.CostToShip = costToShip.Float64
	item.ItemCost = itemCost.Float64
	item.NetReturn = netReturn.Float64
	item.ROI = roi.Float64
	item.NetProfitMargin = npm.Float64
	item.RefundOwed = refundOwed.Float64
	item.RefundToSeller = refundBack.Float64

	return &item, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func wrapExecError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
