package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/resale-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/resale-tracker-api/infrastructure/repository"
	"github.com/vfg2006/resale-tracker-api/internal/config"
	"github.com/vfg2006/resale-tracker-api/internal/domain"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sold_items (
		order_id          TEXT PRIMARY KEY,
		transaction_id    TEXT NOT NULL DEFAULT '',
		item_id           TEXT NOT NULL DEFAULT '',
		item_title        TEXT NOT NULL DEFAULT '',
		photo_url         TEXT NOT NULL DEFAULT '',
		list_date         TIMESTAMPTZ,
		sold_date         TIMESTAMPTZ,
		time_to_sell      INTEGER,
		sku               TEXT NOT NULL DEFAULT '',
		quantity_sold     INTEGER,
		sold_for_price    DOUBLE PRECISION,
		shipping_paid     DOUBLE PRECISION,
		final_fee         DOUBLE PRECISION,
		fixed_final_fee   DOUBLE PRECISION,
		international_fee DOUBLE PRECISION,
		cost_to_ship      DOUBLE PRECISION,
		item_cost         DOUBLE PRECISION,
		purchased_at      TEXT NOT NULL DEFAULT '',
		net_return        DOUBLE PRECISION,
		roi               DOUBLE PRECISION,
		net_profit_margin DOUBLE PRECISION,
		refund_owed       DOUBLE PRECISION,
		refund_to_seller  DOUBLE PRECISION,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sold_items_sold_date ON sold_items (sold_date)`,
	`CREATE TABLE IF NOT EXISTS inventory_items (
		item_id            TEXT PRIMARY KEY,
		item_title         TEXT NOT NULL DEFAULT '',
		photo_url          TEXT NOT NULL DEFAULT '',
		list_price         DOUBLE PRECISION,
		list_date          TIMESTAMPTZ,
		quantity_available INTEGER,
		storage_location   TEXT NOT NULL DEFAULT '',
		item_cost          DOUBLE PRECISION,
		purchased_at       TEXT NOT NULL DEFAULT '',
		sku                TEXT NOT NULL DEFAULT '',
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func createSchema(ctx context.Context, conn *postgres.Connection) error {
	for _, stmt := range schema {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// importSoldItems grava as vendas da planilha. Para vendas já existentes vale o
// custo gravado, como na sincronização, e as métricas são recalculadas com ele.
func importSoldItems(ctx context.Context, repo repository.SoldItemRepository, items []domain.SoldItem) error {
	orderIDs := make([]string, 0, len(items))
	for _, item := range items {
		orderIDs = append(orderIDs, item.OrderID)
	}

	costs, err := repo.ItemCosts(ctx, orderIDs)
	if err != nil {
		return fmt.Errorf("erro ao buscar custos gravados: %w", err)
	}

	for i := range items {
		if cost, ok := costs[items[i].OrderID]; ok {
			items[i].ItemCost = cost
			items[i].Recompute()
		}
	}

	return repo.Upsert(ctx, items)
}

func main() {
	csvPath := flag.String("csv", "", "CSV da lista de vendas antiga para importar")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("erro ao conectar no banco")
	}
	defer conn.Close()

	if err := createSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("erro ao criar tabelas")
	}
	logrus.Info("Tabelas sold_items e inventory_items prontas")

	if *csvPath == "" {
		return
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		logrus.WithError(err).Fatal("erro ao abrir CSV")
	}
	defer file.Close()

	items, skipped, err := ReadLegacySoldList(file)
	if err != nil {
		logrus.WithError(err).Fatal("erro ao ler CSV")
	}

	startTime := time.Now()
	if err := importSoldItems(ctx, repository.NewSoldItemRepository(conn), items); err != nil {
		logrus.WithError(err).Fatal("erro ao importar vendas")
	}

	logrus.WithFields(logrus.Fields{
		"imported": len(items),
		"skipped":  skipped,
		"duration": time.Since(startTime).String(),
	}).Info("Importação da lista de vendas concluída")
}
