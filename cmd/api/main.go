package main

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/resale-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/resale-tracker-api/infrastructure/integrator/ebay"
	"github.com/vfg2006/resale-tracker-api/infrastructure/integrator/ebay/ebayclient"
	"github.com/vfg2006/resale-tracker-api/infrastructure/repository"
	"github.com/vfg2006/resale-tracker-api/internal/api"
	"github.com/vfg2006/resale-tracker-api/internal/config"
	"github.com/vfg2006/resale-tracker-api/internal/scheduler"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/insighting"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/selling"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/stocking"
)

// tokens do eBay valem duas horas
const ebayTokenRefreshInterval = 90 * time.Minute

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	soldItemRepo := repository.NewSoldItemRepository(pgConn)
	inventoryItemRepo := repository.NewInventoryItemRepository(pgConn)

	httpClient := &http.Client{Timeout: cfg.Ebay.Timeout}

	tokenManager := ebayclient.NewTokenManager(cfg.Ebay, httpClient)
	go tokenManager.StartAutoRefresh(ctx, ebayTokenRefreshInterval)
	defer tokenManager.StopAutoRefresh()

	ebayClient := ebayclient.NewClient(cfg.Ebay, httpClient, tokenManager)
	ebayIntegrator := ebay.New(cfg.SoldItemsSync, ebayClient)

	sellingService := selling.NewService(soldItemRepo)
	stockingService := stocking.NewService(inventoryItemRepo)
	insightService := insighting.NewService(cfg.Insights, soldItemRepo)

	soldItemsSyncService := scheduler.NewSoldItemsSyncService(
		soldItemRepo,
		inventoryItemRepo,
		ebayIntegrator,
		cfg.SoldItemsSync,
	)

	if err := soldItemsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de vendas do eBay")
	} else {
		logrus.Info("Agendador de sincronização de vendas do eBay iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		sellingService,
		stockingService,
		insightService,
		soldItemsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
