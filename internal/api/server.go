package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/resale-tracker-api/internal/api/handler"
	"github.com/vfg2006/resale-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/resale-tracker-api/internal/config"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/insighting"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/selling"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/stocking"
	"github.com/vfg2006/resale-tracker-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia de middlewares global
func NewHandler(
	cfg *config.Config,
	sellingService selling.SellingService,
	stockingService stocking.StockingService,
	insightService insighting.Insighter,
	syncJob handler.SyncJob,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.SoldItems(sellingService)...),
		router.WithRoutes(handler.InventoryItems(stockingService)...),
		router.WithRoutes(handler.Insights(insightService)...),
		router.WithRoutes(handler.CronJobs(cfg.Auth.Secret, syncJob)...),
	)

	return alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	).Then(rt)
}

func New(
	cfg *config.Config,
	sellingService selling.SellingService,
	stockingService stocking.StockingService,
	insightService insighting.Insighter,
	syncJob handler.SyncJob,
) (*Server, error) {
	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("auth.secret não configurado")
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, sellingService, stockingService, insightService, syncJob),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
