package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/resale-tracker-api/infrastructure/integrator/ebay"
	"github.com/vfg2006/resale-tracker-api/infrastructure/repository"
	"github.com/vfg2006/resale-tracker-api/internal/config"
	"github.com/vfg2006/resale-tracker-api/pkg/utils"
)

// SoldItemsSyncService agenda e executa a importação de vendas e estoque do eBay
type SoldItemsSyncService struct {
	scheduler         *gocron.Scheduler
	config            config.SoldItemsSync
	soldItemRepo      repository.SoldItemRepository
	inventoryItemRepo repository.InventoryItemRepository
	ebayService       ebay.EbayIntegrator

	syncMutex           sync.Mutex
	syncRunning         bool
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastSyncSoldItems   int
	lastSyncInventory   int
}

func NewSoldItemsSyncService(
	soldItemRepo repository.SoldItemRepository,
	inventoryItemRepo repository.InventoryItemRepository,
	ebayService ebay.EbayIntegrator,
	cfg config.SoldItemsSync,
) *SoldItemsSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"lookback_days": cfg.LookbackDays,
		"page_size":     cfg.PageSize,
		"sync_enabled":  cfg.Enabled,
	}).Info("Configuração do agendador de vendas do eBay carregada")

	return &SoldItemsSyncService{
		scheduler:         gocron.NewScheduler(time.Local),
		config:            cfg,
		soldItemRepo:      soldItemRepo,
		inventoryItemRepo: inventoryItemRepo,
		ebayService:       ebayService,
	}
}

// Start agenda a sincronização conforme a expressão cron configurada
func (s *SoldItemsSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de vendas do eBay desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de vendas do eBay")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de vendas do eBay: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de vendas do eBay")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução em segundo plano.
// Retorna false quando já existe uma execução em andamento.
func (s *SoldItemsSyncService) TriggerManualSync() bool {
	if !s.tryAcquire() {
		logrus.Info("sync: sincronização já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("sync: iniciando sincronização manual de vendas do eBay")
	go s.run(context.Background())
	return true
}

func (s *SoldItemsSyncService) syncAll(ctx context.Context) {
	if !s.tryAcquire() {
		logrus.Info("sync: sincronização já em andamento, ignorando")
		return
	}
	s.run(ctx)
}

func (s *SoldItemsSyncService) tryAcquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	return true
}

// run executa uma sincronização; o chamador já deve ter adquirido a trava
func (s *SoldItemsSyncService) run(ctx context.Context) {
	runID := utils.GenerateRunID()
	startTime := time.Now()

	s.syncMutex.Lock()
	s.lastRunID = runID
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	logger := logrus.WithField("run_id", runID)
	logger.Info("sync: iniciando sincronização de vendas do eBay")

	soldCount, inventoryCount, err := s.SyncOnce(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncSoldItems = soldCount
	s.lastSyncInventory = inventoryCount
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("sync: sincronização de vendas do eBay falhou")
		return
	}

	logger.WithFields(logrus.Fields{
		"duration":   time.Since(startTime).String(),
		"sold_items": soldCount,
		"inventory":  inventoryCount,
	}).Info("sync: sincronização de vendas do eBay concluída")
}

// SyncOnce importa vendas e anúncios ativos. As métricas de cada venda são
// recalculadas com o custo já gravado pelo usuário antes da gravação.
func (s *SoldItemsSyncService) SyncOnce(ctx context.Context) (int, int, error) {
	soldItems, err := s.ebayService.GetSoldItems(ctx, s.config.LookbackDays)
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao buscar vendas no eBay: %w", err)
	}

	orderIDs := make([]string, 0, len(soldItems))
	for _, item := range soldItems {
		orderIDs = append(orderIDs, item.OrderID)
	}

	costs, err := s.soldItemRepo.ItemCosts(ctx, orderIDs)
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao buscar custos gravados: %w", err)
	}

	for i := range soldItems {
		soldItems[i].ItemCost = costs[soldItems[i].OrderID]
		soldItems[i].Recompute()
	}

	if err := s.soldItemRepo.Upsert(ctx, soldItems); err != nil {
		return 0, 0, fmt.Errorf("erro ao gravar vendas: %w", err)
	}

	inventory, err := s.ebayService.GetInventoryItems(ctx)
	if err != nil {
		return len(soldItems), 0, fmt.Errorf("erro ao buscar anúncios ativos no eBay: %w", err)
	}

	if err := s.inventoryItemRepo.Upsert(ctx, inventory); err != nil {
		return len(soldItems), 0, fmt.Errorf("erro ao gravar estoque: %w", err)
	}

	return len(soldItems), len(inventory), nil
}

// GetStatus retorna o status atual do agendador
func (s *SoldItemsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"last_sync_sold_items":   s.lastSyncSoldItems,
		"last_sync_inventory":    s.lastSyncInventory,
	}
}
