package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/resale-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/resale-tracker-api/internal/domain"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/insighting"
	insightmocks "github.com/vfg2006/resale-tracker-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/selling"
	sellingmocks "github.com/vfg2006/resale-tracker-api/internal/usecases/selling/mocks"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/stocking"
	stockingmocks "github.com/vfg2006/resale-tracker-api/internal/usecases/stocking/mocks"
	"github.com/vfg2006/resale-tracker-api/pkg/apiErrors"
)

func exampleSoldItem() *domain.SoldItem {
	item := &domain.SoldItem{
		OrderID:       "12-34",
		SoldForPrice:  50,
		ShippingPaid:  5,
		FinalFee:      6.5,
		FixedFinalFee: 0.3,
		CostToShip:    0.5,
		ItemCost:      10,
	}
	item.Recompute()
	return item
}

func serve(routes []router.Route, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func TestEditSoldItem(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *sellingmocks.MockSellingService)
		wantStatus int
		validate   func(t *testing.T, body string)
	}{
		{
			name: "Custo numérico recalcula e devolve exibição arredondada",
			body: `{"item_cost": 10}`,
			setup: func(m *sellingmocks.MockSellingService) {
				m.EXPECT().
					EditSoldItem(gomock.Any(), "12-34", domain.ItemCostEdit{Value: "10"}).
					Return(exampleSoldItem(), nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body string) {
				assert.Contains(t, body, `"net_return":"37.70"`)
				assert.Contains(t, body, `"roi":"377%"`)
				assert.Contains(t, body, `"net_profit_margin":"69%"`)
			},
		},
		{
			name: "Métricas derivadas no corpo são ignoradas",
			body: `{"purchased_at": "Feira", "roi": 999}`,
			setup: func(m *sellingmocks.MockSellingService) {
				m.EXPECT().
					EditSoldItem(gomock.Any(), "12-34", domain.OtherFieldEdit{Name: domain.FieldPurchasedAt, Value: "Feira"}).
					Return(exampleSoldItem(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Dois campos editáveis são rejeitados",
			body:       `{"item_cost": "10", "purchased_at": "Feira"}`,
			setup:      func(m *sellingmocks.MockSellingService) {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body string) {
				assert.Contains(t, body, apiErrors.ErrInvalidRequest)
			},
		},
		{
			name:       "Somente métrica derivada é rejeitada",
			body:       `{"net_return": 1}`,
			setup:      func(m *sellingmocks.MockSellingService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Campo não editável",
			body:       `{"item_title": "Outro"}`,
			setup:      func(m *sellingmocks.MockSellingService) {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body string) {
				assert.Contains(t, body, apiErrors.ErrFieldNotEditable)
			},
		},
		{
			name: "Venda inexistente",
			body: `{"item_cost": "3"}`,
			setup: func(m *sellingmocks.MockSellingService) {
				m.EXPECT().
					EditSoldItem(gomock.Any(), "12-34", gomock.Any()).
					Return(nil, selling.NewSellingError(selling.ErrSoldItemNotFound, apiErrors.ErrResourceNotFound, "12-34", ""))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "Falha ao gravar devolve o item recalculado nos detalhes",
			body: `{"item_cost": "10"}`,
			setup: func(m *sellingmocks.MockSellingService) {
				m.EXPECT().
					EditSoldItem(gomock.Any(), "12-34", gomock.Any()).
					Return(exampleSoldItem(), selling.NewSellingError(selling.ErrPersistFailed, apiErrors.ErrDatabaseOperation, "12-34", "timeout"))
			},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, body string) {
				assert.Contains(t, body, apiErrors.ErrDatabaseOperation)
				assert.Contains(t, body, `"order_id":"12-34"`)
				assert.Contains(t, body, `"roi":"377%"`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := sellingmocks.NewMockSellingService(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodPatch, "/api/sold-items/12-34", strings.NewReader(tt.body))
			rec := serve(SoldItems(service), req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec.Body.String())
			}
		})
	}
}

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(), httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp HealthcheckResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)

	serverTime, err := time.Parse(time.RFC3339, resp.Time)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), serverTime, time.Minute)
}

func TestListSoldItemsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := sellingmocks.NewMockSellingService(ctrl)
	service.EXPECT().ListSoldItems(gomock.Any()).Return(nil, nil)

	rec := serve(SoldItems(service), httptest.NewRequest(http.MethodGet, "/api/sold-items", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestEditInventoryItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := stockingmocks.NewMockStockingService(ctrl)
	service.EXPECT().
		EditInventoryItem(gomock.Any(), "1234", domain.OtherFieldEdit{Name: domain.FieldStorageLocation, Value: "Caixa 3"}).
		Return(&domain.InventoryItem{ItemID: "1234", StorageLocation: "Caixa 3"}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/inventory-items/1234", strings.NewReader(`{"storage_location":"Caixa 3"}`))
	rec := serve(InventoryItems(service), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"storage_location":"Caixa 3"`)
}

func TestEditInventoryItemNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := stockingmocks.NewMockStockingService(ctrl)
	service.EXPECT().
		EditInventoryItem(gomock.Any(), "999", gomock.Any()).
		Return(nil, stocking.NewStockingError(stocking.ErrInventoryItemNotFound, apiErrors.ErrResourceNotFound, "999", ""))

	req := httptest.NewRequest(http.MethodPatch, "/api/inventory-items/999", strings.NewReader(`{"sku":"A1"}`))
	rec := serve(InventoryItems(service), req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetInsightsData(t *testing.T) {
	t.Run("Repassa as datas e devolve série e resumo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := insightmocks.NewMockInsighter(ctrl)
		service.EXPECT().
			GetInsights(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filters *domain.InsightFilters) (*domain.InsightsResponse, error) {
				require.NotNil(t, filters.StartDate)
				require.NotNil(t, filters.EndDate)
				assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
				assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), *filters.EndDate)
				return &domain.InsightsResponse{
					Data: []domain.InsightsDayBucket{
						{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Gross: 80, Net: 30},
					},
					Summary: domain.InsightsSummary{TotalGross: 80, TotalNet: 30, TotalCount: 2},
				}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/insights-data?start_date=2024-05-01&end_date=2024-05-02", nil)
		rec := serve(Insights(service), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"date":"2024-05-01"`)
		assert.Contains(t, rec.Body.String(), `"total_count":2`)
	})

	t.Run("Sem datas usa o período padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := insightmocks.NewMockInsighter(ctrl)
		service.EXPECT().
			GetInsights(gomock.Any(), &domain.InsightFilters{}).
			Return(&domain.InsightsResponse{Data: []domain.InsightsDayBucket{}}, nil)

		rec := serve(Insights(service), httptest.NewRequest(http.MethodGet, "/api/insights-data", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Data mal formatada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := insightmocks.NewMockInsighter(ctrl)

		rec := serve(Insights(service), httptest.NewRequest(http.MethodGet, "/api/insights-data?start_date=01/05/2024", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidFormat)
	})

	t.Run("Início depois do fim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := insightmocks.NewMockInsighter(ctrl)
		service.EXPECT().GetInsights(gomock.Any(), gomock.Any()).Return(nil, insighting.ErrInvalidDateRange)

		rec := serve(Insights(service), httptest.NewRequest(http.MethodGet, "/api/insights-data?start_date=2024-06-01&end_date=2024-05-01", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidDateRange)
	})

	t.Run("Erro do banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := insightmocks.NewMockInsighter(ctrl)
		service.EXPECT().GetInsights(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão perdida"))

		rec := serve(Insights(service), httptest.NewRequest(http.MethodGet, "/api/insights-data", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

type fakeSyncJob struct {
	accept    bool
	triggered int
}

func (f *fakeSyncJob) TriggerManualSync() bool {
	f.triggered++
	return f.accept
}

func (f *fakeSyncJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": !f.accept}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		accept     bool
		wantStatus int
		wantCalls  int
	}{
		{name: "Dispara sincronização de vendas", path: "/api/cron/sold-items/run", accept: true, wantStatus: http.StatusAccepted, wantCalls: 1},
		{name: "Tipo all", path: "/api/cron/all/run", accept: true, wantStatus: http.StatusAccepted, wantCalls: 1},
		{name: "Já em andamento", path: "/api/cron/sold-items/run", accept: false, wantStatus: http.StatusConflict, wantCalls: 1},
		{name: "Tipo inválido", path: "/api/cron/meta/run", accept: true, wantStatus: http.StatusBadRequest, wantCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeSyncJob{accept: tt.accept}
			routes := []router.Route{{Path: "/api/cron/:type/run", Method: http.MethodPost, Handler: RunCronJob(job)}}

			rec := serve(routes, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, job.triggered)
		})
	}
}

func TestCronRoutesRequireToken(t *testing.T) {
	job := &fakeSyncJob{accept: true}

	rec := serve(CronJobs("segredo", job), httptest.NewRequest(http.MethodGet, "/api/cron/status", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, job.triggered)
}
