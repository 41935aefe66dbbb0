package insighting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/resale-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/resale-tracker-api/internal/config"
	"github.com/vfg2006/resale-tracker-api/internal/domain"
)

func TestService_GetInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSoldItemRepo := mocks.NewMockSoldItemRepository(ctrl)

	service := NewService(config.Insights{DefaultRangeDays: 30}, mockSoldItemRepo)
	service.now = func() time.Time { return time.Date(2024, 5, 31, 15, 4, 5, 0, time.UTC) }

	may1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	may31 := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filters  *domain.InsightFilters
		setup    func()
		wantErr  error
		validate func(t *testing.T, resp *domain.InsightsResponse)
	}{
		{
			name:    "período informado é repassado ao repositório",
			filters: &domain.InsightFilters{StartDate: &may1, EndDate: &may31},
			setup: func() {
				mockSoldItemRepo.EXPECT().
					ListBySoldDateRange(gomock.Any(), may1, may31).
					Return([]domain.SoldItem{
						{OrderID: "A", SoldDate: datePtr(2024, 5, 10, 8), SoldForPrice: 50, NetReturn: 30, NetProfitMargin: 60},
					}, nil)
			},
			validate: func(t *testing.T, resp *domain.InsightsResponse) {
				assert.Equal(t, "2024-05-01", resp.StartDate)
				assert.Equal(t, "2024-05-31", resp.EndDate)
				require.Len(t, resp.Data, 1)
				assert.Equal(t, 1, resp.Summary.TotalCount)
				assert.InDelta(t, 60, resp.Summary.AvgNPM, 1e-9)
			},
		},
		{
			name:    "sem datas usa os últimos 30 dias",
			filters: &domain.InsightFilters{},
			setup: func() {
				mockSoldItemRepo.EXPECT().
					ListBySoldDateRange(gomock.Any(), may31.AddDate(0, 0, -30), may31).
					Return(nil, nil)
			},
			validate: func(t *testing.T, resp *domain.InsightsResponse) {
				assert.Equal(t, "2024-05-01", resp.StartDate)
				assert.Empty(t, resp.Data)
				assert.Equal(t, domain.InsightsSummary{}, resp.Summary)
			},
		},
		{
			name:    "início depois do fim",
			filters: &domain.InsightFilters{StartDate: &may31, EndDate: &may1},
			setup:   func() {},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "falha no repositório é propagada",
			filters: &domain.InsightFilters{StartDate: &may1, EndDate: &may31},
			setup: func() {
				mockSoldItemRepo.EXPECT().
					ListBySoldDateRange(gomock.Any(), may1, may31).
					Return(nil, errors.New("conexão recusada"))
			},
			wantErr: errors.New("conexão recusada"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			resp, err := service.GetInsights(context.Background(), tt.filters)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			tt.validate(t, resp)
		})
	}
}

func TestService_GetInsights_ContextoCancelado(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSoldItemRepo := mocks.NewMockSoldItemRepository(ctrl)

	service := NewService(config.Insights{DefaultRangeDays: 30}, mockSoldItemRepo)

	may1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	may31 := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	mockSoldItemRepo.EXPECT().
		ListBySoldDateRange(gomock.Any(), may1, may31).
		DoAndReturn(func(ctx context.Context, _, _ time.Time) ([]domain.SoldItem, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return []domain.SoldItem{{OrderID: "A", SoldDate: datePtr(2024, 5, 10, 8), SoldForPrice: 50, NetReturn: 30}}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := service.GetInsights(ctx, &domain.InsightFilters{StartDate: &may1, EndDate: &may31})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary.TotalCount)
}

func TestService_GetInsights_RespostasIndependentes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSoldItemRepo := mocks.NewMockSoldItemRepository(ctrl)

	service := NewService(config.Insights{DefaultRangeDays: 30}, mockSoldItemRepo)

	may1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	may31 := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	filters := &domain.InsightFilters{StartDate: &may1, EndDate: &may31}

	release := make(chan struct{})
	mockSoldItemRepo.EXPECT().
		ListBySoldDateRange(gomock.Any(), may1, may31).
		DoAndReturn(func(context.Context, time.Time, time.Time) ([]domain.SoldItem, error) {
			<-release
			return []domain.SoldItem{{OrderID: "A", SoldDate: datePtr(2024, 5, 10, 8), SoldForPrice: 50, NetReturn: 30}}, nil
		}).
		MinTimes(1).
		MaxTimes(2)

	var wg sync.WaitGroup
	responses := make([]*domain.InsightsResponse, 2)
	errs := make([]error, 2)
	for i := range responses {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			responses[i], errs[i] = service.GetInsights(context.Background(), filters)
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.Len(t, responses[0].Data, 1)
	require.Len(t, responses[1].Data, 1)
	assert.NotSame(t, responses[0], responses[1])

	responses[0].Data[0].Gross = 999
	responses[0].Summary.TotalCount = 42

	assert.Equal(t, 50.0, responses[1].Data[0].Gross)
	assert.Equal(t, 1, responses[1].Summary.TotalCount)
}
