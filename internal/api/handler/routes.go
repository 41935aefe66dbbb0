package handler

import (
	"net/http"

	"github.com/vfg2006/resale-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/insighting"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/selling"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/stocking"
	"github.com/vfg2006/resale-tracker-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func SoldItems(service selling.SellingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sold-items",
			Method:  http.MethodGet,
			Handler: ListSoldItems(service),
		},
		{
			Path:    "/api/sold-items/:id",
			Method:  http.MethodPatch,
			Handler: EditSoldItem(service),
		},
	}
}

func InventoryItems(service stocking.StockingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/inventory-items",
			Method:  http.MethodGet,
			Handler: ListInventoryItems(service),
		},
		{
			Path:    "/api/inventory-items/:id",
			Method:  http.MethodPatch,
			Handler: EditInventoryItem(service),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/insights-data",
			Method:  http.MethodGet,
			Handler: GetInsightsData(service),
		},
	}
}

// CronJobs exige token de administrador
func CronJobs(secret string, syncJob SyncJob) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(secret),
		middleware.AdminOnly(),
	}

	return []router.Route{
		{
			Path:        "/api/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(syncJob),
			Middlewares: adminOnly,
		},
		{
			Path:        "/api/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(syncJob),
			Middlewares: adminOnly,
		},
	}
}
