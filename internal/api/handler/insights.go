package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/resale-tracker-api/internal/domain"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/insighting"
	"github.com/vfg2006/resale-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/resale-tracker-api/pkg/log"
	"github.com/vfg2006/resale-tracker-api/pkg/utils"
)

type insightsQuery struct {
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
}

// GetInsightsData devolve a série diária e o resumo do período.
// Sem datas, o período padrão termina hoje.
func GetInsightsData(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := insightsQuery{
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
		}
		if err := validate.Struct(query); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		filters := &domain.InsightFilters{}
		if query.StartDate != "" {
			filters.StartDate, _ = utils.ParseDate(query.StartDate)
		}
		if query.EndDate != "" {
			filters.EndDate, _ = utils.ParseDate(query.EndDate)
		}

		logger.WithFields(log.Fields{
			"start_date": query.StartDate,
			"end_date":   query.EndDate,
		}).Info("insights: buscando dados do painel")

		response, err := service.GetInsights(r.Context(), filters)
		if err != nil {
			if errors.Is(err, insighting.ErrInvalidDateRange) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("insights: erro ao montar dados do painel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar dados do painel", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}
