package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/resale-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/resale-tracker-api/pkg/log"
)

const (
	CronJobTypeSoldItems = "sold-items"
	CronJobTypeAll       = "all"
)

// SyncJob é a sincronização que pode ser disparada manualmente
type SyncJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunCronJob dispara manualmente uma sincronização
func RunCronJob(syncJob SyncJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeSoldItems, CronJobTypeAll:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: sold-items, all", nil)
			return
		}

		if syncJob == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		if !syncJob.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização já em andamento", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("sync: cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status da sincronização
func GetCronStatus(syncJob SyncJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if syncJob == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			CronJobTypeSoldItems: syncJob.GetStatus(),
		})
	})
}
