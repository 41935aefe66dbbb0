package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/resale-tracker-api/internal/domain"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/stocking"
	"github.com/vfg2006/resale-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/resale-tracker-api/pkg/log"
)

func ListInventoryItems(service stocking.StockingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items, err := service.ListInventoryItems(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("inventory: erro ao listar estoque")
			writeStockingError(w, err, nil)
			return
		}

		if items == nil {
			items = []domain.InventoryItem{}
		}

		writeJSON(w, r, http.StatusOK, items)
	})
}

func EditInventoryItem(service stocking.StockingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		itemID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		req, err := decodeFieldEdit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		edit, err := domain.NewInventoryItemEdit(req.Field, req.Value)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrFieldNotEditable, err.Error(), map[string]string{"field": req.Field})
			return
		}

		item, err := service.EditInventoryItem(r.Context(), itemID, edit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{
				"item_id": itemID,
				"field":   req.Field,
			}).Error("inventory: PATCH falhou")

			var details any
			if item != nil {
				details = item
			}
			writeStockingError(w, err, details)
			return
		}

		writeJSON(w, r, http.StatusOK, item)
	})
}

func writeStockingError(w http.ResponseWriter, err error, details any) {
	var stockingErr *stocking.StockingError
	if errors.As(err, &stockingErr) {
		apiErrors.WriteError(w, stockingErr.Code, stockingErr.Err.Error(), details)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), details)
}
