package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/resale-tracker-api/internal/domain"
	"github.com/vfg2006/resale-tracker-api/internal/usecases/selling"
	"github.com/vfg2006/resale-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/resale-tracker-api/pkg/log"
)

// SoldItemEditResponse traz o item gravado e as métricas arredondadas para a tabela
type SoldItemEditResponse struct {
	Item    *domain.SoldItem      `json:"item"`
	Display domain.MetricsDisplay `json:"display"`
}

func ListSoldItems(service selling.SellingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		items, err := service.ListSoldItems(r.Context())
		if err != nil {
			logger.WithError(err).Error("sold-items: erro ao listar vendas")
			writeSellingError(w, err, nil)
			return
		}

		if items == nil {
			items = []domain.SoldItem{}
		}

		writeJSON(w, r, http.StatusOK, items)
	})
}

func EditSoldItem(service selling.SellingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		orderID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		req, err := decodeFieldEdit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		edit, err := domain.NewSoldItemEdit(req.Field, req.Value)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrFieldNotEditable, err.Error(), map[string]string{"field": req.Field})
			return
		}

		item, err := service.EditSoldItem(r.Context(), orderID, edit)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"order_id": orderID,
				"field":    req.Field,
			}).Error("sold-items: PATCH falhou")

			var details any
			if item != nil {
				details = SoldItemEditResponse{Item: item, Display: item.Metrics().Display()}
			}
			writeSellingError(w, err, details)
			return
		}

		writeJSON(w, r, http.StatusOK, SoldItemEditResponse{
			Item:    item,
			Display: item.Metrics().Display(),
		})
	})
}

func writeSellingError(w http.ResponseWriter, err error, details any) {
	var sellingErr *selling.SellingError
	if errors.As(err, &sellingErr) {
		apiErrors.WriteError(w, sellingErr.Code, sellingErr.Err.Error(), details)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), details)
}
