package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/resale-tracker-api/internal/domain"
	"github.com/vfg2006/resale-tracker-api/pkg/log"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

// fieldEditRequest é o corpo de um PATCH depois de normalizado
type fieldEditRequest struct {
	Field string `validate:"required"`
	Value string `validate:"max=255"`
}

// decodeFieldEdit lê um objeto JSON com exatamente um campo editável.
// Métricas derivadas enviadas no corpo são ignoradas.
func decodeFieldEdit(r *http.Request) (*fieldEditRequest, error) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("corpo da requisição inválido: %w", err)
	}

	req := &fieldEditRequest{}
	count := 0
	for key, raw := range body {
		if domain.IsDerivedField(key) {
			continue
		}
		count++

		value, err := stringValue(raw)
		if err != nil {
			return nil, fmt.Errorf("valor inválido para %s: %w", key, err)
		}
		req.Field, req.Value = key, value
	}

	if count != 1 {
		return nil, fmt.Errorf("envie exatamente um campo editável, recebidos %d", count)
	}

	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	return req, nil
}

func stringValue(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("tipo %T não suportado", raw)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}
