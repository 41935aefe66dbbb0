package ebaydomain

import "strings"

// ErrorResponse é o formato de erro das APIs REST do eBay
type ErrorResponse struct {
	Errors []ErrorDetails `json:"errors"`
}

type ErrorDetails struct {
	ErrorID     int    `json:"errorId"`
	Domain      string `json:"domain"`
	Category    string `json:"category"`
	Message     string `json:"message"`
	LongMessage string `json:"longMessage,omitempty"`
}

// IsTokenExpired indica se o erro é de token inválido ou expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	for _, detail := range e.Errors {
		// 1001: Invalid access token
		if detail.ErrorID == 1001 {
			return true
		}
	}
	return false
}

// TokenResponse é a resposta do endpoint OAuth do eBay
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Error       string `json:"error,omitempty"`
	Description string `json:"error_description,omitempty"`
}

// TradingErrorsMessage junta as mensagens de erro da Trading API
func TradingErrorsMessage(errs []TradingError) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := e.LongMessage
		if msg == "" {
			msg = e.ShortMessage
		}
		messages = append(messages, e.ErrorCode+": "+msg)
	}
	return strings.Join(messages, "; ")
}

// IsTradingTokenExpired indica se a Trading API rejeitou o token (931/932: token inválido ou expirado)
func IsTradingTokenExpired(errs []TradingError) bool {
	for _, e := range errs {
		if e.ErrorCode == "931" || e.ErrorCode == "932" || e.ErrorCode == "21917053" {
			return true
		}
	}
	return false
}
