package ebayclient

import (
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	ebaydomain "github.com/vfg2006/resale-tracker-api/infrastructure/integrator/ebay/domain"
	"github.com/vfg2006/resale-tracker-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrTokenExpired sinaliza que o eBay rejeitou o token; a chamada pode ser repetida
var ErrTokenExpired = errors.New("token do eBay expirado")

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

type Client interface {
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]ebaydomain.Transaction, error)
	GetSoldList(ctx context.Context, durationInDays, pageSize int) ([]ebaydomain.SoldTransaction, error)
	GetActiveList(ctx context.Context, pageSize int) ([]ebaydomain.ActiveItem, error)
}

// TokenSource fornece o access token usado nas chamadas
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
	Invalidate()
}

type EbayClient struct {
	cfg        config.Ebay
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
}

func NewClient(cfg config.Ebay, httpClient *http.Client, tokens TokenSource) *EbayClient {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}

	return &EbayClient{
		cfg:        cfg,
		httpClient: httpClient,
		tokens:     tokens,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// do envia a requisição respeitando o limite de chamadas e devolve o corpo
func (c *EbayClient) do(req *http.Request) (int, []byte, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return 0, nil, errors.Wrap(err, "rate limiter cancelado")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrap(err, "erro ao ler resposta")
	}

	return resp.StatusCode, body, nil
}

// withTokenRetry repete a chamada uma vez quando o token é rejeitado
func withTokenRetry[T any](ctx context.Context, tokens TokenSource, call func(token string) (T, error)) (T, error) {
	var zero T

	token, err := tokens.AccessToken(ctx)
	if err != nil {
		return zero, err
	}

	result, err := call(token)
	if !errors.Is(err, ErrTokenExpired) {
		return result, err
	}

	tokens.Invalidate()
	token, err = tokens.AccessToken(ctx)
	if err != nil {
		return zero, err
	}

	return call(token)
}
