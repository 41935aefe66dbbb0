package ebayclient

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/resale-tracker-api/internal/config"
)

// TokenManager mantém o access token do eBay válido a partir do refresh token
type TokenManager struct {
	cfg         config.Ebay
	httpClient  *http.Client
	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
	stopRefresh chan struct{}
	stopOnce    sync.Once
	now         func() time.Time
}

func NewTokenManager(cfg config.Ebay, httpClient *http.Client) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		httpClient:  httpClient,
		stopRefresh: make(chan struct{}),
		now:         time.Now,
	}
}

// AccessToken devolve um token válido, renovando quando estiver perto de expirar
func (tm *TokenManager) AccessToken(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.accessToken != "" && tm.now().Before(tm.expiresAt) {
		return tm.accessToken, nil
	}

	if err := tm.refreshLocked(ctx); err != nil {
		return "", err
	}

	return tm.accessToken, nil
}

// Invalidate descarta o token atual; a próxima chamada obtém um novo
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.accessToken = ""
	tm.expiresAt = time.Time{}
}

// RefreshToken força a renovação do token
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return tm.refreshLocked(ctx)
}

func (tm *TokenManager) refreshLocked(ctx context.Context) error {
	logrus.Debug("Renovando access token do eBay")

	tokenResp, err := RequestAccessToken(
		ctx,
		tm.httpClient,
		tm.cfg.IdentityURL,
		tm.cfg.AppID,
		tm.cfg.CertID,
		tm.cfg.RefreshToken,
		tm.cfg.Scopes,
	)
	if err != nil {
		return errors.Wrap(err, "erro ao renovar access token do eBay")
	}

	tm.accessToken = tokenResp.AccessToken
	tm.expiresAt = CalculateTokenExpiration(tm.now(), tokenResp.ExpiresIn)

	logrus.Infof("Access token do eBay renovado. Válido até: %s", tm.expiresAt.Format(time.RFC3339))

	return nil
}

// StartAutoRefresh renova o token periodicamente até StopAutoRefresh ser chamado
func (tm *TokenManager) StartAutoRefresh(ctx context.Context, interval time.Duration) {
	if err := tm.RefreshToken(ctx); err != nil {
		logrus.Errorf("Erro ao iniciar o token do eBay: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := tm.RefreshToken(ctx); err != nil {
				logrus.Errorf("Erro na renovação periódica do token do eBay: %v", err)
				ticker.Reset(5 * time.Minute)
			} else {
				ticker.Reset(interval)
			}
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação do token do eBay")
			return
		case <-ctx.Done():
			return
		}
	}
}

func (tm *TokenManager) StopAutoRefresh() {
	tm.stopOnce.Do(func() {
		close(tm.stopRefresh)
	})
}
