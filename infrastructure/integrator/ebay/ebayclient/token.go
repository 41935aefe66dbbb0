package ebayclient

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	ebaydomain "github.com/vfg2006/resale-tracker-api/infrastructure/integrator/ebay/domain"
)

// RequestAccessToken troca o refresh token por um access token de usuário (grant refresh_token)
func RequestAccessToken(ctx context.Context, httpClient *http.Client, endpoint, appID, certID, refreshToken string, scopes []string) (*ebaydomain.TokenResponse, error) {
	if refreshToken == "" {
		return nil, errors.New("refresh token do eBay não configurado")
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	if len(scopes) > 0 {
		form.Set("scope", strings.Join(scopes, " "))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar requisição de token")
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(appID + ":" + certID))
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao obter access token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta")
	}

	var tokenResp ebaydomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar resposta de token (status %d)", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro obtendo access token do eBay. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("erro ao obter access token. Status: %d, erro: %s %s", resp.StatusCode, tokenResp.Error, tokenResp.Description)
	}

	if tokenResp.AccessToken == "" {
		return nil, errors.New("token retornado pela API é vazio")
	}

	return &tokenResp, nil
}

// CalculateTokenExpiration devolve o instante em que o token deve ser renovado.
// Access tokens do eBay duram 2 horas; renovamos 5 minutos antes.
func CalculateTokenExpiration(now time.Time, expiresIn int64) time.Time {
	buffer := int64(5 * 60)
	safeExpiresIn := expiresIn - buffer

	if safeExpiresIn <= 0 {
		safeExpiresIn = expiresIn / 2
	}

	return now.Add(time.Duration(safeExpiresIn) * time.Second)
}
