package taboolaclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	tabooladomain "github.com/vfg2006/taboola-extractor/infrastructure/integrator/taboola/domain"
	"github.com/vfg2006/taboola-extractor/internal/domain"
)

// GenerateToken troca as credenciais de longa duração por um token de
// acesso via password grant. Qualquer rejeição 4xx é falha fatal de
// autenticação, sem retry.
func (c *TaboolaClient) GenerateToken() (string, error) {
	c.logger.Info("Gerando novo token com autenticação por senha")

	endpoint := fmt.Sprintf("%s/backstage/oauth/token", c.cfg.Taboola.BaseURL)

	form := url.Values{}
	form.Add("client_id", c.cfg.Taboola.ClientID)
	form.Add("client_secret", c.cfg.Taboola.ClientSecret)
	form.Add("username", c.cfg.Taboola.Username)
	form.Add("password", c.cfg.Taboola.Password)
	form.Add("grant_type", "password")

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar a requisição de token")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "erro ao executar a troca de token")
	}
	defer resp.Body.Close()

	c.logger.WithField("status", resp.StatusCode).Info("Resposta recebida do endpoint de token")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler a resposta do token")
	}

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError {
		var errorResp tabooladomain.ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err == nil {
			c.logger.WithFields(logrus.Fields{
				"error":             errorResp.Error,
				"error_description": errorResp.ErrorDescription,
			}).Error("Autenticação rejeitada pela API")
		}

		return "", domain.NewSyncError(domain.ErrAuthFailed, "auth_rejected",
			fmt.Sprintf("%s: %s", errorResp.Error, errorResp.ErrorDescription))
	}

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewSyncError(domain.ErrHTTPRequest, "token_status",
			fmt.Sprintf("troca de token retornou status %d", resp.StatusCode))
	}

	var tokenResp tabooladomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", domain.NewSyncError(domain.ErrParse, "token_decode", err.Error())
	}

	// Um corpo 200 sem access_token não é erro nesta camada: a verificação
	// de acesso subsequente falha rápido com o token vazio.
	if tokenResp.AccessToken != "" {
		c.logger.Info("Token de acesso obtido com sucesso")
	}

	return tokenResp.AccessToken, nil
}
