package taboolaclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/taboola-extractor/internal/domain"
)

// request executa um GET autenticado e devolve o corpo da resposta.
// Qualquer status fora de 2xx aborta a execução sem retry: o sistema
// prefere uma execução claramente falha a dados parciais silenciosos.
func (c *TaboolaClient) request(endpoint string, accessToken string, params url.Values) ([]byte, error) {
	requestURL := endpoint
	if len(params) > 0 {
		requestURL = endpoint + "?" + params.Encode()
	}

	c.logger.WithFields(logrus.Fields{
		"method": http.MethodGet,
		"url":    endpoint,
		"params": params.Encode(),
	}).Info("Executando requisição à API da Taboola")

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	c.logger.WithField("status", resp.StatusCode).Info("Resposta recebida da API da Taboola")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domain.NewSyncError(domain.ErrHTTPRequest, "http_status",
			fmt.Sprintf("GET %s retornou status %d: %s", endpoint, resp.StatusCode, body))
	}

	return body, nil
}
