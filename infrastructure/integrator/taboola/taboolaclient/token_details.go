package taboolaclient

import (
	"fmt"

	tabooladomain "github.com/vfg2006/taboola-extractor/infrastructure/integrator/taboola/domain"
	"github.com/vfg2006/taboola-extractor/internal/domain"
)

// GetTokenDetails consulta a que conta o token emitido está escopado.
func (c *TaboolaClient) GetTokenDetails(accessToken string) (*tabooladomain.TokenDetails, error) {
	endpoint := fmt.Sprintf("%s/backstage/api/1.0/token-details/", c.cfg.Taboola.BaseURL)

	body, err := c.request(endpoint, accessToken, nil)
	if err != nil {
		return nil, err
	}

	var details tabooladomain.TokenDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, domain.NewSyncError(domain.ErrParse, "token_details_decode", err.Error())
	}

	return &details, nil
}
