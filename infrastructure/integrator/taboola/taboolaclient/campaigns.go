package taboolaclient

import (
	"fmt"

	tabooladomain "github.com/vfg2006/taboola-extractor/infrastructure/integrator/taboola/domain"
	"github.com/vfg2006/taboola-extractor/internal/domain"
)

// GetCampaigns lista as campanhas da conta configurada e devolve o array
// results sem alteração. A paginação indicada pela API não é seguida: o
// recorte é uma única página por execução.
func (c *TaboolaClient) GetCampaigns(accessToken string) ([]tabooladomain.RawRecord, error) {
	endpoint := fmt.Sprintf("%s/backstage/api/1.0/%s/campaigns/",
		c.cfg.Taboola.BaseURL, c.cfg.Taboola.AccountID)

	body, err := c.request(endpoint, accessToken, nil)
	if err != nil {
		return nil, err
	}

	var response tabooladomain.ResultsEnvelope
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, domain.NewSyncError(domain.ErrParse, "campaigns_decode", err.Error())
	}

	if response.Results == nil {
		return nil, domain.NewSyncError(domain.ErrParse, "campaigns_results",
			"resposta de campanhas sem o campo results")
	}

	return response.Results, nil
}
