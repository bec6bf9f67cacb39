package taboolaclient

import (
	"fmt"
	"net/url"

	tabooladomain "github.com/vfg2006/taboola-extractor/infrastructure/integrator/taboola/domain"
	"github.com/vfg2006/taboola-extractor/internal/domain"
)

// GetCampaignPerformance busca o relatório diário por campanha para a
// janela [startDate, endDate].
func (c *TaboolaClient) GetCampaignPerformance(accessToken, startDate, endDate string) ([]tabooladomain.RawRecord, error) {
	endpoint := fmt.Sprintf(
		"%s/backstage/api/1.0/%s/reports/campaign-summary/dimensions/campaign_day_breakdown",
		c.cfg.Taboola.BaseURL, c.cfg.Taboola.AccountID,
	)

	params := url.Values{}
	params.Add("start_date", startDate)
	params.Add("end_date", endDate)

	body, err := c.request(endpoint, accessToken, params)
	if err != nil {
		return nil, err
	}

	var response tabooladomain.ResultsEnvelope
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, domain.NewSyncError(domain.ErrParse, "performance_decode", err.Error())
	}

	if response.Results == nil {
		return nil, domain.NewSyncError(domain.ErrParse, "performance_results",
			"resposta do relatório sem o campo results")
	}

	return response.Results, nil
}
