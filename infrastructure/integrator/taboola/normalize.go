package taboola

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"

	tabooladomain "github.com/vfg2006/taboola-extractor/infrastructure/integrator/taboola/domain"
	"github.com/vfg2006/taboola-extractor/internal/domain"
)

// performanceDateLayout é o formato exato do timestamp do relatório diário.
// Qualquer outro formato é erro fatal, não fallback.
const performanceDateLayout = "2006-01-02 15:04:05.000000"

// FactoryCampaign converte um registro cru de campanha no registro
// normalizado do stream "campaigns". O id é a identidade do registro e não
// tem valor padrão; os demais campos seguem a política de coerção de
// RawRecord.
func FactoryCampaign(raw tabooladomain.RawRecord) (*domain.Campaign, error) {
	id, err := raw.RequireInt("id")
	if err != nil {
		return nil, err
	}

	campaign := &domain.Campaign{ID: id}

	if campaign.AdvertiserID, err = raw.String("advertiser_id"); err != nil {
		return nil, err
	}
	if campaign.Name, err = raw.String("name"); err != nil {
		return nil, err
	}
	if campaign.TrackingCode, err = raw.String("tracking_code"); err != nil {
		return nil, err
	}
	if campaign.CPC, err = raw.Float("cpc"); err != nil {
		return nil, err
	}
	if campaign.DailyCap, err = raw.Float("daily_cap"); err != nil {
		return nil, err
	}
	if campaign.SpendingLimit, err = raw.Float("spending_limit"); err != nil {
		return nil, err
	}
	if campaign.SpendingLimitModel, err = raw.String("spending_limit_model"); err != nil {
		return nil, err
	}
	if campaign.CountryTargeting, err = targeting(raw, "country_targeting"); err != nil {
		return nil, err
	}
	if campaign.PlatformTargeting, err = targeting(raw, "platform_targeting"); err != nil {
		return nil, err
	}
	if campaign.PublisherTargeting, err = targeting(raw, "publisher_targeting"); err != nil {
		return nil, err
	}
	if campaign.StartDate, err = raw.StringOr("start_date", domain.OpenEndedDate); err != nil {
		return nil, err
	}
	if campaign.EndDate, err = raw.StringOr("end_date", domain.OpenEndedDate); err != nil {
		return nil, err
	}
	if campaign.ApprovalState, err = raw.String("approval_state"); err != nil {
		return nil, err
	}
	if campaign.IsActive, err = raw.Bool("is_active"); err != nil {
		return nil, err
	}
	if campaign.Spent, err = raw.Float("spent"); err != nil {
		return nil, err
	}
	if campaign.Status, err = raw.String("status"); err != nil {
		return nil, err
	}

	return campaign, nil
}

// FactoryCampaignPerformance converte uma linha crua do relatório diário no
// registro normalizado do stream "campaign_performance". A identidade é a
// chave composta (campaign, date) e não tem valor padrão.
func FactoryCampaignPerformance(raw tabooladomain.RawRecord) (*domain.CampaignPerformance, error) {
	campaignID, err := raw.RequireInt("campaign")
	if err != nil {
		return nil, err
	}

	rawDate, err := raw.RequireString("date")
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(performanceDateLayout, rawDate)
	if err != nil {
		return nil, domain.NewSyncError(domain.ErrParse, "performance_date",
			fmt.Sprintf("data %q fora do formato esperado", rawDate))
	}

	performance := &domain.CampaignPerformance{
		CampaignID: campaignID,
		Date:       date.Format(time.DateOnly),
	}

	if performance.Impressions, err = raw.Int("impressions"); err != nil {
		return nil, err
	}
	if performance.Clicks, err = raw.Int("clicks"); err != nil {
		return nil, err
	}
	if performance.CTR, err = raw.Float("ctr"); err != nil {
		return nil, err
	}
	if performance.CPC, err = raw.Float("cpc"); err != nil {
		return nil, err
	}
	if performance.CPM, err = raw.Float("cpm"); err != nil {
		return nil, err
	}
	if performance.CPA, err = raw.Float("cpa"); err != nil {
		return nil, err
	}
	if performance.CPAActionsNum, err = raw.Int("cpa_actions_num"); err != nil {
		return nil, err
	}
	if performance.CPAConversionRate, err = raw.Float("cpa_conversion_rate"); err != nil {
		return nil, err
	}
	if performance.Spent, err = raw.Float("spent"); err != nil {
		return nil, err
	}
	if performance.Currency, err = raw.String("currency"); err != nil {
		return nil, err
	}

	return performance, nil
}

// targeting decodifica um filtro de segmentação opcional. Ausente ou nulo
// vira nil; qualquer valor que não seja um objeto {type, value} é fatal.
func targeting(raw tabooladomain.RawRecord, key string) (*domain.Targeting, error) {
	value, ok := raw[key]
	if !ok || value == nil {
		return nil, nil
	}

	target := &domain.Targeting{}
	if err := mapstructure.Decode(value, target); err != nil {
		return nil, domain.NewSyncError(domain.ErrParse, "targeting_decode",
			fmt.Sprintf("campo %q com segmentação inválida: %v", key, err))
	}

	return target, nil
}
