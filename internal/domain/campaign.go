package domain

// OpenEndedDate é o sentinela usado quando uma campanha não declara data de
// início ou de término.
const OpenEndedDate = "9999-12-31"

// Targeting é o filtro estruturado de segmentação de uma campanha,
// por exemplo {"type": "INCLUDE", "value": ["AU", "GB"]}.
type Targeting struct {
	Type  string   `json:"type" mapstructure:"type"`
	Value []string `json:"value" mapstructure:"value"`
}

// Campaign é o registro normalizado emitido no stream "campaigns".
// O sink faz upsert pela chave "id".
type Campaign struct {
	ID                 int        `json:"id"`
	AdvertiserID       string     `json:"advertiser_id"`
	Name               string     `json:"name"`
	TrackingCode       string     `json:"tracking_code"`
	CPC                float64    `json:"cpc"`
	DailyCap           float64    `json:"daily_cap"`
	SpendingLimit      float64    `json:"spending_limit"`
	SpendingLimitModel string     `json:"spending_limit_model"`
	CountryTargeting   *Targeting `json:"country_targeting"`
	PlatformTargeting  *Targeting `json:"platform_targeting"`
	PublisherTargeting *Targeting `json:"publisher_targeting"`
	StartDate          string     `json:"start_date"`
	EndDate            string     `json:"end_date"`
	ApprovalState      string     `json:"approval_state"`
	IsActive           bool       `json:"is_active"`
	Spent              float64    `json:"spent"`
	Status             string     `json:"status"`
}

// CampaignPerformance é uma linha (campanha, dia) do stream
// "campaign_performance". O sink faz upsert pela chave composta
// (campaign_id, date).
type CampaignPerformance struct {
	CampaignID        int     `json:"campaign_id"`
	Date              string  `json:"date"`
	Impressions       int     `json:"impressions"`
	Clicks            int     `json:"clicks"`
	CTR               float64 `json:"ctr"`
	CPC               float64 `json:"cpc"`
	CPM               float64 `json:"cpm"`
	CPA               float64 `json:"cpa"`
	CPAActionsNum     int     `json:"cpa_actions_num"`
	CPAConversionRate float64 `json:"cpa_conversion_rate"`
	Spent             float64 `json:"spent"`
	Currency          string  `json:"currency"`
}
