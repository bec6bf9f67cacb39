package singer

// Schema é um JSON Schema declarado para um stream.
type Schema map[string]any

// targetingSchema descreve os filtros de segmentação de campanha, por
// exemplo type "INCLUDE" com value ["AU", "GB"].
func targetingSchema(description string) map[string]any {
	return map[string]any{
		"type":        []string{"object", "null"},
		"description": description,
		"properties": map[string]any{
			"type": map[string]any{
				"type": "string",
			},
			"value": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
			},
		},
	}
}

// CampaignSchema é o schema declarado para o stream "campaigns".
var CampaignSchema = Schema{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":        "integer",
			"description": "The ID of this campaign",
		},
		"advertiser_id": map[string]any{
			"type":        "string",
			"description": "i.e. taboola-demo-advertiser",
		},
		"name": map[string]any{
			"type":        "string",
			"description": "i.e. Demo Campaign",
		},
		"tracking_code": map[string]any{
			"type":        "string",
			"description": "i.e. taboola-track",
		},
		"cpc": map[string]any{
			"type":        "number",
			"description": "Cost per click for the whole campaign, i.e. 0.25",
		},
		"daily_cap": map[string]any{
			"type":        "number",
			"description": "i.e. 100",
		},
		"spending_limit": map[string]any{
			"type":        "number",
			"description": "i.e. 1000",
		},
		"spending_limit_model": map[string]any{
			"type":        "string",
			"description": "i.e. \"MONTHLY\"",
		},
		"country_targeting":   targetingSchema("Country codes to target."),
		"platform_targeting":  targetingSchema("Platforms to target, i.e. [\"TBLT\",\"PHON\"]."),
		"publisher_targeting": targetingSchema("Publishers to target."),
		"start_date": map[string]any{
			"type":        "string",
			"format":      "date",
			"description": "The start date for this campaign.",
		},
		"end_date": map[string]any{
			"type":        "string",
			"format":      "date",
			"description": "The end date for this campaign.",
		},
		"approval_state": map[string]any{
			"type":        "string",
			"description": "Approval state for the campaign, i.e. \"APPROVED\".",
		},
		"is_active": map[string]any{
			"type":        "boolean",
			"description": "Whether or not the campaign is active.",
		},
		"spent": map[string]any{
			"type":        "number",
			"description": "i.e. 2.23",
		},
		"status": map[string]any{
			"type":        "string",
			"description": "i.e. \"RUNNING\"",
		},
	},
}

// CampaignPerformanceSchema é o schema declarado para o stream
// "campaign_performance".
var CampaignPerformanceSchema = Schema{
	"type": "object",
	"properties": map[string]any{
		"campaign_id": map[string]any{
			"type": "integer",
		},
		"date": map[string]any{
			"type":   "string",
			"format": "date",
		},
		"impressions": map[string]any{
			"type":        "integer",
			"description": "Total number of impressions",
		},
		"ctr": map[string]any{
			"type":        "number",
			"description": "CTR, calculated as clicks/impressions",
		},
		"clicks": map[string]any{
			"type":        "integer",
			"description": "Total number of clicks",
		},
		"cpc": map[string]any{
			"type":        "number",
			"description": "CPC, calculated as spend/clicks",
		},
		"cpm": map[string]any{
			"type":        "number",
			"description": "CPM (cost per 1000 impressions), calculated as spend/impressions",
		},
		"cpa_conversion_rate": map[string]any{
			"type":        "number",
			"description": "Conversion rate calculated as actions/clicks",
		},
		"cpa_actions_num": map[string]any{
			"type":        "integer",
			"description": "Total actions (a.k.a. conversions)",
		},
		"cpa": map[string]any{
			"type":        "number",
			"description": "CPA, calculated as spend/actions",
		},
		"spent": map[string]any{
			"type":        "number",
			"description": "Total spent amount",
		},
		"currency": map[string]any{
			"type":        "string",
			"description": "ISO4217 currency code for columns of type money",
		},
	},
}
