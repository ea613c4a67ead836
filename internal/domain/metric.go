package domain

import (
	"time"

	"github.com/vfg2006/meta-ads-manager-api/pkg/utils"
)

const (
	DefaultMetricsLimit = 100
	MaxMetricsLimit     = 1000
)

type Metric struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaignId"`
	AdSetID     *string   `json:"adSetId,omitempty"`
	AdID        *string   `json:"adId,omitempty"`
	Date        time.Time `json:"date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Spend       float64   `json:"spend"`
	Conversions int64     `json:"conversions"`
	CTR         float64   `json:"ctr"`
	CPC         float64   `json:"cpc"`
	CPM         float64   `json:"cpm"`
	ROAS        float64   `json:"roas"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MetricsQuery struct {
	CampaignID  string
	CampaignIDs []string
	StartDate   *time.Time
	EndDate     *time.Time
	Limit       uint64
}

// Normalize aplica o limite padrão e o teto de linhas por consulta
func (q *MetricsQuery) Normalize() {
	if q.Limit == 0 {
		q.Limit = DefaultMetricsLimit
	}
	if q.Limit > MaxMetricsLimit {
		q.Limit = MaxMetricsLimit
	}
	if q.CampaignID != "" {
		q.CampaignIDs = append(q.CampaignIDs, q.CampaignID)
		q.CampaignID = ""
	}
}

type CalculatedMetrics struct {
	CTR               float64 `json:"ctr"`
	CPC               float64 `json:"cpc"`
	CPM               float64 `json:"cpm"`
	ROAS              float64 `json:"roas"`
	ConversionRate    float64 `json:"conversionRate"`
	CostPerConversion float64 `json:"costPerConversion"`
}

// CalculateMetrics calcula as taxas derivadas. Sem impressões tudo é zero.
func CalculateMetrics(impressions, clicks, conversions int64, spend, revenue float64) CalculatedMetrics {
	if impressions == 0 {
		return CalculatedMetrics{}
	}

	result := CalculatedMetrics{
		CTR: utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100),
		CPM: utils.RoundWithTwoDecimalPlace(spend / float64(impressions) * 1000),
	}

	if clicks > 0 {
		result.CPC = utils.RoundWithTwoDecimalPlace(spend / float64(clicks))
		result.ConversionRate = utils.RoundWithTwoDecimalPlace(float64(conversions) / float64(clicks) * 100)
	}

	if conversions > 0 {
		result.CostPerConversion = utils.RoundWithTwoDecimalPlace(spend / float64(conversions))
	}

	if spend > 0 {
		result.ROAS = utils.RoundWithTwoDecimalPlace(revenue / spend)
	}

	return result
}
