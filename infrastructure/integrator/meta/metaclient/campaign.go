package metaclient

import (
	"context"
	"math"
	"net/url"
	"strconv"
	"time"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
)

const campaignInsightFields = "impressions,clicks,spend,ctr,cpc,cpm,conversions,cost_per_conversion,reach,frequency,purchase_roas"

func (c *MetaClient) CreateCampaign(ctx context.Context, accessToken, accountID string, input metadomain.CampaignInput) (*metadomain.CreatedObject, error) {
	status := input.Status
	if status == "" {
		status = "PAUSED"
	}

	form := url.Values{}
	form.Add("name", input.Name)
	form.Add("objective", input.Objective)
	form.Add("status", status)
	form.Add("special_ad_categories", "[]")

	if input.Budget != nil {
		// a Graph API recebe o orçamento em centavos
		cents := strconv.FormatInt(int64(math.Round(*input.Budget*100)), 10)
		if input.BudgetType == "LIFETIME" {
			form.Add("lifetime_budget", cents)
		} else {
			form.Add("daily_budget", cents)
		}
	}

	if input.StartTime != nil {
		form.Add("start_time", input.StartTime.UTC().Format(time.RFC3339))
	}
	if input.EndTime != nil {
		form.Add("stop_time", input.EndTime.UTC().Format(time.RFC3339))
	}

	form.Add("access_token", accessToken)

	var created metadomain.CreatedObject
	if err := c.post(ctx, "create_campaign", "/"+actID(accountID)+"/campaigns", form, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// GetCampaignInsights retorna nil, nil quando o Meta não tem dados no período
func (c *MetaClient) GetCampaignInsights(ctx context.Context, accessToken, campaignID string, timeRange *metadomain.TimeRange) (*metadomain.CampaignInsight, error) {
	params := url.Values{}
	params.Add("fields", campaignInsightFields)
	if timeRange != nil {
		rawRange, err := json.Marshal(timeRange)
		if err != nil {
			return nil, err
		}
		params.Add("time_range", string(rawRange))
	}
	params.Add("access_token", accessToken)

	var response listResponse[metadomain.CampaignInsight]
	if err := c.get(ctx, "get_campaign_insights", "/"+campaignID+"/insights", params, &response); err != nil {
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}

func (c *MetaClient) UpdateCampaignStatus(ctx context.Context, accessToken, campaignID, status string) error {
	form := url.Values{}
	form.Add("status", status)
	form.Add("access_token", accessToken)

	return c.post(ctx, "update_campaign_status", "/"+campaignID, form, nil)
}
