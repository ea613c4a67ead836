package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) ListPages(ctx context.Context, accessToken string) ([]metadomain.Page, error) {
	params := url.Values{}
	params.Add("fields", "id,name,category,link,fan_count,access_token,tasks")
	params.Add("limit", "100")
	params.Add("access_token", accessToken)

	return listAll[metadomain.Page](ctx, c, "list_pages", "/me/accounts", params)
}

func (c *MetaClient) GetPage(ctx context.Context, accessToken, pageID string) (*metadomain.Page, error) {
	params := url.Values{}
	params.Add("fields", "id,name,category,link,fan_count")
	params.Add("access_token", accessToken)

	var page metadomain.Page
	if err := c.get(ctx, "get_page", "/"+pageID, params, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *MetaClient) GetPageInsights(ctx context.Context, accessToken, pageID string, insightsParams metadomain.PageInsightsParams) ([]metadomain.PageInsight, error) {
	params := url.Values{}
	params.Add("metric", insightsParams.Metric)
	params.Add("period", insightsParams.Period)
	if insightsParams.Since != "" {
		params.Add("since", insightsParams.Since)
	}
	if insightsParams.Until != "" {
		params.Add("until", insightsParams.Until)
	}
	params.Add("access_token", accessToken)

	var response listResponse[metadomain.PageInsight]
	if err := c.get(ctx, "get_page_insights", "/"+pageID+"/insights", params, &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return []metadomain.PageInsight{}, nil
	}

	return response.Data, nil
}

func (c *MetaClient) CreatePagePost(ctx context.Context, accessToken, pageID string, post metadomain.PagePost) (*metadomain.CreatedObject, error) {
	form := url.Values{}
	form.Add("message", post.Message)
	if post.Picture != "" {
		form.Add("picture", post.Picture)
	}
	form.Add("access_token", accessToken)

	var created metadomain.CreatedObject
	if err := c.post(ctx, "create_page_post", "/"+pageID+"/feed", form, &created); err != nil {
		return nil, err
	}

	return &created, nil
}
