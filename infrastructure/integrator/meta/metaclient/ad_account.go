package metaclient

import (
	"context"
	"net/url"
	"strings"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
)

const adAccountFields = "id,name,account_id,account_status,business,currency,timezone_name,amount_spent,balance,capabilities"

func (c *MetaClient) ListAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", adAccountFields)
	params.Add("limit", "100")
	params.Add("access_token", accessToken)

	return listAll[metadomain.AdAccount](ctx, c, "list_ad_accounts", "/me/adaccounts", params)
}

func (c *MetaClient) GetAdAccount(ctx context.Context, accessToken, accountID string) (*metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", adAccountFields)
	params.Add("access_token", accessToken)

	var account metadomain.AdAccount
	if err := c.get(ctx, "get_ad_account", "/"+actID(accountID), params, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

// actID normaliza o id da conta de anúncio para o formato act_{id}
func actID(accountID string) string {
	return "act_" + strings.TrimPrefix(accountID, "act_")
}
