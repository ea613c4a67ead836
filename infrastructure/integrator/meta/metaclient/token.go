package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
)

// validade usada quando a Graph API não informa expires_in
const defaultLongLivedTokenTTL = 60 * 24 * time.Hour

func (c *MetaClient) ExchangeCode(ctx context.Context, creds metadomain.AppCredentials, redirectURI, code string) (*metadomain.TokenResponse, error) {
	params := url.Values{}
	params.Add("client_id", creds.AppID)
	params.Add("client_secret", creds.AppSecret)
	params.Add("redirect_uri", redirectURI)
	params.Add("code", code)

	var tokenResp metadomain.TokenResponse
	if err := c.get(ctx, "exchange_code", "/oauth/access_token", params, &tokenResp); err != nil {
		return nil, err
	}

	if tokenResp.AccessToken == "" {
		return nil, &ProviderError{Message: "token retornado pela API é vazio"}
	}

	return &tokenResp, nil
}

func (c *MetaClient) ExchangeLongLivedToken(ctx context.Context, creds metadomain.AppCredentials, shortLivedToken string) (*metadomain.TokenResponse, error) {
	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", creds.AppID)
	params.Add("client_secret", creds.AppSecret)
	params.Add("fb_exchange_token", shortLivedToken)

	var tokenResp metadomain.TokenResponse
	if err := c.get(ctx, "exchange_long_lived_token", "/oauth/access_token", params, &tokenResp); err != nil {
		return nil, err
	}

	if tokenResp.AccessToken == "" {
		return nil, &ProviderError{Message: "token retornado pela API é vazio"}
	}

	logrus.Infof("Token de longa duração obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// ValidateAppCredentials confirma o par app id / secret pedindo um app access token
func (c *MetaClient) ValidateAppCredentials(ctx context.Context, creds metadomain.AppCredentials) error {
	params := url.Values{}
	params.Add("client_id", creds.AppID)
	params.Add("client_secret", creds.AppSecret)
	params.Add("grant_type", "client_credentials")

	var tokenResp metadomain.TokenResponse
	if err := c.get(ctx, "validate_app_credentials", "/oauth/access_token", params, &tokenResp); err != nil {
		return err
	}

	if tokenResp.AccessToken == "" {
		return &ProviderError{Message: "credenciais do app não retornaram token"}
	}

	return nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// CalculateTokenExpiration calcula a data de expiração a partir de expires_in.
// Sem expires_in assume a validade padrão de um token de longa duração.
func CalculateTokenExpiration(now time.Time, expiresIn int64) time.Time {
	if expiresIn <= 0 {
		return now.Add(defaultLongLivedTokenTTL)
	}
	return now.Add(time.Duration(expiresIn) * time.Second)
}
