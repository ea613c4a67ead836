package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultTimeout = 30 * time.Second
	maxPages       = 10
)

type Client interface {
	ExchangeCode(ctx context.Context, creds metadomain.AppCredentials, redirectURI, code string) (*metadomain.TokenResponse, error)
	ExchangeLongLivedToken(ctx context.Context, creds metadomain.AppCredentials, shortLivedToken string) (*metadomain.TokenResponse, error)
	ValidateAppCredentials(ctx context.Context, creds metadomain.AppCredentials) error
	ListAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error)
	GetAdAccount(ctx context.Context, accessToken, accountID string) (*metadomain.AdAccount, error)
	ListPages(ctx context.Context, accessToken string) ([]metadomain.Page, error)
	GetPage(ctx context.Context, accessToken, pageID string) (*metadomain.Page, error)
	GetPageInsights(ctx context.Context, accessToken, pageID string, params metadomain.PageInsightsParams) ([]metadomain.PageInsight, error)
	CreatePagePost(ctx context.Context, accessToken, pageID string, post metadomain.PagePost) (*metadomain.CreatedObject, error)
	CreateCampaign(ctx context.Context, accessToken, accountID string, input metadomain.CampaignInput) (*metadomain.CreatedObject, error)
	GetCampaignInsights(ctx context.Context, accessToken, campaignID string, timeRange *metadomain.TimeRange) (*metadomain.CampaignInsight, error)
	UpdateCampaignStatus(ctx context.Context, accessToken, campaignID, status string) error
}

type MetaClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.Meta) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &MetaClient{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *MetaClient) get(ctx context.Context, op, endpoint string, params url.Values, out any) error {
	requestURL := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		requestURL = c.baseURL + endpoint
	}
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	return c.do(op, req, out)
}

func (c *MetaClient) post(ctx context.Context, op, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(op, req, out)
}

// do executa a requisição sem retentativas e converte falhas em
// *TransportError (rede, timeout) ou *ProviderError (erro retornado pelo Meta)
func (c *MetaClient) do(op string, req *http.Request, out any) error {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveGraphAPICall(op, "transport_error", time.Since(start))
		logrus.WithFields(logrus.Fields{
			"operation": op,
			"error":     err.Error(),
		}).Error("meta: falha de comunicação com a Graph API")
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveGraphAPICall(op, "transport_error", time.Since(start))
		return &TransportError{Op: op, Err: fmt.Errorf("erro ao ler resposta: %w", err)}
	}

	if providerErr := parseProviderError(resp.StatusCode, body); providerErr != nil {
		metrics.ObserveGraphAPICall(op, "provider_error", time.Since(start))
		logrus.WithFields(logrus.Fields{
			"operation":  op,
			"code":       providerErr.Code,
			"subcode":    providerErr.Subcode,
			"fbtrace_id": providerErr.FBTraceID,
		}).Warn("meta: Graph API retornou erro")
		return providerErr
	}

	metrics.ObserveGraphAPICall(op, "success", time.Since(start))

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ProviderError{
			Message:    fmt.Sprintf("resposta inválida da Graph API: %s", err.Error()),
			StatusCode: resp.StatusCode,
		}
	}

	return nil
}

func parseProviderError(statusCode int, body []byte) *ProviderError {
	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
		return &ProviderError{
			Code:       errResp.Error.Code,
			Message:    errResp.Error.Message,
			Subcode:    errResp.Error.ErrorSubcode,
			Type:       errResp.Error.Type,
			FBTraceID:  errResp.Error.FBTraceID,
			StatusCode: statusCode,
		}
	}

	if statusCode >= http.StatusBadRequest {
		return &ProviderError{
			Message:    http.StatusText(statusCode),
			StatusCode: statusCode,
		}
	}

	return nil
}

type listResponse[T any] struct {
	Data   []T               `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// listAll segue a paginação da Graph API até maxPages páginas
func listAll[T any](ctx context.Context, c *MetaClient, op, path string, params url.Values) ([]T, error) {
	items := make([]T, 0)
	endpoint := path

	for page := 0; page < maxPages && endpoint != ""; page++ {
		var response listResponse[T]
		if err := c.get(ctx, op, endpoint, params, &response); err != nil {
			return nil, err
		}

		items = append(items, response.Data...)

		// a URL de próxima página já carrega todos os parâmetros
		endpoint = response.Paging.Next
		params = nil
	}

	return items, nil
}
