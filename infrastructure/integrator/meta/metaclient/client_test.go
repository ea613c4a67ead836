package metaclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-manager-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *MetaClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.Meta{URL: server.URL, Timeout: time.Second}).(*MetaClient)
}

func TestMetaClient_ErroDoProvedor(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190,"error_subcode":463,"fbtrace_id":"abc"}}`)
	})

	_, err := client.ListAdAccounts(context.Background(), "token")
	require.Error(t, err)

	providerErr, ok := AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, 190, providerErr.Code)
	assert.Equal(t, 463, providerErr.Subcode)
	assert.Equal(t, "abc", providerErr.FBTraceID)
	assert.Equal(t, http.StatusBadRequest, providerErr.StatusCode)
	assert.True(t, providerErr.IsTokenExpired())
	assert.Equal(t, "Meta API Error 190: Invalid OAuth access token. (463)", providerErr.Error())
}

func TestMetaClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(config.Meta{URL: server.URL, Timeout: 50 * time.Millisecond})

	_, err := client.GetPage(context.Background(), "token", "123")
	require.Error(t, err)

	_, ok := AsTransportError(err)
	assert.True(t, ok)
	_, ok = AsProviderError(err)
	assert.False(t, ok)
}

func TestMetaClient_CreateCampaign(t *testing.T) {
	var received url.Values
	var path string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		received = r.PostForm
		path = r.URL.Path
		_, _ = io.WriteString(w, `{"id":"120200000"}`)
	})

	budget := 50.0
	start := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	created, err := client.CreateCampaign(context.Background(), "token", "act_987", metadomain.CampaignInput{
		Name:       "Black Friday",
		Objective:  "OUTCOME_SALES",
		BudgetType: "DAILY",
		Budget:     &budget,
		StartTime:  &start,
	})
	require.NoError(t, err)

	assert.Equal(t, "120200000", created.ID)
	assert.Equal(t, "/act_987/campaigns", path)
	assert.Equal(t, "5000", received.Get("daily_budget"))
	assert.Empty(t, received.Get("lifetime_budget"))
	assert.Equal(t, "PAUSED", received.Get("status"))
	assert.Equal(t, "[]", received.Get("special_ad_categories"))
	assert.Equal(t, "2026-01-10T12:00:00Z", received.Get("start_time"))
}

func TestMetaClient_CreateCampaign_OrcamentoVitalicio(t *testing.T) {
	var received url.Values

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		received = r.PostForm
		_, _ = io.WriteString(w, `{"id":"1"}`)
	})

	budget := 99.99
	_, err := client.CreateCampaign(context.Background(), "token", "987", metadomain.CampaignInput{
		Name:       "Lançamento",
		Objective:  "OUTCOME_TRAFFIC",
		Status:     "ACTIVE",
		BudgetType: "LIFETIME",
		Budget:     &budget,
	})
	require.NoError(t, err)

	assert.Equal(t, "9999", received.Get("lifetime_budget"))
	assert.Equal(t, "ACTIVE", received.Get("status"))
}

func TestMetaClient_GetCampaignInsights(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		validate func(t *testing.T, insight *metadomain.CampaignInsight, err error)
	}{
		{
			name: "sem dados no período",
			body: `{"data":[]}`,
			validate: func(t *testing.T, insight *metadomain.CampaignInsight, err error) {
				assert.NoError(t, err)
				assert.Nil(t, insight)
			},
		},
		{
			name: "primeira linha retornada",
			body: `{"data":[{"impressions":"1000","clicks":"50","spend":"25.50","conversions":[{"action_type":"purchase","value":"3"}],"date_start":"2026-01-01","date_stop":"2026-01-01"}]}`,
			validate: func(t *testing.T, insight *metadomain.CampaignInsight, err error) {
				require.NoError(t, err)
				require.NotNil(t, insight)
				assert.Equal(t, "1000", insight.Impressions)
				assert.Equal(t, float64(3), metadomain.SumActions(insight.Conversions))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/c1/insights", r.URL.Path)
				assert.Equal(t, `{"since":"2026-01-01","until":"2026-01-01"}`, r.URL.Query().Get("time_range"))
				_, _ = io.WriteString(w, tt.body)
			})

			insight, err := client.GetCampaignInsights(context.Background(), "token", "c1", &metadomain.TimeRange{Since: "2026-01-01", Until: "2026-01-01"})
			tt.validate(t, insight, err)
		})
	}
}

func TestMetaClient_ListPages_Paginacao(t *testing.T) {
	var serverURL string
	calls := 0

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("after") == "" {
			_, _ = io.WriteString(w, `{"data":[{"id":"p1","name":"Loja"}],"paging":{"next":"`+serverURL+`/me/accounts?after=x"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"data":[{"id":"p2","name":"Blog"}],"paging":{}}`)
	})
	serverURL = client.baseURL

	pages, err := client.ListPages(context.Background(), "token")
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	require.Len(t, pages, 2)
	assert.Equal(t, "p1", pages[0].ID)
	assert.Equal(t, "p2", pages[1].ID)
}

func TestMetaClient_ExchangeLongLivedToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/oauth/access_token", r.URL.Path)
		assert.Equal(t, "fb_exchange_token", query.Get("grant_type"))
		assert.Equal(t, "short", query.Get("fb_exchange_token"))
		_, _ = io.WriteString(w, `{"access_token":"long","token_type":"bearer","expires_in":5184000}`)
	})

	resp, err := client.ExchangeLongLivedToken(context.Background(), metadomain.AppCredentials{AppID: "1", AppSecret: "s"}, "short")
	require.NoError(t, err)

	assert.Equal(t, "long", resp.AccessToken)
	assert.Equal(t, int64(5184000), resp.ExpiresIn)
}

func TestMetaClient_TokenVazio(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	err := client.ValidateAppCredentials(context.Background(), metadomain.AppCredentials{AppID: "1", AppSecret: "s"})
	assert.Error(t, err)
}

func TestCalculateTokenExpiration(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(time.Hour), CalculateTokenExpiration(now, 3600))
	assert.Equal(t, now.Add(60*24*time.Hour), CalculateTokenExpiration(now, 0))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1 dias, 2 horas e 3 minutos", FormatDuration(int64((26*time.Hour+3*time.Minute)/time.Second)))
}
