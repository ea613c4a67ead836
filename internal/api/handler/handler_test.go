package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-manager-api/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/internal/scheduler"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/account"
	accountmocks "github.com/vfg2006/meta-ads-manager-api/internal/usecases/account/mocks"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/analyzing"
	analyticsmocks "github.com/vfg2006/meta-ads-manager-api/internal/usecases/analyzing/mocks"
	campaignmocks "github.com/vfg2006/meta-ads-manager-api/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/connecting"
	connectmocks "github.com/vfg2006/meta-ads-manager-api/internal/usecases/connecting/mocks"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-manager-api/pkg/middleware"
)

var noLimits = middleware.NewRateLimiters(config.RateLimit{Enabled: false})

func asUser(role domain.UserRole, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := &domain.Claims{UserID: "u1", UserRole: role}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, claims)))
	})
}

func serve(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestMetaCallback(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		setup    func(m *connectmocks.MockConnector)
		location string
	}{
		{
			name:  "Conexão concluída",
			query: "?code=abc&state=xyz",
			setup: func(m *connectmocks.MockConnector) {
				m.EXPECT().CompleteAuthorization(gomock.Any(), "abc", "xyz").Return(&domain.ConnectionResult{
					Accounts: []*domain.MetaAccount{{ID: "a1"}, {ID: "a2"}},
					Pages:    []*domain.FacebookPage{{ID: "p1"}},
				}, nil)
			},
			location: "http://app.local/dashboard?connected=true&accounts=2&pages=1",
		},
		{
			name:     "Usuário recusou no Meta",
			query:    "?error=access_denied&error_description=Permissions+error",
			location: "http://app.local/dashboard?error=oauth_error&details=Permissions+error",
		},
		{
			name:     "Sem code",
			query:    "?state=xyz",
			location: "http://app.local/dashboard?error=invalid_request",
		},
		{
			name:  "State inválido",
			query: "?code=abc&state=lixo",
			setup: func(m *connectmocks.MockConnector) {
				m.EXPECT().CompleteAuthorization(gomock.Any(), "abc", "lixo").
					Return(nil, connecting.NewConnectError(connecting.ErrInvalidState, apiErrors.ErrInvalidState, ""))
			},
			location: "http://app.local/dashboard?error=connection_failed",
		},
		{
			name:  "Meta recusou a troca do code",
			query: "?code=abc&state=xyz",
			setup: func(m *connectmocks.MockConnector) {
				m.EXPECT().CompleteAuthorization(gomock.Any(), "abc", "xyz").
					Return(nil, connecting.NewConnectError(
						errors.Join(connecting.ErrTokenExchange, &metaclient.ProviderError{Code: 100, Message: "code expired"}),
						apiErrors.ErrExternalService, ""))
			},
			location: "http://app.local/dashboard?error=oauth_error&details=Par%C3%A2metro+inv%C3%A1lido+enviado+ao+Meta.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			connector := connectmocks.NewMockConnector(ctrl)
			if tt.setup != nil {
				tt.setup(connector)
			}

			rec := serve(t, MetaCallback(connector, "http://app.local/"), http.MethodGet, "/api/facebook/callback"+tt.query, "")

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestMetaConnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	connector := connectmocks.NewMockConnector(ctrl)

	connector.EXPECT().BeginAuthorization(gomock.Any(), "u1", "app-1").Return("https://www.facebook.com/dialog/oauth?client_id=1", nil)

	rec := serve(t, asUser(domain.UserRoleUser, MetaConnect(connector)), http.MethodGet, "/api/auth/meta/connect?metaAppId=app-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authUrl":"https://www.facebook.com/dialog/oauth?client_id=1"}`, rec.Body.String())
}

func TestCreateCampaign_Validacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := campaignmocks.NewMockCampaignService(ctrl)

	rec := serve(t, asUser(domain.UserRoleUser, CreateCampaign(service)), http.MethodPost, "/api/campaigns",
		`{"metaAccountId":"nao-e-uuid","name":"","objective":"OUTCOME_FAKE","budget":0.5}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Code    string `json:"code"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apiErrors.ErrInvalidRequest, body.Code)

	fields := make([]string, 0, len(body.Details))
	for _, d := range body.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"metaAccountId", "name", "objective", "budget"}, fields)
}

func TestCreateCampaign_JSONInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)

	rec := serve(t, asUser(domain.UserRoleUser, CreateCampaign(campaignmocks.NewMockCampaignService(ctrl))), http.MethodPost, "/api/campaigns", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
}

func TestGetAccount_ErroDoMeta(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := accountmocks.NewMockAccountService(ctrl)

	providerErr := &metaclient.ProviderError{Code: 190, Message: "Error validating access token", Type: "OAuthException"}
	service.EXPECT().GetDetails(gomock.Any(), "acc-1", "u1").
		Return(nil, account.NewAccountErrorWithID(errors.Join(account.ErrMetaIntegration, providerErr), apiErrors.ErrExternalService, "acc-1", ""))

	rt := router.New(router.WithRoutes(router.Route{
		Path:    "/api/accounts/:id",
		Method:  http.MethodGet,
		Handler: asUser(domain.UserRoleUser, GetAccount(service)),
	}))

	rec := serve(t, rt, http.MethodGet, "/api/accounts/acc-1", "")

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apiErrors.ErrExternalService, body.Code)
	assert.Equal(t, "Token de acesso expirado ou inválido. Reconecte sua conta.", body.Message)
	assert.Equal(t, float64(190), body.Details["providerCode"])
	assert.Equal(t, true, body.Details["tokenExpired"])
}

func TestSyncCampaignMetrics_Falhas(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "Campanha não encontrada",
			err:    analyzing.NewAnalyticsError(analyzing.ErrCampaignNotFound, apiErrors.ErrNotFound, "c1"),
			status: http.StatusNotFound,
			code:   apiErrors.ErrNotFound,
		},
		{
			name:   "Falha de rede",
			err:    &metaclient.TransportError{Op: "campaign_insights", Err: errors.New("timeout")},
			status: http.StatusServiceUnavailable,
			code:   apiErrors.ErrCommunication,
		},
		{
			name:   "Erro inesperado",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := analyticsmocks.NewMockAnalyticsService(ctrl)
			service.EXPECT().SyncCampaignMetrics(gomock.Any(), "u1", "c1").Return(nil, tt.err)

			rt := router.New(router.WithRoutes(Analytics(service, noLimits)...))

			rec := serve(t, asUser(domain.UserRoleUser, rt), http.MethodPost, "/api/analytics/campaigns/c1/sync", "")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeAPIError(t, rec).Code)
		})
	}
}

func TestGetMetrics(t *testing.T) {
	t.Run("Repassa filtros da query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := analyticsmocks.NewMockAnalyticsService(ctrl)

		service.EXPECT().GetMetrics(gomock.Any(), "u1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, q domain.MetricsQuery) ([]*domain.Metric, error) {
				assert.Equal(t, []string{"c1", "c2"}, q.CampaignIDs)
				assert.Equal(t, uint64(10), q.Limit)
				require.NotNil(t, q.StartDate)
				assert.Equal(t, "2026-04-01", q.StartDate.Format("2006-01-02"))
				return []*domain.Metric{}, nil
			})

		rec := serve(t, asUser(domain.UserRoleUser, GetMetrics(service)), http.MethodGet,
			"/api/analytics/metrics?campaignIds=c1,%20c2&startDate=2026-04-01&limit=10", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Data inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		rec := serve(t, asUser(domain.UserRoleUser, GetMetrics(analyticsmocks.NewMockAnalyticsService(ctrl))), http.MethodGet,
			"/api/analytics/metrics?startDate=01/04/2026", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}

func TestBulkCampaignStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := campaignmocks.NewMockCampaignService(ctrl)

	ids := []string{"5f0c6c7e-8d7e-4a55-9a5b-0c2f6f1d2a11", "5f0c6c7e-8d7e-4a55-9a5b-0c2f6f1d2a12"}
	service.EXPECT().BulkUpdateStatus(gomock.Any(), "u1", domain.BulkCampaignActionRequest{CampaignIDs: ids, Action: domain.BulkActionPause}).
		Return([]domain.BulkActionResult{
			{CampaignID: ids[0], Success: true},
			{CampaignID: ids[1], Success: false, Error: "campaign not found"},
		})

	rec := serve(t, asUser(domain.UserRoleUser, BulkCampaignStatus(service)), http.MethodPost, "/api/campaigns/bulk-status",
		`{"campaignIds":["`+ids[0]+`","`+ids[1]+`"],"action":"pause"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Succeeded int `json:"succeeded"`
		Failed    int `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Succeeded)
	assert.Equal(t, 1, body.Failed)
}

type fakeRunner struct {
	err       error
	triggered []string
}

func (f *fakeRunner) Trigger(name string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.triggered, nil
}

func (f *fakeRunner) Status() []scheduler.JobStatus {
	return []scheduler.JobStatus{{Name: "metrics", Enabled: true}}
}

func TestCronJobs(t *testing.T) {
	tests := []struct {
		name   string
		role   domain.UserRole
		runner *fakeRunner
		status int
		code   string
	}{
		{
			name:   "Admin dispara job",
			role:   domain.UserRoleAdmin,
			runner: &fakeRunner{triggered: []string{"metrics"}},
			status: http.StatusAccepted,
		},
		{
			name:   "Usuário comum",
			role:   domain.UserRoleUser,
			runner: &fakeRunner{},
			status: http.StatusForbidden,
			code:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:   "Tipo desconhecido",
			role:   domain.UserRoleAdmin,
			runner: &fakeRunner{err: scheduler.ErrUnknownJob},
			status: http.StatusBadRequest,
			code:   apiErrors.ErrInvalidRequest,
		},
		{
			name:   "Job em execução",
			role:   domain.UserRoleAdmin,
			runner: &fakeRunner{err: scheduler.ErrJobRunning},
			status: http.StatusConflict,
			code:   apiErrors.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := router.New(router.WithRoutes(CronJobs(tt.runner)...))

			rec := serve(t, asUser(tt.role, rt), http.MethodPost, "/api/cron/metrics/run", "")

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeAPIError(t, rec).Code)
			}
		})
	}

	t.Run("Status", func(t *testing.T) {
		rt := router.New(router.WithRoutes(CronJobs(&fakeRunner{})...))

		rec := serve(t, asUser(domain.UserRoleAdmin, rt), http.MethodGet, "/api/cron/status", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"metrics"`)
	})
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		wantStatus int
		wantDB     string
	}{
		{name: "banco respondendo", db: fakePinger{}, wantStatus: http.StatusOK, wantDB: "up"},
		{name: "banco fora do ar", db: fakePinger{err: errors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable, wantDB: "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, HealthcheckHandler(tt.db), http.MethodGet, "/healthcheck", "")

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body healthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDB, body.Database)
			assert.NotEmpty(t, body.Timestamp)
		})
	}
}
