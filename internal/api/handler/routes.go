package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-manager-api/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/account"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/appregistering"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/connecting"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/publishing"
	"github.com/vfg2006/meta-ads-manager-api/pkg/metrics"
	"github.com/vfg2006/meta-ads-manager-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, limiters *middleware.RateLimiters) []router.Route {
	return []router.Route{
		{
			Path:        "/api/auth/register",
			Method:      http.MethodPost,
			Handler:     Register(service),
			Middlewares: middlewares{limiters.Auth},
		},
		{
			Path:        "/api/auth/login",
			Method:      http.MethodPost,
			Handler:     Login(service),
			Middlewares: middlewares{limiters.Auth},
		},
		{
			Path:        "/api/auth/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{limiters.API},
		},
	}
}

// OAuth expõe o fluxo de conexão nos dois prefixos usados pelo frontend
func OAuth(service connecting.Connector, clientURL string, limiters *middleware.RateLimiters) []router.Route {
	return []router.Route{
		{
			Path:        "/api/auth/meta/connect",
			Method:      http.MethodGet,
			Handler:     MetaConnect(service),
			Middlewares: middlewares{limiters.API},
		},
		{
			Path:    "/api/auth/meta/callback",
			Method:  http.MethodGet,
			Handler: MetaCallback(service, clientURL),
		},
		{
			Path:        "/api/facebook/auth",
			Method:      http.MethodGet,
			Handler:     MetaConnect(service),
			Middlewares: middlewares{limiters.API},
		},
		{
			Path:    "/api/facebook/callback",
			Method:  http.MethodGet,
			Handler: MetaCallback(service, clientURL),
		},
	}
}

func Pages(service publishing.PageService, connector connecting.Connector, limiters *middleware.RateLimiters) []router.Route {
	return []router.Route{
		{
			Path:        "/api/facebook/pages",
			Method:      http.MethodGet,
			Handler:     ListPages(service),
			Middlewares: middlewares{limiters.API},
		},
		{
			Path:        "/api/facebook/pages/:pageId/insights",
			Method:      http.MethodGet,
			Handler:     GetPageInsights(service),
			Middlewares: middlewares{limiters.API},
		},
		{
			Path:        "/api/facebook/pages/:pageId/posts",
			Method:      http.MethodPost,
			Handler:     CreatePagePost(service),
			Middlewares: middlewares{limiters.API, limiters.Meta},
		},
		{
			Path:        "/api/facebook/pages/:pageId/sync",
			Method:      http.MethodPost,
			Handler:     SyncPages(service),
			Middlewares: middlewares{limiters.API, limiters.Meta},
		},
		{
			Path:        "/api/facebook/pages/:pageId",
			Method:      http.MethodDelete,
			Handler:     DisconnectPage(connector),
			Middlewares: middlewares{limiters.API},
		},
	}
}

func Accounts(service account.AccountService, connector connecting.Connector, limiters *middleware.RateLimiters) []router.Route {
	return []router.Route{
		{
			Path:        "/api/accounts",
			Method:      http.MethodGet,
			Handler:     ListAccounts(service),
			Middlewares: middlewares{limiters.API},
		},
		{
			Path:        "/api/accounts/:id",
			Method:      http.MethodGet,
			Handler:     GetAccount(service),
			Middlewares: middlewares{limiters.API},
		},
		{
			Path:        "/api/accounts/:id/sync",
			Method:      http.MethodPost,
			Handler:     SyncAccount(service),
			Middlewares: middlewares{limiters.API, limiters.Meta},
		},
		{
			Path:        "/api/accounts/:id",
			Method:      http.MethodDelete,
			Handler:     DisconnectAccount(connector),
			Middlewares: middlewares{limiters.API},
		},
	}
}

func MetaApps(service appregistering.Registrar, limiters *middleware.RateLimiters) []router.Route {
	return []router.Route{
		{
			Path:        "/api/meta-apps",
			Method:      http.MethodPost,
			Handler:     CreateMetaApp(service),
			Middlewares: middlewares{limiters.API, limiters.Meta},
		},
		{
			Path:        "/api/meta-apps",
			Method:      http.MethodGet,
			Handler:     ListMetaApps(service),
			Middlewares: middlewares{limiters.API},
		},
		{
			Path:        "/api/meta-apps/:id",
			Method:      http.MethodGet,
			Handler:     GetMetaApp(service),
			Middlewares: middlewares{limiters.API},
		},
		{
			Path:        "/api/meta-apps/:id",
			Method:      http.MethodPut,
			Handler:     UpdateMetaApp(service),
			Middlewares: middlewares{limiters.API, limiters.Meta},
		},
		{
			Path:        "/api/meta-apps/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteMetaApp(service),
			Middlewares: middlewares{limiters.API},
		},
		{
			Path:        "/api/meta-apps/:id/verify",
			Method:      http.MethodPost,
			Handler:     VerifyMetaApp(service),
			Middlewares: middlewares{limiters.API, limiters.Meta},
		},
	}
}

func Campaigns(service campaigning.CampaignService, limiters *middleware.RateLimiters) []router.Route {
	return []router.Route{
		{
			Path:        "/api/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: middlewares{limiters.API, limiters.Meta},
		},
		{
			Path:        "/api/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: middlewares{limiters.API},
		},
		{
			Path:        "/api/campaigns/bulk-status",
			Method:      http.MethodPost,
			Handler:     BulkCampaignStatus(service),
			Middlewares: middlewares{limiters.API, limiters.Meta},
		},
		{
			Path:        "/api/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: middlewares{limiters.API},
		},
		{
			Path:        "/api/campaigns/:id/status",
			Method:      http.MethodPatch,
			Handler:     UpdateCampaignStatus(service),
			Middlewares: middlewares{limiters.API, limiters.Meta},
		},
	}
}

func Analytics(service analyzing.AnalyticsService, limiters *middleware.RateLimiters) []router.Route {
	return []router.Route{
		{
			Path:        "/api/analytics/metrics",
			Method:      http.MethodGet,
			Handler:     GetMetrics(service),
			Middlewares: middlewares{limiters.API},
		},
		{
			Path:        "/api/analytics/campaigns/:campaignId/sync",
			Method:      http.MethodPost,
			Handler:     SyncCampaignMetrics(service),
			Middlewares: middlewares{limiters.API, limiters.Meta},
		},
	}
}

func CronJobs(runner JobRunner) []router.Route {
	return []router.Route{
		{
			Path:        "/api/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(runner),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/api/cron/status",
			Method:      http.MethodGet,
			Handler:     CronStatus(runner),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
