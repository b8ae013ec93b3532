package handler

import (
	"net/http"

	"github.com/vfg2006/adlens-api/infrastructure/repository"
	"github.com/vfg2006/adlens-api/internal/api/handler/router"
	"github.com/vfg2006/adlens-api/internal/usecases/authenticating"
	"github.com/vfg2006/adlens-api/internal/usecases/connecting"
	"github.com/vfg2006/adlens-api/internal/usecases/insighting"
	"github.com/vfg2006/adlens-api/internal/usecases/refreshing"
	"github.com/vfg2006/adlens-api/internal/usecases/syncing"
	"github.com/vfg2006/adlens-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AdAccounts(
	connectService connecting.Connector,
	refreshService refreshing.Refresher,
	accountRepository repository.AdAccountRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     AdAccountList(accountRepository),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/connect",
			Method:      http.MethodPost,
			Handler:     ConnectAdAccount(connectService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/accounts/:id/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshAdAccount(refreshService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Sync(campaignService syncing.CampaignSyncer, insightService syncing.InsightSyncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/campaigns/sync",
			Method:      http.MethodPost,
			Handler:     SyncCampaigns(campaignService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/campaigns/:id/insights/sync",
			Method:      http.MethodPost,
			Handler:     SyncInsights(insightService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboardOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/performance",
			Method:      http.MethodGet,
			Handler:     GetCampaignPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
