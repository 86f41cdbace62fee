package handler

import (
	"net/http"

	"github.com/vfg2006/dealer-kpi-api/internal/api/handler/router"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/dashboarding"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/ranking"
	"github.com/vfg2006/dealer-kpi-api/pkg/middleware"
)

func Healthcheck(source dashboarding.DatasetSource) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(source),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, options DashboardOptions) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service, options),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/export",
			Method:      http.MethodGet,
			Handler:     ExportDashboard(service, options),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/indicators",
			Method:      http.MethodGet,
			Handler:     ListIndicators(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dealers",
			Method:      http.MethodGet,
			Handler:     ListFilterOptions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/periods",
			Method:      http.MethodGet,
			Handler:     GetAvailablePeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func RankingHistory(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ranking/history",
			Method:      http.MethodGet,
			Handler:     GetRankingHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dataset(refresher DatasetRefresher, source dashboarding.DatasetSource) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dataset/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshDataset(refresher, source),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
