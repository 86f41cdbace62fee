package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-kpi-api/internal/api/handler"
	"github.com/vfg2006/dealer-kpi-api/internal/api/handler/router"
	"github.com/vfg2006/dealer-kpi-api/internal/config"
	"github.com/vfg2006/dealer-kpi-api/internal/scheduler"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/authenticating"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/dashboarding"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/ranking"
	"github.com/vfg2006/dealer-kpi-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// New monta as rotas da API. rankingService e rankingSnapshotService podem ser nil
// quando o histórico de ranking está desligado (sem DATABASE_URL).
func New(
	config *config.Config,
	source dashboarding.DatasetSource,
	dashboardService dashboarding.Dashboarder,
	rankingService ranking.RankingService,
	validator authenticating.TokenValidator,
	datasetRefreshService *scheduler.DatasetRefreshService,
	rankingSnapshotService *scheduler.RankingSnapshotService,
) (*Server, error) {
	if dashboardService == nil || validator == nil {
		return nil, fmt.Errorf("dashboard service e validador de token são obrigatórios")
	}

	// interfaces só recebem serviços existentes
	cronServices := handler.CronJobServices{}
	var refresher handler.DatasetRefresher
	if datasetRefreshService != nil {
		cronServices.DatasetRefreshService = datasetRefreshService
		refresher = datasetRefreshService
	}
	if rankingSnapshotService != nil {
		cronServices.RankingSnapshotService = rankingSnapshotService
	}

	dashboardOptions := handler.DashboardOptions{
		DefaultIndicator: config.Dashboard.DefaultIndicator,
		ExcludeOutliers:  config.Dashboard.ExcludeOutliers,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(source)...),
		router.WithRoutes(handler.Dashboard(dashboardService, dashboardOptions)...),
		router.WithRoutes(handler.RankingHistory(rankingService)...),
		router.WithRoutes(handler.Dataset(refresher, source)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(validator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run atende até receber SIGINT/SIGTERM ou até ctx ser cancelado, e então desliga com prazo.
// Um erro de escuta (porta ocupada, por exemplo) encerra Run imediatamente.
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err, ok := <-listenErr:
		if ok {
			return fmt.Errorf("servidor HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Sinal de término recebido")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
