package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-kpi-api/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-kpi-api/infrastructure/dataset"
	"github.com/vfg2006/dealer-kpi-api/infrastructure/repository"
	"github.com/vfg2006/dealer-kpi-api/internal/api"
	"github.com/vfg2006/dealer-kpi-api/internal/catalog"
	"github.com/vfg2006/dealer-kpi-api/internal/config"
	"github.com/vfg2006/dealer-kpi-api/internal/scheduler"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/authenticating"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/dashboarding"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/ranking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	indicatorCatalog := loadCatalog(cfg)

	// A carga inicial é obrigatória: sem base não há painel
	loader := dataset.NewLoader(dataset.OptionsFromConfig(cfg), indicatorCatalog)
	store := dataset.NewStore(cfg.Dataset.Path, loader)
	ds, err := store.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar a base de serviços")
	}
	logrus.WithFields(logrus.Fields{
		"source":         ds.Source,
		"rows":           ds.Report.Rows,
		"invalid_amount": ds.Report.InvalidAmounts,
		"invalid_date":   ds.Report.InvalidDates,
		"encoding":       ds.Report.Encoding,
		"delimiter":      ds.Report.Delimiter,
	}).Info("Base de serviços carregada")

	dashboardService := dashboarding.NewService(cfg, store, indicatorCatalog)
	validator := authenticating.NewService(cfg)
	if !validator.Enabled() {
		logrus.Warn("AUTH_SECRET vazio: autenticação desligada, todas as rotas estão abertas")
	}

	datasetRefreshService := scheduler.NewDatasetRefreshService(store, cfg)
	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga da base")
	} else {
		logrus.Info("Agendador de recarga da base iniciado com sucesso")
	}

	// O histórico de ranking só existe com banco configurado
	var rankingService ranking.RankingService
	var rankingSnapshotService *scheduler.RankingSnapshotService
	if cfg.Database.Enabled() {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		dealerRankingRepo := repository.NewDealerRankingRepository(pgConn)
		rankingService = ranking.NewDealerRankingService(dashboardService, dealerRankingRepo, indicatorCatalog, cfg.Dashboard.ExcludeOutliers)

		rankingSnapshotService = scheduler.NewRankingSnapshotService(rankingService, cfg)
		if err := rankingSnapshotService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot do ranking")
		} else {
			logrus.Info("Agendador de snapshot do ranking iniciado com sucesso")
		}
	} else {
		logrus.Info("DATABASE_URL vazio: histórico de ranking desativado")
	}

	server, err := api.New(
		cfg,
		store,
		dashboardService,
		rankingService,
		validator,
		datasetRefreshService,
		rankingSnapshotService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// loadCatalog usa o arquivo de catálogo quando configurado; sem ele, a tabela padrão
func loadCatalog(cfg *config.Config) *catalog.Catalog {
	if cfg.Dataset.CatalogFile == "" {
		return catalog.Default()
	}

	c, err := catalog.LoadFile(cfg.Dataset.CatalogFile)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o catálogo de indicadores")
	}

	logrus.WithField("file", cfg.Dataset.CatalogFile).Info("Catálogo de indicadores carregado")
	return c
}

// pgconn cria a conexão com o banco do histórico e garante o schema
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar as tabelas do histórico de ranking")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
