// Script de carga do histórico de ranking: grava o ranking de todos os meses da base,
// do mais antigo ao mais recente, para que a variação de posição já nasça preenchida.
package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-kpi-api/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-kpi-api/infrastructure/dataset"
	"github.com/vfg2006/dealer-kpi-api/infrastructure/repository"
	"github.com/vfg2006/dealer-kpi-api/internal/catalog"
	"github.com/vfg2006/dealer-kpi-api/internal/config"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/dashboarding"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/ranking"
)

const backfillTimeout = 30 * time.Minute

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de carga do histórico de ranking...")
}

func main() {
	setupLogger()
	startTime := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if !cfg.Database.Enabled() {
		logrus.Fatal("DATABASE_URL não configurado: nada a fazer")
	}

	indicatorCatalog := catalog.Default()
	if cfg.Dataset.CatalogFile != "" {
		indicatorCatalog, err = catalog.LoadFile(cfg.Dataset.CatalogFile)
		if err != nil {
			logrus.WithError(err).Fatal("ERRO ao carregar o catálogo de indicadores")
		}
	}

	store := dataset.NewStore(cfg.Dataset.Path, dataset.NewLoader(dataset.OptionsFromConfig(cfg), indicatorCatalog))
	ds, err := store.Load()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar a base de serviços")
	}
	logrus.Infof("Base carregada: %d linhas de %s", len(ds.Records), ds.Source)

	ctx, cancel := context.WithTimeout(context.Background(), backfillTimeout)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar a tabela dealer_ranking")
	}

	dashboardService := dashboarding.NewService(cfg, store, indicatorCatalog)
	rankingService := ranking.NewDealerRankingService(
		dashboardService,
		repository.NewDealerRankingRepository(conn),
		indicatorCatalog,
		cfg.Dashboard.ExcludeOutliers,
	)

	saved, err := rankingService.Backfill(ctx)
	if err != nil {
		// meses com erro não impedem os demais
		logrus.WithError(err).Error("Carga concluída com erros")
	}

	logMonthlyTotals(ctx, conn.DB)

	logrus.Infof("Carga concluída em %v. Posições gravadas: %d", time.Since(startTime), saved)
}

// logMonthlyTotals lista quantas posições cada mês tem gravadas após a carga
func logMonthlyTotals(ctx context.Context, db *sql.DB) {
	rows, err := db.QueryContext(ctx, `
		SELECT month, COUNT(*)
		FROM dealer_ranking
		GROUP BY month
		ORDER BY to_date(month, 'MM-YYYY')
	`)
	if err != nil {
		logrus.WithError(err).Error("ERRO ao conferir os totais por mês")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var month string
		var total int
		if err := rows.Scan(&month, &total); err != nil {
			logrus.WithError(err).Error("ERRO ao ler totais por mês")
			return
		}
		logrus.Infof("Mês %s: %d posições", month, total)
	}

	if err := rows.Err(); err != nil {
		logrus.WithError(err).Error("ERRO ao percorrer totais por mês")
	}
}
