package repository

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dealer-kpi-api/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
)

func setupDealerRankingTest(t *testing.T) (DealerRankingRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewDealerRankingRepository(&postgres.Connection{DB: db}), mock
}

var rankingRowColumns = []string{
	"id", "run_id", "indicator", "month", "dealer_key", "value",
	"position", "position_change", "previous_position", "created_at", "updated_at",
}

func TestDealerRankingRepository_GetRanking(t *testing.T) {
	repo, mock := setupDealerRankingTest(t)

	older := time.Date(2024, 2, 1, 6, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM dealer_ranking dr WHERE dr.indicator = $1 AND dr.month = $2 ORDER BY dr.position ASC")).
		WithArgs("Faturamento", "01-2024").
		WillReturnRows(sqlmock.NewRows(rankingRowColumns).
			AddRow(1, "run1", "Faturamento", "01-2024", "DLR01", 2500.0, 1, 1, 2, older, newer).
			AddRow(2, "run1", "Faturamento", "01-2024", "DLR02", 500.0, 2, -1, 1, older, older))

	got, err := repo.GetRanking("Faturamento", "01-2024")
	require.NoError(t, err)

	require.Len(t, got.Ranking, 2)
	assert.Equal(t, "DLR01", got.Ranking[0].DealerKey)
	assert.Equal(t, 1, got.Ranking[0].PositionChange)
	assert.Equal(t, -1, got.Ranking[1].PositionChange)
	assert.Equal(t, newer, got.LastUpdate)
	assert.Equal(t, "01-2024", got.Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealerRankingRepository_GetPositions(t *testing.T) {
	repo, mock := setupDealerRankingTest(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM dealer_ranking dr WHERE dr.indicator = $1 AND dr.month = $2")).
		WithArgs("Faturamento", "12-2023").
		WillReturnRows(sqlmock.NewRows(rankingRowColumns).
			AddRow(7, "run0", "Faturamento", "12-2023", "DLR02", 900.0, 1, 0, 0, now, now))

	got, err := repo.GetPositions("Faturamento", "12-2023")
	require.NoError(t, err)

	require.Contains(t, got, "DLR02")
	assert.Equal(t, 1, got["DLR02"].Position)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealerRankingRepository_GetLatestMonth(t *testing.T) {
	repo, mock := setupDealerRankingTest(t)

	query := regexp.QuoteMeta("SELECT dr.month FROM dealer_ranking dr WHERE dr.indicator = $1 ORDER BY to_date(dr.month, 'MM-YYYY') DESC LIMIT 1")

	mock.ExpectQuery(query).
		WithArgs("Faturamento").
		WillReturnRows(sqlmock.NewRows([]string{"month"}).AddRow("03-2024"))

	month, err := repo.GetLatestMonth("Faturamento")
	require.NoError(t, err)
	assert.Equal(t, "03-2024", month)

	mock.ExpectQuery(query).
		WithArgs("Qtd. Revisões").
		WillReturnRows(sqlmock.NewRows([]string{"month"}))

	month, err = repo.GetLatestMonth("Qtd. Revisões")
	require.NoError(t, err)
	assert.Empty(t, month)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealerRankingRepository_SaveOrUpdateRanking(t *testing.T) {
	repo, mock := setupDealerRankingTest(t)

	rankings := []*domain.RankingSnapshotItem{
		{RunID: "run1", Indicator: "Faturamento", Month: "01-2024", DealerKey: "DLR01", Value: 2500, Position: 1, PositionChange: 1, PreviousPosition: 2},
		{RunID: "run1", Indicator: "Faturamento", Month: "01-2024", DealerKey: "DLR02", Value: 500, Position: 2, PositionChange: -1, PreviousPosition: 1},
	}

	mock.ExpectExec(`(?s)INSERT INTO dealer_ranking .*ON CONFLICT \(indicator, month, dealer_key\) DO UPDATE`).
		WithArgs(
			"run1", "Faturamento", "01-2024", "DLR01", 2500.0, 1, 1, 2,
			"run1", "Faturamento", "01-2024", "DLR02", 500.0, 2, -1, 1,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.SaveOrUpdateRanking(rankings))

	// Lista vazia não toca o banco
	require.NoError(t, repo.SaveOrUpdateRanking(nil))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealerRankingRepository_QueryError(t *testing.T) {
	repo, mock := setupDealerRankingTest(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM dealer_ranking dr")).
		WillReturnError(errors.New("conexão perdida"))

	_, err := repo.GetRanking("Faturamento", "01-2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexão perdida")
}
