// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/dealer-kpi-api/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
)

const (
	dealerRankingTable = "dealer_ranking dr"
)

var dealerRankingColumns = []string{
	"dr.id",
	"dr.run_id",
	"dr.indicator",
	"dr.month",
	"dr.dealer_key",
	"dr.value",
	"dr.position",
	"dr.position_change",
	"dr.previous_position",
	"dr.created_at",
	"dr.updated_at",
}

//go:generate mockgen -source=dealer_ranking.go -destination=mocks/dealer_ranking.go -package=mocks
type DealerRankingRepository interface {
	GetRanking(indicator string, month string) (*domain.RankingSnapshotResponse, error)
	GetPositions(indicator string, month string) (map[string]*domain.RankingSnapshotItem, error)
	GetLatestMonth(indicator string) (string, error)
	SaveOrUpdateRanking(rankings []*domain.RankingSnapshotItem) error
}

type dealerRankingRepository struct {
	conn *postgres.Connection
}

func NewDealerRankingRepository(conn *postgres.Connection) DealerRankingRepository {
	return &dealerRankingRepository{
		conn: conn,
	}
}

func (r *dealerRankingRepository) GetRanking(indicator string, month string) (*domain.RankingSnapshotResponse, error) {
	items, err := r.list(indicator, month)
	if err != nil {
		return nil, err
	}

	ranking := make([]domain.RankingSnapshotItem, 0, len(items))
	var lastUpdate time.Time

	for _, item := range items {
		ranking = append(ranking, *item)

		// Manter o último update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	return &domain.RankingSnapshotResponse{
		Indicator:  indicator,
		Month:      month,
		Ranking:    ranking,
		LastUpdate: lastUpdate,
	}, nil
}

// GetPositions retorna as posições gravadas de um mês, indexadas pela concessionária
func (r *dealerRankingRepository) GetPositions(indicator string, month string) (map[string]*domain.RankingSnapshotItem, error) {
	items, err := r.list(indicator, month)
	if err != nil {
		return nil, err
	}

	positions := make(map[string]*domain.RankingSnapshotItem, len(items))
	for _, item := range items {
		positions[item.DealerKey] = item
	}

	return positions, nil
}

// GetLatestMonth retorna o mês mais recente com ranking gravado (mm-yyyy); vazio quando não há histórico
func (r *dealerRankingRepository) GetLatestMonth(indicator string) (string, error) {
	query, args, err := squirrel.
		Select("dr.month").
		From(dealerRankingTable).
		Where(squirrel.Eq{"dr.indicator": indicator}).
		OrderBy("to_date(dr.month, 'MM-YYYY') DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var month string
	if err := r.conn.QueryRow(query, args...).Scan(&month); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("erro ao buscar último mês do ranking: %w", err)
	}

	return month, nil
}

func (r *dealerRankingRepository) SaveOrUpdateRanking(rankings []*domain.RankingSnapshotItem) error {
	if len(rankings) == 0 {
		return nil
	}

	// Construir query de inserção em lote
	query := squirrel.StatementBuilder.
		Insert("dealer_ranking").
		Columns(
			"run_id",
			"indicator",
			"month",
			"dealer_key",
			"value",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.RunID,
			ranking.Indicator,
			ranking.Month,
			ranking.DealerKey,
			ranking.Value,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	// Configurar comportamento de conflito (upsert)
	query = query.Suffix(`
		ON CONFLICT (indicator, month, dealer_key) DO UPDATE SET
			run_id = EXCLUDED.run_id,
			value = EXCLUDED.value,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *dealerRankingRepository) list(indicator string, month string) ([]*domain.RankingSnapshotItem, error) {
	sqlQuery, args, err := squirrel.
		Select(dealerRankingColumns...).
		From(dealerRankingTable).
		Where(squirrel.Eq{"dr.indicator": indicator, "dr.month": month}).
		OrderBy("dr.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.RankingSnapshotItem, 0)
	for rows.Next() {
		item, err := r.scanRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *dealerRankingRepository) scanRankingItem(rows *sql.Rows) (*domain.RankingSnapshotItem, error) {
	item := &domain.RankingSnapshotItem{}

	err := rows.Scan(
		&item.ID,
		&item.RunID,
		&item.Indicator,
		&item.Month,
		&item.DealerKey,
		&item.Value,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
