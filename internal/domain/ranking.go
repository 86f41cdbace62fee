package domain

import "time"

// RankingSnapshotItem é a posição de uma concessionária no ranking mensal de um indicador
type RankingSnapshotItem struct {
	ID               int       `json:"id"`
	RunID            string    `json:"run_id"`
	Indicator        string    `json:"indicator"`
	Month            string    `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	DealerKey        string    `json:"dealer_key"`
	Value            float64   `json:"value"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type RankingSnapshotResponse struct {
	Indicator  string                `json:"indicator"`
	Month      string                `json:"month"`
	Ranking    []RankingSnapshotItem `json:"ranking"`
	LastUpdate time.Time             `json:"last_update"`
}
