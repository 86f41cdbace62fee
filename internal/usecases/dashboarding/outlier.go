package dashboarding

import (
	"math"
	"sort"

	"github.com/vfg2006/dealer-kpi-api/internal/domain"
)

// Bounds é o intervalo aceito pelo filtro IQR, inclusivo nas duas pontas
type Bounds struct {
	Lower float64
	Upper float64
}

// Contains indica se o valor está dentro do intervalo
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// quantile calcula o quantil q de uma amostra ordenada por interpolação linear
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}

	frac := pos - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

// IQRBounds retorna [Q1 - 1.5*IQR, Q3 + 1.5*IQR]. Sem valores não há limites.
func IQRBounds(values []float64) (Bounds, bool) {
	if len(values) == 0 {
		return Bounds{}, false
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1

	return Bounds{Lower: q1 - 1.5*iqr, Upper: q3 + 1.5*iqr}, true
}

// FilterOutliers mantém os valores dentro dos limites IQR da própria amostra, preservando a ordem.
// Reaplicar sobre o resultado pode remover mais pontos.
func FilterOutliers(values []float64) ([]float64, *Bounds) {
	bounds, ok := IQRBounds(values)
	if !ok {
		return values, nil
	}

	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if bounds.Contains(v) {
			kept = append(kept, v)
		}
	}

	return kept, &bounds
}

// FlagOutliers marca IsOutlier em uma cópia da fatia, com limites calculados sobre a própria fatia
func FlagOutliers(records []domain.ServiceRecord) ([]domain.ServiceRecord, *Bounds) {
	amounts := make([]float64, len(records))
	for i, r := range records {
		amounts[i] = r.Amount
	}

	flagged := make([]domain.ServiceRecord, len(records))
	copy(flagged, records)

	bounds, ok := IQRBounds(amounts)
	if !ok {
		return flagged, nil
	}

	for i := range flagged {
		flagged[i].IsOutlier = !bounds.Contains(flagged[i].Amount)
	}

	return flagged, &bounds
}

// outlierSplit separa as linhas marcadas, contando quantas ficaram acima e abaixo dos limites
type outlierSplit struct {
	kept  []domain.ServiceRecord
	above int
	below int
}

func splitOutliers(records []domain.ServiceRecord, bounds *Bounds) outlierSplit {
	split := outlierSplit{kept: make([]domain.ServiceRecord, 0, len(records))}

	for _, r := range records {
		if !r.IsOutlier || bounds == nil {
			split.kept = append(split.kept, r)
			continue
		}
		if r.Amount > bounds.Upper {
			split.above++
		} else {
			split.below++
		}
	}

	return split
}
