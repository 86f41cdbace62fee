package dashboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
)

func month(year int, m time.Month, day int) time.Time {
	return time.Date(year, m, day, 0, 0, 0, 0, time.UTC)
}

func record(dealer, indicator string, period time.Time, amount float64) domain.ServiceRecord {
	return domain.ServiceRecord{DealerKey: dealer, Indicator: indicator, Period: period, Amount: amount}
}

func series(totals ...float64) []domain.MonthlyBucket {
	out := make([]domain.MonthlyBucket, len(totals))
	for i, v := range totals {
		out[i] = domain.MonthlyBucket{MonthStart: month(2024, time.Month(i+1), 1), Total: v}
	}
	return out
}

func TestIQRBounds(t *testing.T) {
	bounds, ok := IQRBounds([]float64{100, 1, 2, 3, 4, 5})
	require.True(t, ok)
	assert.InDelta(t, -1.5, bounds.Lower, 1e-9)
	assert.InDelta(t, 8.5, bounds.Upper, 1e-9)

	_, ok = IQRBounds(nil)
	assert.False(t, ok)
}

func TestFilterOutliers(t *testing.T) {
	kept, bounds := FilterOutliers([]float64{1, 2, 3, 4, 5, 100})
	require.NotNil(t, bounds)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, kept)

	kept, bounds = FilterOutliers([]float64{})
	assert.Nil(t, bounds)
	assert.Empty(t, kept)

	// Limites inclusivos
	kept, _ = FilterOutliers([]float64{7, 7, 7, 7})
	assert.Len(t, kept, 4)
}

func TestFlagOutliers_DoesNotMutateInput(t *testing.T) {
	input := []domain.ServiceRecord{
		record("A", "X", month(2024, 1, 1), 1),
		record("A", "X", month(2024, 1, 1), 2),
		record("A", "X", month(2024, 1, 1), 3),
		record("A", "X", month(2024, 1, 1), 4),
		record("A", "X", month(2024, 1, 1), 5),
		record("B", "X", month(2024, 1, 1), 100),
	}

	flagged, bounds := FlagOutliers(input)
	require.NotNil(t, bounds)

	assert.True(t, flagged[5].IsOutlier)
	assert.False(t, flagged[0].IsOutlier)
	assert.False(t, input[5].IsOutlier)
}

func TestFlagOutliers_PerSlice(t *testing.T) {
	// O mesmo valor pode ser outlier em uma fatia e normal em outra
	small := []domain.ServiceRecord{
		record("A", "X", month(2024, 1, 1), 10),
		record("A", "X", month(2024, 2, 1), 11),
		record("A", "X", month(2024, 3, 1), 12),
		record("A", "X", month(2024, 4, 1), 13),
		record("A", "X", month(2024, 5, 1), 50),
	}
	wide := append([]domain.ServiceRecord{
		record("B", "X", month(2024, 1, 1), 40),
		record("B", "X", month(2024, 2, 1), 60),
		record("B", "X", month(2024, 3, 1), 70),
	}, small...)

	flaggedSmall, _ := FlagOutliers(small)
	flaggedWide, _ := FlagOutliers(wide)

	assert.True(t, flaggedSmall[4].IsOutlier)
	assert.False(t, flaggedWide[7].IsOutlier)
}

func TestBucketByMonth(t *testing.T) {
	records := []domain.ServiceRecord{
		record("A", "X", month(2024, 3, 28), 10),
		record("B", "X", month(2024, 3, 5), 5),
		record("A", "X", month(2024, 1, 31), 1),
		record("A", "X", time.Time{}, 1000),
	}

	got := BucketByMonth(records)

	require.Len(t, got, 2)
	assert.Equal(t, month(2024, 1, 1), got[0].MonthStart)
	assert.Equal(t, 1.0, got[0].Total)
	assert.Equal(t, month(2024, 3, 1), got[1].MonthStart)
	assert.Equal(t, 15.0, got[1].Total)

	assert.Equal(t, domain.MonthStart(month(2024, 3, 5)), domain.MonthStart(month(2024, 3, 28)))
}

func TestBuildHeadline_SnapshotVsFlow(t *testing.T) {
	snapshot := domain.IndicatorDefinition{Name: "Estoque Total R$", Kind: domain.IndicatorSnapshot}
	flow := domain.IndicatorDefinition{Name: "Faturamento", Kind: domain.IndicatorFlow}
	values := series(10, 20, 30)

	tests := []struct {
		name  string
		def   domain.IndicatorDefinition
		mode  domain.AggregationMode
		value float64
		label string
	}{
		{"snapshot padrão", snapshot, "", 20, "Estoque Total R$ (média)"},
		{"snapshot média", snapshot, domain.AggregationMean, 20, "Estoque Total R$ (média)"},
		{"snapshot máximo", snapshot, domain.AggregationMax, 30, "Estoque Total R$ (máximo)"},
		{"snapshot último", snapshot, domain.AggregationLast, 30, "Estoque Total R$ (último mês)"},
		{"flow padrão", flow, "", 60, "Faturamento (soma período)"},
		{"flow soma", flow, domain.AggregationSum, 60, "Faturamento (soma período)"},
		{"flow média", flow, domain.AggregationMean, 20, "Faturamento (média mensal)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headline, err := BuildHeadline(tt.def, values, tt.mode)
			require.NoError(t, err)
			assert.True(t, headline.Available)
			assert.InDelta(t, tt.value, headline.Value, 1e-9)
			assert.Equal(t, tt.label, headline.Label)
		})
	}
}

func TestBuildHeadline_SnapshotSumRejected(t *testing.T) {
	def := domain.IndicatorDefinition{Name: "Qtd. Atual", Kind: domain.IndicatorSnapshot}

	_, err := BuildHeadline(def, series(10, 20), domain.AggregationSum)
	assert.ErrorIs(t, err, ErrInvalidAggregationMode)

	_, err = BuildHeadline(domain.IndicatorDefinition{Name: "F", Kind: domain.IndicatorFlow}, series(1), domain.AggregationMax)
	assert.ErrorIs(t, err, ErrInvalidAggregationMode)
}

func TestBuildHeadline_EmptyIsNoData(t *testing.T) {
	headline, err := BuildHeadline(domain.IndicatorDefinition{Name: "F", Kind: domain.IndicatorFlow}, nil, "")
	require.NoError(t, err)

	assert.False(t, headline.Available)
	assert.Equal(t, "—", headline.Formatted)
}

func TestMonthOverMonthChange(t *testing.T) {
	mom := MonthOverMonthChange(series(100, 150))
	assert.True(t, mom.Defined)
	assert.InDelta(t, 0.5, mom.Change, 1e-9)
	assert.Equal(t, "50,00%", mom.Formatted)

	mom = MonthOverMonthChange(series(100, 0))
	assert.True(t, mom.Defined)
	assert.InDelta(t, -1.0, mom.Change, 1e-9)

	mom = MonthOverMonthChange(series(100))
	assert.False(t, mom.Defined)
	assert.Equal(t, "—", mom.Formatted)

	mom = MonthOverMonthChange(series(0, 100))
	assert.False(t, mom.Defined)

	assert.False(t, MonthOverMonthChange(nil).Defined)
}

func TestDerivedRatio_ZeroGuard(t *testing.T) {
	def := domain.DerivedKPIDefinition{Name: "ticket_medio", Label: "Ticket Médio"}

	kpi := DerivedRatio(def, 500, 0)
	assert.Equal(t, 0.0, kpi.Value)
	assert.True(t, kpi.ZeroDenominator)

	kpi = DerivedRatio(def, 500, 4)
	assert.Equal(t, 125.0, kpi.Value)
	assert.False(t, kpi.ZeroDenominator)
	assert.Equal(t, "125,00", kpi.Formatted)

	kpi = DerivedRatio(domain.DerivedKPIDefinition{Name: "obsolescencia", Percent: true}, 25, 200)
	assert.Equal(t, "12,50%", kpi.Formatted)
}

func TestRankDealers(t *testing.T) {
	records := []domain.ServiceRecord{
		record("B", "X", month(2024, 1, 1), 10),
		record("A", "X", month(2024, 1, 1), 10),
		record("C", "X", month(2024, 1, 1), 30),
	}

	got := RankDealers(records, domain.IndicatorFlow)
	require.Len(t, got, 3)
	assert.Equal(t, "C", got[0].DealerKey)
	assert.Equal(t, "A", got[1].DealerKey)
	assert.Equal(t, "B", got[2].DealerKey)

	assert.Len(t, TopN(got, 2), 2)
	assert.Len(t, TopN(got, 0), 3)
}

func TestRankDealers_SnapshotAveragesMonthlyCells(t *testing.T) {
	records := []domain.ServiceRecord{
		// Duas linhas no mesmo mês são somadas antes da média
		record("A", "Estoque", month(2024, 1, 1), 10),
		record("A", "Estoque", month(2024, 1, 15), 10),
		record("A", "Estoque", month(2024, 2, 1), 40),
		record("B", "Estoque", month(2024, 1, 1), 25),
	}

	snapshot := RankDealers(records, domain.IndicatorSnapshot)
	require.Len(t, snapshot, 2)
	assert.Equal(t, domain.DealerRanking{DealerKey: "A", Value: 30}, snapshot[0])
	assert.Equal(t, domain.DealerRanking{DealerKey: "B", Value: 25}, snapshot[1])

	flow := RankDealers(records, domain.IndicatorFlow)
	assert.Equal(t, domain.DealerRanking{DealerKey: "A", Value: 60}, flow[0])
}

func TestFilterRecords(t *testing.T) {
	records := []domain.ServiceRecord{
		{DealerKey: "A", Indicator: "Faturamento", Region: "SUL", Group: "G1", Period: month(2024, 1, 31)},
		{DealerKey: "B", Indicator: " faturamento", Region: "NORTE", Group: "G2", Period: month(2024, 2, 10)},
		{DealerKey: "A", Indicator: "Qtd. Revisões", Region: "SUL", Group: "G1", Period: month(2024, 2, 10)},
		{DealerKey: "C", Indicator: "Faturamento", Region: "SUL", Group: "G1"},
	}

	params := domain.NewFilterParams("FATURAMENTO")
	assert.Len(t, FilterRecords(records, params), 3)

	start := month(2024, 1, 31)
	end := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	params.StartDate = &start
	params.EndDate = &end
	got := FilterRecords(records, params)
	require.Len(t, got, 2)

	params.Regions = []string{"NORTE"}
	got = FilterRecords(records, params)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].DealerKey)

	params = domain.NewFilterParams("Faturamento")
	params.Dealers = []string{"A", "C"}
	params.Groups = []string{"G1"}
	assert.Len(t, FilterRecords(records, params), 2)
}
