package dashboarding

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/vfg2006/dealer-kpi-api/infrastructure/dataset"
	"github.com/vfg2006/dealer-kpi-api/internal/config"
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
	"github.com/vfg2006/dealer-kpi-api/pkg/apiErrors"
	"github.com/vfg2006/dealer-kpi-api/pkg/log"
	"github.com/vfg2006/dealer-kpi-api/pkg/utils"
)

const defaultTopN = 15

// Service executa o pipeline sobre a base em cache; cada chamada é independente
type Service struct {
	source  DatasetSource
	catalog IndicatorCatalog
	topN    int
}

// NewService cria o serviço do painel
func NewService(cfg *config.Config, source DatasetSource, catalog IndicatorCatalog) Dashboarder {
	topN := defaultTopN
	if cfg != nil && cfg.Dashboard.TopN > 0 {
		topN = cfg.Dashboard.TopN
	}

	return &Service{
		source:  source,
		catalog: catalog,
		topN:    topN,
	}
}

func (s *Service) dataset() (*dataset.Dataset, error) {
	ds := s.source.Current()
	if ds == nil {
		return nil, NewDashboardError(ErrDatasetNotLoaded, apiErrors.ErrDatasetUnavailable, "a base de serviços ainda não foi carregada")
	}
	return ds, nil
}

// Dashboard executa filtro → outliers → agregação → KPIs para a seleção informada
func (s *Service) Dashboard(ctx context.Context, params domain.FilterParams) (*domain.DashboardResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if params.Indicator == "" {
		return nil, NewDashboardError(ErrIndicatorRequired, apiErrors.ErrMissingRequiredData, "informe o indicador")
	}

	if err := validateDateRange(params); err != nil {
		return nil, err
	}

	def := s.catalog.Resolve(params.Indicator)
	// a base foi gravada com o nome do catálogo, mesmo quando o pedido vem pelo ID
	params.Indicator = def.Name

	mode, err := ResolveMode(def.Kind, params.Mode)
	if err != nil {
		return nil, NewDashboardError(ErrInvalidAggregationMode, apiErrors.ErrInvalidAggregationMode, err.Error())
	}

	ds, err := s.dataset()
	if err != nil {
		return nil, err
	}

	rows, audit, notes := s.slice(ds.Records, params)
	series := BucketByMonth(rows)

	headline, err := BuildHeadline(def, series, mode)
	if err != nil {
		return nil, NewDashboardError(ErrInvalidAggregationMode, apiErrors.ErrInvalidAggregationMode, err.Error())
	}

	// 0 usa o padrão configurado; negativo devolve o ranking completo
	topN := params.TopN
	if topN == 0 {
		topN = s.topN
	}

	result := &domain.DashboardResult{
		Indicator:      def,
		Headline:       headline,
		MonthOverMonth: MonthOverMonthChange(series),
		MonthCount:     len(series),
		Series:         series,
		Ranking:        TopN(RankDealers(rows, def.Kind), topN),
		Outliers:       audit,
		RowCount:       len(rows),
		Rows:           rows,
	}

	if len(rows) == 0 {
		notes = append(notes, "Nenhum registro para os filtros selecionados")
	} else if undated := countUndated(rows); undated > 0 {
		notes = append(notes, fmt.Sprintf("%d linhas sem data válida fora da série mensal", undated))
	}

	for _, d := range s.catalog.DerivedKPIs() {
		kpi := s.derive(ds.Records, params, d)
		if kpi.ZeroDenominator {
			notes = append(notes, fmt.Sprintf("%s sem base no período: exibido como 0", kpi.Label))
		}
		result.DerivedKPIs = append(result.DerivedKPIs, kpi)
	}

	result.Notes = notes

	log.ForContext(ctx).WithFields(log.Fields{
		"indicator": def.Name,
		"mode":      mode,
		"rows":      len(rows),
		"months":    len(series),
		"removed":   audit.Removed,
	}).Debug("Painel calculado")

	return result, nil
}

// slice aplica os filtros e o IQR da fatia. As linhas voltam com IsOutlier preenchido
// e, quando a exclusão está ligada, sem as linhas marcadas.
func (s *Service) slice(records []domain.ServiceRecord, params domain.FilterParams) ([]domain.ServiceRecord, domain.OutlierAudit, []string) {
	flagged, bounds := FlagOutliers(FilterRecords(records, params))

	audit := domain.OutlierAudit{Applied: params.ExcludeOutliers}
	if bounds != nil {
		lower, upper := bounds.Lower, bounds.Upper
		audit.LowerBound = &lower
		audit.UpperBound = &upper
	}

	if !params.ExcludeOutliers {
		return flagged, audit, nil
	}

	split := splitOutliers(flagged, bounds)
	audit.Removed = split.above + split.below

	notes := make([]string, 0)
	if split.above > 0 {
		notes = append(notes, fmt.Sprintf("%d linhas outlier removidas acima de %s", split.above, utils.FormatBRL(bounds.Upper)))
	}
	if split.below > 0 {
		notes = append(notes, fmt.Sprintf("%d linhas outlier removidas abaixo de %s", split.below, utils.FormatBRL(bounds.Lower)))
	}

	return split.kept, audit, notes
}

// derive calcula uma razão com os mesmos filtros da seleção aplicados a cada indicador da razão.
// Cada lado é reduzido pelo modo padrão do seu tipo.
func (s *Service) derive(records []domain.ServiceRecord, params domain.FilterParams, d domain.DerivedKPIDefinition) domain.DerivedKPI {
	scalar := func(indicator string) float64 {
		p := params
		p.Indicator = indicator

		rows, _, _ := s.slice(records, p)
		kind := s.catalog.Resolve(indicator).Kind

		value, _ := reduceSeries(BucketByMonth(rows), kind.DefaultMode())
		return value
	}

	return DerivedRatio(d, scalar(d.Numerator), scalar(d.Denominator))
}

// Indicators lista os indicadores presentes na base, com o tipo vindo do catálogo
func (s *Service) Indicators(ctx context.Context) ([]domain.IndicatorDefinition, error) {
	ds, err := s.dataset()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	out := make([]domain.IndicatorDefinition, 0)

	for _, r := range ds.Records {
		key := domain.NormalizeIndicatorName(r.Indicator)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s.catalog.Resolve(r.Indicator))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

// FilterOptions lista os valores distintos de dealer, região e grupo
func (s *Service) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	ds, err := s.dataset()
	if err != nil {
		return nil, err
	}

	dealers := make(map[string]bool)
	regions := make(map[string]bool)
	groups := make(map[string]bool)

	for _, r := range ds.Records {
		dealers[r.DealerKey] = true
		regions[r.Region] = true
		groups[r.Group] = true
	}

	return &domain.FilterOptions{
		Dealers: sortedKeys(dealers),
		Regions: sortedKeys(regions),
		Groups:  sortedKeys(groups),
	}, nil
}

// AvailablePeriods lista os meses com dados no formato mm-yyyy
func (s *Service) AvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	ds, err := s.dataset()
	if err != nil {
		return nil, err
	}

	months := BucketByMonth(ds.Records)

	periods := &domain.AvailablePeriods{
		Periods: make([]string, 0, len(months)),
		Years:   make([]string, 0),
		Months:  make([]string, 0),
	}

	years := make(map[string]bool)
	monthNumbers := make(map[string]bool)

	for _, b := range months {
		periods.Periods = append(periods.Periods, utils.FormatPeriod(b.MonthStart))
		years[strconv.Itoa(b.MonthStart.Year())] = true
		monthNumbers[b.MonthStart.Format("01")] = true
	}

	periods.Years = sortedKeys(years)
	periods.Months = sortedKeys(monthNumbers)

	var minDate, maxDate string
	for _, r := range ds.Records {
		if !r.HasPeriod() {
			continue
		}
		day := r.Period.Format("2006-01-02")
		if minDate == "" || day < minDate {
			minDate = day
		}
		if day > maxDate {
			maxDate = day
		}
	}
	periods.MinDate = minDate
	periods.MaxDate = maxDate

	return periods, nil
}

// Export grava as linhas da seleção com todas as colunas originais e as colunas derivadas
func (s *Service) Export(ctx context.Context, params domain.FilterParams, format ExportFormat, w io.Writer) error {
	if err := validateDateRange(params); err != nil {
		return err
	}

	if format != ExportCSV && format != ExportXLSX {
		return NewDashboardError(ErrUnsupportedFormat, apiErrors.ErrInvalidFormat, fmt.Sprintf("formato %q", format))
	}

	ds, err := s.dataset()
	if err != nil {
		return err
	}

	if params.Indicator != "" {
		params.Indicator = s.catalog.Resolve(params.Indicator).Name
	}

	rows, _, _ := s.slice(ds.Records, params)

	log.ForContext(ctx).WithFields(log.Fields{
		"indicator": params.Indicator,
		"format":    format,
		"rows":      len(rows),
	}).Info("Exportando linhas filtradas")

	if format == ExportXLSX {
		return dataset.WriteXLSX(w, ds.Header, rows)
	}

	return dataset.WriteCSV(w, ds.Header, rows)
}

func validateDateRange(params domain.FilterParams) error {
	if params.StartDate != nil && params.EndDate != nil &&
		!params.StartDate.IsZero() && !params.EndDate.IsZero() &&
		params.StartDate.After(*params.EndDate) {
		return NewDashboardError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, "a data de início não pode ser posterior à data de fim")
	}
	return nil
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		if k != "" {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
