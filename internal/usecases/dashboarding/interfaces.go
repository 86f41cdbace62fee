package dashboarding

import (
	"context"
	"io"

	"github.com/vfg2006/dealer-kpi-api/infrastructure/dataset"
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
)

// DatasetSource fornece a base normalizada atual, compartilhada apenas para leitura
type DatasetSource interface {
	Current() *dataset.Dataset
}

// IndicatorCatalog classifica os indicadores e lista as razões derivadas
type IndicatorCatalog interface {
	Resolve(name string) domain.IndicatorDefinition
	Indicators() []domain.IndicatorDefinition
	DerivedKPIs() []domain.DerivedKPIDefinition
}

// ExportFormat é o formato de saída das linhas filtradas
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/dashboarder.go -package=mocks

// Dashboarder é o pipeline completo consumido pela camada de exibição
type Dashboarder interface {
	// Dashboard executa filtro, outliers, agregação e KPIs para uma seleção
	Dashboard(ctx context.Context, params domain.FilterParams) (*domain.DashboardResult, error)

	// Indicators lista os indicadores presentes na base com a classificação do catálogo
	Indicators(ctx context.Context) ([]domain.IndicatorDefinition, error)

	// FilterOptions lista dealers, regiões e grupos disponíveis
	FilterOptions(ctx context.Context) (*domain.FilterOptions, error)

	// AvailablePeriods lista os meses com dados
	AvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)

	// Export grava as linhas filtradas no formato pedido
	Export(ctx context.Context, params domain.FilterParams, format ExportFormat, w io.Writer) error
}
