package dataset

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func exportFixture() ([]string, []domain.ServiceRecord) {
	header := []string{"periodo", "titulo", "realizado", "chave"}
	records := []domain.ServiceRecord{
		{
			Line:      2,
			DealerKey: "DLR01",
			Indicator: "Faturamento",
			Period:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Amount:    1234.56,
			Raw:       []string{"05/03/2024", "Faturamento", "1.234,56", "DLR01"},
		},
		{
			Line:      3,
			DealerKey: "DLR02",
			Indicator: "Faturamento",
			Amount:    0,
			IsOutlier: true,
			Raw:       []string{"??", "Faturamento", "n/d", "DLR02"},
		},
	}
	return header, records
}

func TestWriteCSV(t *testing.T) {
	header, records := exportFixture()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, header, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"periodo", "titulo", "realizado", "chave", "realizado_num", "mes_ref", "outlier_realizado"}, rows[0])
	assert.Equal(t, []string{"05/03/2024", "Faturamento", "1.234,56", "DLR01", "1234.56", "2024-03-01", "false"}, rows[1])
	assert.Equal(t, []string{"??", "Faturamento", "n/d", "DLR02", "0", "", "true"}, rows[2])
}

func TestWriteXLSX(t *testing.T) {
	header, records := exportFixture()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, header, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "realizado_num", rows[0][4])
	assert.Equal(t, "DLR01", rows[1][3])
	assert.Equal(t, "1234.56", rows[1][4])
	assert.Equal(t, "2024-03-01", rows[1][5])
	assert.Equal(t, "true", rows[2][6])
}

func TestWriteCSV_SourceAlreadyHasDerivedColumns(t *testing.T) {
	header := []string{"periodo_dt", "titulo", "Realizado_Num", "chave", "mes_ref", "outlier_realizado"}
	records := []domain.ServiceRecord{
		{
			Line:      2,
			DealerKey: "A",
			Indicator: "Faturamento",
			Period:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Amount:    1500.5,
			IsOutlier: true,
			Raw:       []string{"2024-01-15", "Faturamento", "1500.5", "A", "2024-01-01", "False"},
		},
	}

	assert.Equal(t, header, ExportHeader(header))

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, header, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, header, rows[0])
	// Valores recalculados sobrescrevem os da origem
	assert.Equal(t, []string{"2024-01-15", "Faturamento", "1500.5", "A", "2024-01-01", "true"}, rows[1])
}

func TestWriteXLSX_PartialDerivedColumns(t *testing.T) {
	header := []string{"periodo_dt", "titulo", "realizado_num", "chave"}
	records := []domain.ServiceRecord{
		{
			DealerKey: "A",
			Period:    time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
			Amount:    42,
			Raw:       []string{"2024-02-03", "Faturamento", "42", "A"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, header, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"periodo_dt", "titulo", "realizado_num", "chave", "mes_ref", "outlier_realizado"}, rows[0])
	assert.Equal(t, "42", rows[1][2])
	assert.Equal(t, "2024-02-01", rows[1][4])
	assert.Equal(t, "false", rows[1][5])
}
