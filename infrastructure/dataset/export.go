package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Dados"

// Colunas derivadas acrescentadas às colunas originais na exportação
var derivedExportColumns = []string{"realizado_num", "mes_ref", "outlier_realizado"}

// exportLayout posiciona as colunas derivadas: as que já existem na origem são sobrescritas, as demais acrescentadas
type exportLayout struct {
	header  []string
	width   int
	derived []int
}

func newExportLayout(header []string) exportLayout {
	out := make([]string, 0, len(header)+len(derivedExportColumns))
	out = append(out, header...)

	positions := make([]int, len(derivedExportColumns))
	for i, name := range derivedExportColumns {
		positions[i] = columnPosition(header, name)
		if positions[i] < 0 {
			positions[i] = len(out)
			out = append(out, name)
		}
	}

	return exportLayout{header: out, width: len(header), derived: positions}
}

func columnPosition(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// ExportHeader retorna o cabeçalho original com as colunas derivadas, sem repetir nomes
func ExportHeader(header []string) []string {
	return newExportLayout(header).header
}

func (l exportLayout) amountColumn() int {
	return l.derived[0]
}

func (l exportLayout) row(record domain.ServiceRecord) []string {
	row := make([]string, len(l.header))
	raw := record.Raw
	if len(raw) > l.width {
		raw = raw[:l.width]
	}
	copy(row, raw)

	monthRef := ""
	if record.HasPeriod() {
		monthRef = domain.MonthStart(record.Period).Format("2006-01-02")
	}

	values := []string{
		strconv.FormatFloat(record.Amount, 'f', -1, 64),
		monthRef,
		strconv.FormatBool(record.IsOutlier),
	}
	for i, pos := range l.derived {
		row[pos] = values[i]
	}

	return row
}

// WriteCSV grava as linhas filtradas em CSV UTF-8 separado por vírgula, preservando todas as colunas
func WriteCSV(w io.Writer, header []string, records []domain.ServiceRecord) error {
	cw := csv.NewWriter(w)
	layout := newExportLayout(header)

	if err := cw.Write(layout.header); err != nil {
		return errors.Wrap(err, "erro ao gravar cabeçalho")
	}

	for _, record := range records {
		if err := cw.Write(layout.row(record)); err != nil {
			return errors.Wrapf(err, "erro ao gravar linha %d", record.Line)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "erro ao finalizar CSV")
}

// WriteXLSX grava as linhas filtradas em uma planilha com as mesmas colunas do CSV
func WriteXLSX(w io.Writer, header []string, records []domain.ServiceRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return errors.Wrap(err, "erro ao nomear planilha")
	}

	layout := newExportLayout(header)
	if err := setRow(f, 1, toInterfaces(layout.header)); err != nil {
		return err
	}

	for i, record := range records {
		values := toInterfaces(layout.row(record))
		values[layout.amountColumn()] = record.Amount

		if err := setRow(f, i+2, values); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "erro ao gravar planilha")
	}

	return nil
}

func setRow(f *excelize.File, rowNumber int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return errors.Wrap(err, "coordenada inválida")
	}

	if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
		return errors.Wrapf(err, "erro ao gravar linha %d da planilha", rowNumber)
	}

	return nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
