package dataset

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-kpi-api/internal/config"
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
)

// Dataset é a base normalizada e imutável; pode ser compartilhada apenas para leitura
type Dataset struct {
	Source   string
	Hash     string
	Header   []string
	Records  []domain.ServiceRecord
	Report   LoadReport
	LoadedAt time.Time
}

// Options configura a leitura do arquivo
type Options struct {
	Delimiter        rune // 0 = detectar
	Encoding         string
	DecimalSeparator rune
	Columns          ColumnMapping
}

// OptionsFromConfig traduz a configuração da aplicação para as opções do loader
func OptionsFromConfig(cfg *config.Config) Options {
	dec := ','
	if cfg.Dataset.DecimalSeparator == "." {
		dec = '.'
	}

	return Options{
		Delimiter:        ParseDelimiter(cfg.Dataset.Delimiter),
		Encoding:         cfg.Dataset.Encoding,
		DecimalSeparator: dec,
		Columns:          ColumnMappingFromConfig(cfg.Columns),
	}
}

// Loader lê e normaliza o arquivo exportado
type Loader struct {
	opts    Options
	catalog IndicatorCatalog
}

func NewLoader(opts Options, catalog IndicatorCatalog) *Loader {
	if opts.Columns == nil {
		opts.Columns = DefaultColumnMapping()
	}

	return &Loader{opts: opts, catalog: catalog}
}

// LoadFile lê o arquivo do disco e o normaliza
func (l *Loader) LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newLoadError(path, ErrUnreadableSource, err.Error())
	}

	return l.Parse(path, data)
}

// Parse normaliza o conteúdo bruto. Erros retornados são sempre fatais (*LoadError).
func (l *Loader) Parse(source string, data []byte) (*Dataset, error) {
	content, encoding, err := Decode(data, l.opts.Encoding)
	if err != nil {
		return nil, newLoadError(source, ErrUnrecognizedEncoding, err.Error())
	}

	text := string(content)
	if strings.TrimSpace(text) == "" {
		return nil, newLoadError(source, ErrEmptySource, "")
	}

	delimiter := l.opts.Delimiter
	if delimiter == 0 {
		delimiter = SniffDelimiter(firstLine(text))
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newLoadError(source, ErrEmptySource, "")
		}
		return nil, newLoadError(source, ErrMalformedFile, err.Error())
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	columns, missing := l.opts.Columns.Resolve(header)
	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, f := range missing {
			names = append(names, fmt.Sprintf("%s (%s)", f, strings.Join(l.opts.Columns[f], "|")))
		}
		return nil, newLoadError(source, ErrMissingColumns, strings.Join(names, ", "))
	}

	report := LoadReport{
		Encoding:  encoding,
		Delimiter: string(delimiter),
	}

	normalizer := newNormalizer(columns, l.catalog, amountSeparator(header, columns, l.opts.DecimalSeparator), len(header))
	records := make([]domain.ServiceRecord, 0)
	indicators := make([]string, 0)
	seenIndicators := make(map[string]bool)

	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, newLoadError(source, ErrMalformedFile, fmt.Sprintf("linha %d: %v", line, err))
		}

		if isBlankRow(row) {
			continue
		}

		record := normalizer.Normalize(line, row, &report)
		records = append(records, record)

		if !seenIndicators[record.Indicator] {
			seenIndicators[record.Indicator] = true
			indicators = append(indicators, record.Indicator)
		}
	}

	report.Rows = len(records)
	if l.catalog != nil {
		report.UnknownIndicators = l.catalog.Validate(indicators)
	}

	sum := sha256.Sum256(data)

	ds := &Dataset{
		Source:   source,
		Hash:     hex.EncodeToString(sum[:]),
		Header:   header,
		Records:  records,
		Report:   report,
		LoadedAt: time.Now(),
	}

	logrus.WithFields(logrus.Fields{
		"source":          source,
		"rows":            report.Rows,
		"encoding":        report.Encoding,
		"delimiter":       report.Delimiter,
		"invalid_amounts": report.InvalidAmounts,
		"invalid_dates":   report.InvalidDates,
		"unknown":         len(report.UnknownIndicators),
	}).Info("Base de serviços carregada")

	return ds, nil
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
