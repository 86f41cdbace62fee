package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dealer-kpi-api/internal/catalog"
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
	"golang.org/x/text/encoding/charmap"
)

const semicolonExport = `periodo;titulo;sub_titulo;realizado;chave;grupo;REGIAO
31/01/2024;Faturamento;Oficina;1.234,56;DLR01;Grupo A;SUL
28/02/2024;  faturamento ;Oficina;2.000,00;DLR02;Grupo B;SUDESTE
15/03/2024 10:00:00;R$ Estoque Obsoleto;;n/d;DLR01;Grupo A;SUL
data ruim;Faturamento;;500,00;DLR03;Grupo A;NORTE
`

func newTestLoader(opts Options) *Loader {
	return NewLoader(opts, catalog.Default())
}

func TestLoader_Parse_Semicolon(t *testing.T) {
	ds, err := newTestLoader(Options{}).Parse("teste.csv", []byte(semicolonExport))
	require.NoError(t, err)

	require.Len(t, ds.Records, 4)
	assert.Equal(t, ";", ds.Report.Delimiter)
	assert.Equal(t, EncodingUTF8, ds.Report.Encoding)
	assert.NotEmpty(t, ds.Hash)

	first := ds.Records[0]
	assert.Equal(t, "DLR01", first.DealerKey)
	assert.Equal(t, "Faturamento", first.Indicator)
	assert.Equal(t, "Oficina", first.SubIndicator)
	assert.Equal(t, "Grupo A", first.Group)
	assert.Equal(t, "SUL", first.Region)
	assert.InDelta(t, 1234.56, first.Amount, 1e-9)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), first.Period)
	assert.Equal(t, 2, first.Line)

	// Grafia diferente resolvida para o nome do catálogo
	assert.Equal(t, "Faturamento", ds.Records[1].Indicator)

	// Valor inválido vira zero e a linha é mantida
	assert.Equal(t, 0.0, ds.Records[2].Amount)
	assert.True(t, ds.Records[2].HasPeriod())

	// Data inválida fica vazia e a linha é mantida
	assert.False(t, ds.Records[3].HasPeriod())

	assert.Equal(t, 4, ds.Report.Rows)
	assert.Equal(t, 1, ds.Report.InvalidAmounts)
	assert.Equal(t, 1, ds.Report.InvalidDates)
	assert.Empty(t, ds.Report.UnknownIndicators)
}

func TestLoader_Parse_CommaLatin1WithMetricID(t *testing.T) {
	cat, err := catalog.New([]domain.IndicatorDefinition{
		{ID: "7", Name: "Qtd. Revisões", Kind: domain.IndicatorFlow},
	}, nil)
	require.NoError(t, err)

	content := "periodo_dt,metrica_id,realizado,descr_dealer,STATE\n" +
		"2024-01-01,7,\"1.500,00\",Concessionária Sul,SC\n" +
		"2024-01-01,99,\"10,00\",Concessionária Sul,SC\n"

	latin1, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(content))
	require.NoError(t, err)

	ds, err := NewLoader(Options{}, cat).Parse("latin1.csv", latin1)
	require.NoError(t, err)

	require.Len(t, ds.Records, 2)
	assert.Equal(t, EncodingLatin1, ds.Report.Encoding)
	assert.Equal(t, ",", ds.Report.Delimiter)
	assert.Equal(t, "Qtd. Revisões", ds.Records[0].Indicator)
	assert.Equal(t, "Concessionária Sul", ds.Records[0].DealerKey)
	assert.Equal(t, "SC", ds.Records[0].Region)
	assert.InDelta(t, 1500.0, ds.Records[0].Amount, 1e-9)
	assert.Equal(t, []string{"99"}, ds.Report.UnknownIndicators)
}

func TestLoader_Parse_FatalErrors(t *testing.T) {
	loader := newTestLoader(Options{})

	_, err := loader.Parse("vazio.csv", []byte("   \n"))
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
	assert.True(t, errors.Is(err, ErrEmptySource))

	_, err = loader.Parse("sem-colunas.csv", []byte("periodo;titulo;valor\n01/01/2024;Faturamento;10\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumns))
	assert.Contains(t, err.Error(), "amount")
	assert.Contains(t, err.Error(), "dealer")

	_, err = newTestLoader(Options{Encoding: "utf-16"}).Parse("x.csv", []byte(semicolonExport))
	assert.True(t, errors.Is(err, ErrUnrecognizedEncoding))
}

func TestLoader_CustomMapping(t *testing.T) {
	opts := Options{
		Delimiter:        ',',
		DecimalSeparator: '.',
		Columns: ColumnMapping{
			FieldPeriod:    {"data"},
			FieldIndicator: {"kpi"},
			FieldAmount:    {"valor"},
			FieldDealer:    {"loja"},
		},
	}

	ds, err := newTestLoader(opts).Parse("custom.csv", []byte("DATA,KPI,VALOR,LOJA\n05/03/2024,Faturamento,1234.5,L1\n"))
	require.NoError(t, err)

	require.Len(t, ds.Records, 1)
	assert.InDelta(t, 1234.5, ds.Records[0].Amount, 1e-9)
	assert.Equal(t, "L1", ds.Records[0].DealerKey)
}

func TestLoader_LoadFile_Unreadable(t *testing.T) {
	_, err := newTestLoader(Options{}).LoadFile(filepath.Join(t.TempDir(), "nao-existe.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadableSource))
}

func TestStore_Refresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servicos.csv")
	require.NoError(t, os.WriteFile(path, []byte(semicolonExport), 0o600))

	store := NewStore(path, newTestLoader(Options{}))
	assert.Nil(t, store.Current())

	first, err := store.Load()
	require.NoError(t, err)
	assert.Same(t, first, store.Current())

	changed, err := store.Refresh()
	require.NoError(t, err)
	assert.False(t, changed)

	// Mesmo conteúdo com data de modificação nova: base mantida
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	changed, err = store.Refresh()
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Same(t, first, store.Current())

	// Conteúdo diferente: base substituída
	updated := semicolonExport + "30/04/2024;Faturamento;;10,00;DLR04;Grupo C;SUL\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	changed, err = store.Refresh()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, store.Current().Records, 5)
	assert.NotEqual(t, first.Hash, store.Current().Hash)

	// Arquivo quebrado mantém a base anterior
	require.NoError(t, os.WriteFile(path, []byte("coluna_qualquer\nx\n"), 0o600))

	changed, err = store.Refresh()
	assert.Error(t, err)
	assert.False(t, changed)
	assert.Len(t, store.Current().Records, 5)
}

func TestLoader_Parse_CleanExportWithDotDecimal(t *testing.T) {
	content := "periodo_dt,titulo,sub_titulo,realizado,realizado_num,chave,mes_ref,outlier_realizado\n" +
		"2024-01-01,Faturamento,Oficina,\"1.500,50\",1500.5,A,2024-01-01,False\n" +
		"2024-02-01,Faturamento,Oficina,\"12.000,00\",12000,B,2024-02-01,True\n"

	ds, err := newTestLoader(Options{}).Parse("ger_servicos_clean.csv", []byte(content))
	require.NoError(t, err)

	require.Len(t, ds.Records, 2)
	assert.InDelta(t, 1500.5, ds.Records[0].Amount, 1e-9)
	assert.InDelta(t, 12000.0, ds.Records[1].Amount, 1e-9)
	assert.Equal(t, "A", ds.Records[0].DealerKey)
	assert.Equal(t, 0, ds.Report.InvalidAmounts)

	// Só a coluna limpa, sem a coluna original
	ds, err = newTestLoader(Options{}).Parse("clean.csv", []byte("periodo_dt,titulo,realizado_num,chave\n2024-01-01,Faturamento,1500.5,A\n"))
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	assert.InDelta(t, 1500.5, ds.Records[0].Amount, 1e-9)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ds.Records[0].Period)
}
