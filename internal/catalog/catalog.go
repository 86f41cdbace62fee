// Package catalog centraliza a classificação dos indicadores (estoque ou fluxo) e as razões derivadas
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
)

// Catalog é a tabela única de indicadores conhecidos, indexada pelo nome normalizado e pelo ID numérico
type Catalog struct {
	byName  map[string]domain.IndicatorDefinition
	byID    map[string]domain.IndicatorDefinition
	derived []domain.DerivedKPIDefinition

	warnedMu sync.Mutex
	warned   map[string]bool
}

// New cria o catálogo a partir das definições; nomes e IDs duplicados são rejeitados
func New(indicators []domain.IndicatorDefinition, derived []domain.DerivedKPIDefinition) (*Catalog, error) {
	c := &Catalog{
		byName:  make(map[string]domain.IndicatorDefinition, len(indicators)),
		byID:    make(map[string]domain.IndicatorDefinition),
		derived: derived,
		warned:  make(map[string]bool),
	}

	for _, def := range indicators {
		key := domain.NormalizeIndicatorName(def.Name)
		if key == "" {
			return nil, fmt.Errorf("catálogo: indicador sem nome")
		}

		kind, err := domain.ParseIndicatorKind(string(def.Kind))
		if err != nil {
			return nil, fmt.Errorf("catálogo: indicador %q: %w", def.Name, err)
		}
		def.Kind = kind

		if _, exists := c.byName[key]; exists {
			return nil, fmt.Errorf("catálogo: indicador duplicado %q", def.Name)
		}
		c.byName[key] = def

		if id := strings.TrimSpace(def.ID); id != "" {
			if _, exists := c.byID[id]; exists {
				return nil, fmt.Errorf("catálogo: id duplicado %q", id)
			}
			c.byID[id] = def
		}
	}

	for _, d := range derived {
		for _, ref := range []string{d.Numerator, d.Denominator} {
			if _, ok := c.byName[domain.NormalizeIndicatorName(ref)]; !ok {
				return nil, fmt.Errorf("catálogo: KPI derivado %q referencia indicador desconhecido %q", d.Name, ref)
			}
		}
	}

	return c, nil
}

// Default retorna o catálogo padrão do painel de serviços
func Default() *Catalog {
	c, err := New(DefaultIndicators(), DefaultDerivedKPIs())
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile carrega o catálogo de um arquivo (yaml, json ou toml) usando o Viper
func LoadFile(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("catálogo: erro ao ler %s: %w", path, err)
	}

	var file struct {
		Indicators  []domain.IndicatorDefinition  `mapstructure:"indicators"`
		DerivedKPIs []domain.DerivedKPIDefinition `mapstructure:"derived_kpis"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("catálogo: erro ao decodificar %s: %w", path, err)
	}

	if len(file.Indicators) == 0 {
		return nil, fmt.Errorf("catálogo: nenhum indicador definido em %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"path":         path,
		"indicators":   len(file.Indicators),
		"derived_kpis": len(file.DerivedKPIs),
	}).Info("Catálogo de indicadores carregado")

	return New(file.Indicators, file.DerivedKPIs)
}

// Lookup busca o indicador pelo nome (sem diferenciar maiúsculas e espaços)
func (c *Catalog) Lookup(name string) (domain.IndicatorDefinition, bool) {
	def, ok := c.byName[domain.NormalizeIndicatorName(name)]
	return def, ok
}

// LookupID busca o indicador pelo ID numérico da exportação (coluna metrica_id)
func (c *Catalog) LookupID(id string) (domain.IndicatorDefinition, bool) {
	def, ok := c.byID[strings.TrimSpace(id)]
	return def, ok
}

// Resolve retorna a definição do indicador pelo nome ou pelo ID numérico. Indicadores
// desconhecidos são tratados como snapshot, a agregação que nunca soma estoques entre meses.
func (c *Catalog) Resolve(name string) domain.IndicatorDefinition {
	if def, ok := c.Lookup(name); ok {
		return def
	}
	if def, ok := c.LookupID(name); ok {
		return def
	}

	c.warnUnknown(name)

	return domain.IndicatorDefinition{
		Name: strings.TrimSpace(name),
		Kind: domain.IndicatorSnapshot,
	}
}

// Kind retorna o tipo do indicador
func (c *Catalog) Kind(name string) domain.IndicatorKind {
	return c.Resolve(name).Kind
}

// DerivedKPIs retorna as razões configuradas
func (c *Catalog) DerivedKPIs() []domain.DerivedKPIDefinition {
	return c.derived
}

// Indicators retorna as definições ordenadas pelo nome
func (c *Catalog) Indicators() []domain.IndicatorDefinition {
	out := make([]domain.IndicatorDefinition, 0, len(c.byName))
	for _, def := range c.byName {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Validate confere os indicadores presentes na base e retorna os desconhecidos, avisando uma vez por nome
func (c *Catalog) Validate(indicators []string) []string {
	unknown := make([]string, 0)
	seen := make(map[string]bool)

	for _, name := range indicators {
		key := domain.NormalizeIndicatorName(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		if _, ok := c.byName[key]; !ok {
			unknown = append(unknown, name)
			c.warnUnknown(name)
		}
	}

	sort.Strings(unknown)
	return unknown
}

func (c *Catalog) warnUnknown(name string) {
	key := domain.NormalizeIndicatorName(name)

	c.warnedMu.Lock()
	defer c.warnedMu.Unlock()

	if c.warned[key] {
		return
	}
	c.warned[key] = true

	logrus.WithField("indicator", name).Warn("Indicador fora do catálogo, tratado como snapshot")
}
