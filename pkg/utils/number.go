package utils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseBRLAmount converte valores no formato brasileiro ("1.234,56") para float64.
// Retorna false quando o texto está vazio ou não é numérico.
func ParseBRLAmount(s string) (float64, bool) {
	return ParseAmount(s, ',')
}

// ParseAmount converte um valor numérico com o separador decimal informado.
// Com ',' o ponto é separador de milhar; com '.' a vírgula é que é descartada.
func ParseAmount(s string, decimalSeparator rune) (float64, bool) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "R$")
	raw = strings.ReplaceAll(raw, "\u00A0", "")
	raw = strings.ReplaceAll(raw, " ", "")
	if raw == "" {
		return 0, false
	}

	if decimalSeparator == ',' {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.Replace(raw, ",", ".", 1)
	} else {
		raw = strings.ReplaceAll(raw, ",", "")
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, false
	}

	return d.InexactFloat64(), true
}

// FormatBRL formata um valor com duas casas decimais no padrão brasileiro ("1.234,56")
func FormatBRL(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "—"
	}

	fixed := decimal.NewFromFloat(f).StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := b.String() + "," + fracPart
	if negative && strings.Trim(out, "0,.") != "" {
		out = "-" + out
	}

	return out
}

// Ratio divide numerador por denominador, retornando 0 quando o denominador não é positivo.
// Um retorno 0 não distingue "sem atividade" de "média zero".
func Ratio(numerator, denominator float64) float64 {
	if denominator <= 0 || math.IsNaN(denominator) {
		return 0
	}

	return numerator / denominator
}
