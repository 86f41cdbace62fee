package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceitos, sempre com o dia antes do mês
var dayFirstLayouts = []string{
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2/1/2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate interpreta um filtro de data opcional: texto vazio devolve nil
func ParseDate(dateStr string) (*time.Time, error) {
	if strings.TrimSpace(dateStr) == "" {
		return nil, nil
	}

	date, err := ParseDayFirstDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseDayFirstDate interpreta datas no padrão DD/MM/YYYY (com ou sem hora).
// "31/01/2024" é 31 de janeiro, nunca 1º de março.
func ParseDayFirstDate(s string) (time.Time, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("data inválida: %q", raw)
}

// FirstDayOfMonth retorna o primeiro dia do mês da data, à meia-noite UTC
func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// FormatPeriod formata a data no padrão mm-yyyy
func FormatPeriod(date time.Time) string {
	return date.Format("01-2006")
}
