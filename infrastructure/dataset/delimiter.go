package dataset

import (
	"strings"
	"unicode/utf8"
)

var candidateDelimiters = []rune{';', ',', '\t'}

// SniffDelimiter escolhe o separador mais frequente na linha de cabeçalho, preferindo ';'
func SniffDelimiter(headerLine string) rune {
	best := ','
	bestCount := 0

	for _, d := range candidateDelimiters {
		count := strings.Count(headerLine, string(d))
		if count > bestCount {
			best = d
			bestCount = count
		}
	}

	return best
}

// ParseDelimiter interpreta o separador configurado; retorna 0 para detecção automática
func ParseDelimiter(s string) rune {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return 0
	case `\t`, "tab":
		return '\t'
	}

	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func firstLine(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	return strings.TrimSuffix(line, "\r")
}
