package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountPrefix casa o maior prefixo numérico válido depois da limpeza
var amountPrefix = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundToWholePercent arredonda um percentual para o ponto inteiro mais próximo
func RoundToWholePercent(f float64) float64 {
	rounded := math.Round(f)
	if rounded == 0 {
		return 0 // evita "-0%"
	}

	return rounded
}

// SanitizeAmount converte texto livre digitado pelo usuário em valor monetário.
// Remove tudo que não for dígito, '.' ou '-' e lê o maior prefixo numérico.
// Qualquer falha resulta em zero.
func SanitizeAmount(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)

	match := amountPrefix.FindString(cleaned)
	if match == "" {
		return 0
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	return value
}

// FormatCurrency formata um valor com duas casas decimais, sem símbolo
func FormatCurrency(f float64) string {
	return strconv.FormatFloat(RoundWithTwoDecimalPlace(f), 'f', 2, 64)
}

// FormatPercent formata um percentual arredondado para inteiro, ex: "69%"
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", RoundToWholePercent(f))
}
