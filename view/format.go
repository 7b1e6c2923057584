package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var valuePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatValue renders a contract value as dollars with thousands separators,
// e.g. 45000 -> "$45,000".
func FormatValue(v float64) string {
	return valuePrinter.Sprintf("$%v", number.Decimal(v, number.MaxFractionDigits(2)))
}
