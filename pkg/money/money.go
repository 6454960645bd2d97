// Package money formatea montos para mostrar en USD (moneda de curso en
// Ecuador) con formato regional es-419.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.LatinAmericanSpanish)

// FormatUSD devuelve la representación para pantalla de un monto en USD,
// por ejemplo "USD 12,50". Solo para presentación: los cálculos siempre
// se hacen sobre decimal.Decimal.
func FormatUSD(amount decimal.Decimal) string {
	v, _ := amount.Round(2).Float64()
	return printer.Sprint(currency.Symbol(currency.USD.Amount(v)))
}
