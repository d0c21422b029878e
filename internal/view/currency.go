package view

import "fmt"

// Currency formatting is presentation only. Prices from the API are in USD;
// other currencies use a fixed conversion table.
var conversionRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"BRL": 5.10,
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"BRL": "R$",
}

// Convert converts a USD amount to the given currency code. Unknown codes
// fall back to USD.
func Convert(usd float64, code string) float64 {
	rate, ok := conversionRates[code]
	if !ok {
		rate = 1.0
	}
	return usd * rate
}

// FormatPrice renders a USD amount in the given currency code, e.g.
// FormatPrice(50, "EUR") → "€46.00".
func FormatPrice(usd float64, code string) string {
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = "$"
	}
	return fmt.Sprintf("%s%.2f", symbol, Convert(usd, code))
}
