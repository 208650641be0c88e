package models

import "strings"

// Country carries the currency a raffle is priced in. Formatting for display
// is left to clients.
type Country struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	CurrencyCode   string `json:"currency_code"`
	CurrencySymbol string `json:"currency_symbol"`
}

// Countries is the catalog of countries a raffle can be created for.
var Countries = []Country{
	{Code: "AR", Name: "Argentina", CurrencyCode: "ARS", CurrencySymbol: "$"},
	{Code: "BO", Name: "Bolivia", CurrencyCode: "BOB", CurrencySymbol: "Bs"},
	{Code: "CL", Name: "Chile", CurrencyCode: "CLP", CurrencySymbol: "$"},
	{Code: "CO", Name: "Colombia", CurrencyCode: "COP", CurrencySymbol: "$"},
	{Code: "CR", Name: "Costa Rica", CurrencyCode: "CRC", CurrencySymbol: "₡"},
	{Code: "DO", Name: "República Dominicana", CurrencyCode: "DOP", CurrencySymbol: "RD$"},
	{Code: "EC", Name: "Ecuador", CurrencyCode: "USD", CurrencySymbol: "$"},
	{Code: "ES", Name: "España", CurrencyCode: "EUR", CurrencySymbol: "€"},
	{Code: "GT", Name: "Guatemala", CurrencyCode: "GTQ", CurrencySymbol: "Q"},
	{Code: "HN", Name: "Honduras", CurrencyCode: "HNL", CurrencySymbol: "L"},
	{Code: "MX", Name: "México", CurrencyCode: "MXN", CurrencySymbol: "$"},
	{Code: "NI", Name: "Nicaragua", CurrencyCode: "NIO", CurrencySymbol: "C$"},
	{Code: "PA", Name: "Panamá", CurrencyCode: "PAB", CurrencySymbol: "B/."},
	{Code: "PE", Name: "Perú", CurrencyCode: "PEN", CurrencySymbol: "S/"},
	{Code: "PY", Name: "Paraguay", CurrencyCode: "PYG", CurrencySymbol: "₲"},
	{Code: "SV", Name: "El Salvador", CurrencyCode: "USD", CurrencySymbol: "$"},
	{Code: "US", Name: "United States", CurrencyCode: "USD", CurrencySymbol: "$"},
	{Code: "UY", Name: "Uruguay", CurrencyCode: "UYU", CurrencySymbol: "$U"},
	{Code: "VE", Name: "Venezuela", CurrencyCode: "VES", CurrencySymbol: "Bs.S"},
}

// CountryByCode looks a country up by its ISO 3166 alpha-2 code, case-insensitively.
func CountryByCode(code string) (Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}
