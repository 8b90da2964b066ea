package domain

// FallbackFlag is used when a currency code has no catalog entry.
const FallbackFlag = "🏳️"

// Currency represents a supported currency in the domain.
type Currency struct {
	Code string `json:"code"` // ISO-4217 style, 3 letters (e.g. "USD")
	Name string `json:"name"` // Display name, fixed locale
	Flag string `json:"flag"` // Flag emoji
}

// Catalog returns the static currency catalog. It is loaded once at startup
// and never mutated.
func Catalog() []Currency {
	out := make([]Currency, len(catalog))
	copy(out, catalog)
	return out
}

// FlagFor returns the flag for a currency code, or FallbackFlag when the
// code is not in the catalog.
func FlagFor(code string) string {
	for _, c := range catalog {
		if c.Code == code {
			return c.Flag
		}
	}
	return FallbackFlag
}

// KnownCurrency reports whether the code exists in the catalog.
func KnownCurrency(code string) bool {
	for _, c := range catalog {
		if c.Code == code {
			return true
		}
	}
	return false
}

var catalog = []Currency{
	// Principales globales
	{Code: "USD", Name: "Dólar Estadounidense", Flag: "🇺🇸"},
	{Code: "EUR", Name: "Euro", Flag: "🇪🇺"},
	{Code: "GBP", Name: "Libra Esterlina", Flag: "🇬🇧"},

	// Latinoamérica
	{Code: "MXN", Name: "Peso Mexicano", Flag: "🇲🇽"},
	{Code: "ARS", Name: "Peso Argentino", Flag: "🇦🇷"},
	{Code: "BRL", Name: "Real Brasileño", Flag: "🇧🇷"},
	{Code: "CLP", Name: "Peso Chileno", Flag: "🇨🇱"},
	{Code: "COP", Name: "Peso Colombiano", Flag: "🇨🇴"},
	{Code: "PEN", Name: "Sol Peruano", Flag: "🇵🇪"},
	{Code: "UYU", Name: "Peso Uruguayo", Flag: "🇺🇾"},
	{Code: "BOB", Name: "Boliviano", Flag: "🇧🇴"},
	{Code: "VES", Name: "Bolívar Venezolano", Flag: "🇻🇪"},
	{Code: "CRC", Name: "Colón Costarricense", Flag: "🇨🇷"},
	{Code: "DOP", Name: "Peso Dominicano", Flag: "🇩🇴"},
	{Code: "GTQ", Name: "Quetzal", Flag: "🇬🇹"},
	{Code: "HNL", Name: "Lempira", Flag: "🇭🇳"},
	{Code: "NIO", Name: "Córdoba", Flag: "🇳🇮"},
	{Code: "PYG", Name: "Guaraní", Flag: "🇵🇾"},

	// Otras importantes
	{Code: "CAD", Name: "Dólar Canadiense", Flag: "🇨🇦"},
	{Code: "JPY", Name: "Yen Japonés", Flag: "🇯🇵"},
	{Code: "CNY", Name: "Yuan Chino", Flag: "🇨🇳"},
	{Code: "AUD", Name: "Dólar Australiano", Flag: "🇦🇺"},
	{Code: "CHF", Name: "Franco Suizo", Flag: "🇨🇭"},
}
