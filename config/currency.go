package config

// CountryCurrencyMap maps ISO country codes to their local currency.
// Countries absent from the map bill in the baseline currency; the rate
// resolver owns that fallback.
var CountryCurrencyMap = map[string]string{
	"US": "USD",
	"GB": "GBP",
	"AU": "AUD",
	"CA": "CAD",
	"NZ": "NZD",
	"LK": "LKR",
	"IN": "INR",
	"SG": "SGD",
	"MY": "MYR",
	"AE": "AED",
	"QA": "QAR",
	"SA": "SAR",
	"KE": "KES",
	"ZA": "ZAR",
	"DE": "EUR",
	"FR": "EUR",
	"IT": "EUR",
	"ES": "EUR",
	"NL": "EUR",
	"IE": "EUR",
	"JP": "JPY",
	"CN": "CNY",
}
