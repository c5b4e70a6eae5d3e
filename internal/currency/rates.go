// Package currency holds the static exchange-rate snapshot and the
// country/currency directory used for display-price conversion. The table
// never changes at runtime, so lookups are pure functions with no caching.
package currency

import "github.com/shopspring/decimal"

// rates maps from-currency -> to-currency -> multiplier. Most currencies
// only carry rates against the four invoice currencies (JPY/USD/EUR/GBP);
// the reverse direction is derived via the reciprocal in Rate.
var rates = map[string]map[string]float64{
	"AFN": {"JPY": 1.7, "USD": 0.011, "EUR": 0.010, "GBP": 0.0088, "AFN": 1},
	"AMD": {"JPY": 0.38, "USD": 0.0025, "EUR": 0.0023, "GBP": 0.0020, "AMD": 1},
	"AZN": {"JPY": 88, "USD": 0.52, "EUR": 0.48, "GBP": 0.42, "AZN": 1},
	"BHD": {"JPY": 395, "USD": 2.65, "EUR": 2.45, "GBP": 2.11, "BHD": 1},
	"BDT": {"JPY": 1.4, "USD": 0.0084, "EUR": 0.0078, "GBP": 0.0067, "BDT": 1},
	"BTN": {"JPY": 1.8, "USD": 0.012, "EUR": 0.011, "GBP": 0.0095, "BTN": 1},
	"BND": {"JPY": 110, "USD": 0.74, "EUR": 0.68, "GBP": 0.59, "BND": 1},
	"KHR": {"JPY": 0.036, "USD": 0.00024, "EUR": 0.00022, "GBP": 0.00019, "KHR": 1},
	"CNY": {"JPY": 21, "USD": 0.14, "EUR": 0.13, "GBP": 0.11, "CNY": 1},
	"EUR": {"JPY": 160.48, "USD": 1.07, "GBP": 0.85, "EUR": 1},
	"GEL": {"JPY": 53, "USD": 0.35, "EUR": 0.33, "GBP": 0.28, "GEL": 1},
	"INR": {"JPY": 1.8, "USD": 0.012, "EUR": 0.011, "GBP": 0.0095, "INR": 1},
	"IDR": {"JPY": 0.0096, "USD": 0.000064, "EUR": 0.000059, "GBP": 0.000051, "IDR": 1},
	"IRR": {"JPY": 0.0035, "USD": 0.000023, "EUR": 0.000021, "GBP": 0.000018, "IRR": 1},
	"IQD": {"JPY": 0.11, "USD": 0.00076, "EUR": 0.00070, "GBP": 0.00061, "IQD": 1},
	"ILS": {"JPY": 40, "USD": 0.27, "EUR": 0.25, "GBP": 0.21, "ILS": 1},
	"JPY": {"JPY": 1, "USD": 0.0067, "EUR": 0.0062, "GBP": 0.0053},
	"JOD": {"JPY": 210, "USD": 1.41, "EUR": 1.30, "GBP": 1.12, "JOD": 1},
	"KZT": {"JPY": 0.32, "USD": 0.0021, "EUR": 0.0020, "GBP": 0.0017, "KZT": 1},
	"KWD": {"JPY": 485, "USD": 3.25, "EUR": 3.00, "GBP": 2.59, "KWD": 1},
	"KGS": {"JPY": 1.7, "USD": 0.011, "EUR": 0.010, "GBP": 0.0088, "KGS": 1},
	"LAK": {"JPY": 0.0070, "USD": 0.000047, "EUR": 0.000043, "GBP": 0.000037, "LAK": 1},
	"LBP": {"JPY": 0.00017, "USD": 0.0000011, "EUR": 0.0000010, "GBP": 0.00000087, "LBP": 1},
	"MYR": {"JPY": 32, "USD": 0.21, "EUR": 0.20, "GBP": 0.17, "MYR": 1},
	"MVR": {"JPY": 9.7, "USD": 0.065, "EUR": 0.060, "GBP": 0.052, "MVR": 1},
	"MNT": {"JPY": 0.043, "USD": 0.000029, "EUR": 0.000027, "GBP": 0.000023, "MNT": 1},
	"MMK": {"JPY": 0.071, "USD": 0.00047, "EUR": 0.00044, "GBP": 0.00038, "MMK": 1},
	"NPR": {"JPY": 1.1, "USD": 0.0075, "EUR": 0.0069, "GBP": 0.0059, "NPR": 1},
	"KPW": {"JPY": 1.2, "USD": 0.0080, "EUR": 0.0074, "GBP": 0.0064, "KPW": 1},
	"OMR": {"JPY": 387, "USD": 2.59, "EUR": 2.39, "GBP": 2.06, "OMR": 1},
	"PKR": {"JPY": 0.54, "USD": 0.0036, "EUR": 0.0033, "GBP": 0.0029, "PKR": 1},
	"PHP": {"JPY": 2.5, "USD": 0.017, "EUR": 0.015, "GBP": 0.013, "PHP": 1},
	"QAR": {"JPY": 41, "USD": 0.28, "EUR": 0.26, "GBP": 0.22, "QAR": 1},
	"RUB": {"JPY": 1.6, "USD": 0.011, "EUR": 0.010, "GBP": 0.0086, "RUB": 1},
	"SAR": {"JPY": 40, "USD": 0.27, "EUR": 0.25, "GBP": 0.21, "SAR": 1},
	"SGD": {"JPY": 110, "USD": 0.74, "EUR": 0.68, "GBP": 0.59, "SGD": 1},
	"KRW": {"JPY": 0.11, "USD": 0.00075, "EUR": 0.00069, "GBP": 0.00059, "KRW": 1},
	"LKR": {"JPY": 0.49, "USD": 0.0033, "EUR": 0.0030, "GBP": 0.0026, "LKR": 1},
	"SYP": {"JPY": 0.00015, "USD": 0.0000010, "EUR": 0.00000092, "GBP": 0.00000080, "SYP": 1},
	"TWD": {"JPY": 4.6, "USD": 0.031, "EUR": 0.029, "GBP": 0.025, "TWD": 1},
	"TJS": {"JPY": 14, "USD": 0.094, "EUR": 0.087, "GBP": 0.075, "TJS": 1},
	"THB": {"JPY": 4.1, "USD": 0.027, "EUR": 0.025, "GBP": 0.022, "THB": 1},
	"USD": {"JPY": 149.25, "EUR": 0.93, "GBP": 0.79, "USD": 1},
	"TRY": {"JPY": 4.6, "USD": 0.031, "EUR": 0.029, "GBP": 0.025, "TRY": 1},
	"TMT": {"JPY": 42, "USD": 0.28, "EUR": 0.26, "GBP": 0.22, "TMT": 1},
	"AED": {"JPY": 40, "USD": 0.27, "EUR": 0.25, "GBP": 0.21, "AED": 1},
	"UZS": {"JPY": 0.012, "USD": 0.000081, "EUR": 0.000075, "GBP": 0.000065, "UZS": 1},
	"VND": {"JPY": 0.0063, "USD": 0.000042, "EUR": 0.000039, "GBP": 0.000034, "VND": 1},
	"YER": {"JPY": 0.59, "USD": 0.0040, "EUR": 0.0037, "GBP": 0.0032, "YER": 1},
	"GBP": {"JPY": 189.51, "USD": 1.26, "EUR": 1.18, "GBP": 1},
}

// Rate returns the multiplier converting from one currency to another.
// Identity pairs are exactly 1. When only the reverse rate is known the
// reciprocal is used. A rate of 0 means the pair is unsupported; callers
// must treat a zero rate as "unsupported", never as a free conversion.
func Rate(from, to string) decimal.Decimal {
	if from == to {
		return decimal.NewFromInt(1)
	}

	if direct, ok := rates[from]; ok {
		if r, ok := direct[to]; ok {
			return decimal.NewFromFloat(r)
		}
	}

	if reverse, ok := rates[to]; ok {
		if r, ok := reverse[from]; ok && r != 0 {
			return decimal.NewFromInt(1).Div(decimal.NewFromFloat(r))
		}
	}

	return decimal.Zero
}

// Convert converts an amount between currencies. An unsupported pair
// yields zero.
func Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return amount
	}
	return amount.Mul(Rate(from, to))
}

// Supported reports whether a conversion between the two currencies is
// possible with the current snapshot.
func Supported(from, to string) bool {
	return !Rate(from, to).IsZero()
}
