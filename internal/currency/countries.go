package currency

// Country pairs a buyer-facing country name with its invoice currency and
// display symbol.
type Country struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Symbol   string `json:"symbol"`
}

var countries = []Country{
	{Name: "Japan", Currency: "JPY", Symbol: "¥"},
	{Name: "United States", Currency: "USD", Symbol: "$"},
	{Name: "Europe", Currency: "EUR", Symbol: "€"},
	{Name: "United Kingdom", Currency: "GBP", Symbol: "£"},
	{Name: "Afghanistan", Currency: "AFN", Symbol: "؋"},
	{Name: "Armenia", Currency: "AMD", Symbol: "AMD"},
	{Name: "Azerbaijan", Currency: "AZN", Symbol: "₼"},
	{Name: "Bahrain", Currency: "BHD", Symbol: ".د.ب"},
	{Name: "Bangladesh", Currency: "BDT", Symbol: "৳"},
	{Name: "Bhutan", Currency: "BTN", Symbol: "Nu."},
	{Name: "Brunei", Currency: "BND", Symbol: "$"},
	{Name: "Cambodia", Currency: "KHR", Symbol: "៛"},
	{Name: "China", Currency: "CNY", Symbol: "¥"},
	{Name: "Cyprus", Currency: "EUR", Symbol: "€"},
	{Name: "Georgia", Currency: "GEL", Symbol: "₾"},
	{Name: "India", Currency: "INR", Symbol: "₹"},
	{Name: "Indonesia", Currency: "IDR", Symbol: "Rp"},
	{Name: "Iran", Currency: "IRR", Symbol: "﷼"},
	{Name: "Iraq", Currency: "IQD", Symbol: "ع.د"},
	{Name: "Israel", Currency: "ILS", Symbol: "₪"},
	{Name: "Jordan", Currency: "JOD", Symbol: "د.ا"},
	{Name: "Kazakhstan", Currency: "KZT", Symbol: "₸"},
	{Name: "Kuwait", Currency: "KWD", Symbol: "د.ك"},
	{Name: "Kyrgyzstan", Currency: "KGS", Symbol: "сom"},
	{Name: "Laos", Currency: "LAK", Symbol: "₭"},
	{Name: "Lebanon", Currency: "LBP", Symbol: "ل.ل"},
	{Name: "Malaysia", Currency: "MYR", Symbol: "RM"},
	{Name: "Maldives", Currency: "MVR", Symbol: ".ރ"},
	{Name: "Mongolia", Currency: "MNT", Symbol: "₮"},
	{Name: "Myanmar", Currency: "MMK", Symbol: "Ks"},
	{Name: "Nepal", Currency: "NPR", Symbol: "₨"},
	{Name: "North Korea", Currency: "KPW", Symbol: "₩"},
	{Name: "Oman", Currency: "OMR", Symbol: "ر.ع."},
	{Name: "Pakistan", Currency: "PKR", Symbol: "₨"},
	{Name: "Palestine", Currency: "ILS", Symbol: "₪"},
	{Name: "Philippines", Currency: "PHP", Symbol: "₱"},
	{Name: "Qatar", Currency: "QAR", Symbol: "ر.ق"},
	{Name: "Russia", Currency: "RUB", Symbol: "₽"},
	{Name: "Saudi Arabia", Currency: "SAR", Symbol: "ر.س"},
	{Name: "Singapore", Currency: "SGD", Symbol: "$"},
	{Name: "South Korea", Currency: "KRW", Symbol: "₩"},
	{Name: "Sri Lanka", Currency: "LKR", Symbol: "₨"},
	{Name: "Syria", Currency: "SYP", Symbol: "£"},
	{Name: "Taiwan", Currency: "TWD", Symbol: "NT$"},
	{Name: "Tajikistan", Currency: "TJS", Symbol: "ЅМ"},
	{Name: "Thailand", Currency: "THB", Symbol: "฿"},
	{Name: "Timor-Leste", Currency: "USD", Symbol: "$"},
	{Name: "Turkey", Currency: "TRY", Symbol: "₺"},
	{Name: "Turkmenistan", Currency: "TMT", Symbol: "m"},
	{Name: "United Arab Emirates", Currency: "AED", Symbol: "د.إ"},
	{Name: "Uzbekistan", Currency: "UZS", Symbol: "лв"},
	{Name: "Vietnam", Currency: "VND", Symbol: "₫"},
	{Name: "Yemen", Currency: "YER", Symbol: "﷼"},
}

// Countries returns the full selectable country list in display order.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// CountryByName looks up a country by its display name.
func CountryByName(name string) (Country, bool) {
	for _, c := range countries {
		if c.Name == name {
			return c, true
		}
	}
	return Country{}, false
}

// SymbolFor returns the display symbol for a currency code, falling back
// to the code itself for codes not in the directory.
func SymbolFor(code string) string {
	for _, c := range countries {
		if c.Currency == code {
			return c.Symbol
		}
	}
	return code
}
