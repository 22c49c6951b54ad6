package domain

// Currency represents a currency usable for purchases and exchange rates.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // ISO-like 3-letter code, primary key
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	AuditFields
}
