package models

// Currency is the storage model for the currencies table.
type Currency struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	AuditFields
}
