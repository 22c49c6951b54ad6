package models

import "github.com/shopspring/decimal"

// Purchase is the storage model for the purchases table.
type Purchase struct {
	PurchaseID           string              `json:"purchaseID"`
	Supplier             string              `json:"supplier"`
	MachineDescription   string              `json:"machineDescription"`
	Incoterm             string              `json:"incoterm"`
	CurrencyCode         string              `json:"currencyCode"`
	EXWValue             decimal.NullDecimal `json:"exwValue"`
	FOBExpenses          decimal.NullDecimal `json:"fobExpenses"`
	DisassemblyLoadValue decimal.NullDecimal `json:"disassemblyLoadValue"`
	AuditFields
}
