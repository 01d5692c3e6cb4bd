package domain

import "github.com/shopspring/decimal"

func init() {
	// Amounts and weights are rendered as JSON numbers; both numbers and numeric
	// strings are accepted on input.
	decimal.MarshalJSONWithoutQuotes = true
}
