package entity

import "github.com/shopspring/decimal"

// Prices and totals go on the wire and into the order items snapshot as JSON
// numbers, e.g. 6.9 and not "6.9".
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
