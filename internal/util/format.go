package util

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// NotAvailable is displayed in place of a value that is missing or not a number
const NotAvailable = "N/A"

// rupee formats NAVs the way the fund association publishes them: "Rs. 1,234.56".
var rupee = money.AddCurrency("PKR-RS", "Rs. ", "$1", ".", ",", 2)

// FormatRupees formats an amount in rupees with two decimals and thousand separators.
// Non-finite amounts format as N/A.
func FormatRupees(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return NotAvailable
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(rupee.Fraction)).Round(0).IntPart()
	return rupee.Formatter().Format(minor)
}

// FormatPercent formats a return as "1.23%", or N/A when absent.
func FormatPercent(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f%%", *v)
}
