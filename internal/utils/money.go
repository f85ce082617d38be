package utils

import (
	"fmt"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
