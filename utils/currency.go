package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const CurrencyUnit = "VND"

var vnPrinter = message.NewPrinter(language.Vietnamese)

// FormatPrice 120000 -> "120.000 VND" (không dùng ký hiệu ₫ vì font không vẽ được)
func FormatPrice(amount float64) string {
	return vnPrinter.Sprintf("%d", int64(math.Round(amount))) + " " + CurrencyUnit
}
