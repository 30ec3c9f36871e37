// Package moneypkg provides common helpers for amounts crossing the API boundary.
package moneypkg

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Parse converts a decimal amount string to a float64.
func Parse(amount string) (float64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, err
	}

	return d.InexactFloat64(), nil
}

// Valid returns true if the amount parses as a non-negative decimal number.
func Valid(amount string) bool {
	d, err := decimal.NewFromString(amount)

	return err == nil && !d.IsNegative()
}

// Format renders an amount rounded to two decimal places.
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// ValidAmount validates that a request amount is a non-negative decimal number.
var ValidAmount validator.Func = func(fieldLevel validator.FieldLevel) bool {
	if amount, ok := fieldLevel.Field().Interface().(string); ok {
		return Valid(amount)
	}

	return false
}
