package service

import "github.com/shopspring/decimal"

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
