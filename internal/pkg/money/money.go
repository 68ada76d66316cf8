// Package money 計件金額運算，以 decimal 計算後四捨五入到小數兩位再轉回 float64 儲存
package money

import "github.com/shopspring/decimal"

const places = 2

// Total 件數 × 單價
func Total(pieces int64, ratePerPiece float64) float64 {
	return decimal.NewFromInt(pieces).
		Mul(decimal.NewFromFloat(ratePerPiece)).
		Round(places).
		InexactFloat64()
}

// Sum 加總
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(places).InexactFloat64()
}

// Percentage part / whole × 100；whole <= 0 時為 0，超過 100 時封頂
func Percentage(part, whole int64) float64 {
	if whole <= 0 || part <= 0 {
		return 0
	}
	if part >= whole {
		return 100
	}
	return decimal.NewFromInt(part).
		Div(decimal.NewFromInt(whole)).
		Mul(decimal.NewFromInt(100)).
		Round(places).
		InexactFloat64()
}

// Mean 平均，空集合為 0
func Mean(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Div(decimal.NewFromInt(int64(len(values)))).Round(places).InexactFloat64()
}
