package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceStats summarizes car prices
type PriceStats struct {
	Average decimal.Decimal `json:"average" yaml:"average"`
	Max     decimal.Decimal `json:"max" yaml:"max"`
	Min     decimal.Decimal `json:"min" yaml:"min"`
}

// MileageStats summarizes car mileage
type MileageStats struct {
	Average decimal.Decimal `json:"average" yaml:"average"`
	Max     int             `json:"max" yaml:"max"`
	Min     int             `json:"min" yaml:"min"`
}

// Statistics defines the price and mileage summary of a collection
type Statistics struct {
	Price   PriceStats   `json:"price" yaml:"price"`
	Mileage MileageStats `json:"mileage" yaml:"mileage"`
}

// Statistics computes average, max and min price and mileage.
// An empty collection yields zeros.
func (s *Service) Statistics() Statistics {
	var stats Statistics
	if len(s.cars) == 0 {
		return stats
	}

	first := s.cars[0]
	priceSum := decimal.Zero
	var mileageSum int64
	stats.Price.Max, stats.Price.Min = first.Price, first.Price
	stats.Mileage.Max, stats.Mileage.Min = first.Mileage, first.Mileage

	for _, car := range s.cars {
		priceSum = priceSum.Add(car.Price)
		mileageSum += int64(car.Mileage)

		if car.Price.GreaterThan(stats.Price.Max) {
			stats.Price.Max = car.Price
		}
		if car.Price.LessThan(stats.Price.Min) {
			stats.Price.Min = car.Price
		}
		stats.Mileage.Max = max(stats.Mileage.Max, car.Mileage)
		stats.Mileage.Min = min(stats.Mileage.Min, car.Mileage)
	}

	n := decimal.NewFromInt(int64(len(s.cars)))
	stats.Price.Average = priceSum.Div(n)
	stats.Mileage.Average = decimal.NewFromInt(mileageSum).Div(n)
	return stats
}

// Report formats the statistics as a text block
func (st Statistics) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PRICE:\n  average: %s\n  max: %s\n  min: %s\n",
		st.Price.Average, st.Price.Max, st.Price.Min)
	fmt.Fprintf(&b, "MILEAGE:\n  average: %s\n  max: %d\n  min: %d\n",
		st.Mileage.Average, st.Mileage.Max, st.Mileage.Min)
	return b.String()
}
