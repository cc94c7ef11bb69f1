package dal

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, Red, c)

	c, err = ParseColor(" SILVER ")
	require.NoError(t, err)
	assert.Equal(t, Silver, c)

	_, err = ParseColor("PURPLE")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestColorsReturnsCopy(t *testing.T) {
	all := Colors()
	require.Len(t, all, 6)
	all[0] = "PINK"
	assert.Equal(t, Black, Colors()[0])
}

func TestParseSortCriteria(t *testing.T) {
	tests := []struct {
		in       string
		expected SortCriteria
	}{
		{in: "model", expected: SortByModel},
		{in: "PRICE", expected: SortByPrice},
		{in: "Mileage", expected: SortByMileage},
		{in: "color", expected: SortByColor},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSortCriteria(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, err := ParseSortCriteria("year")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCarPredicates(t *testing.T) {
	car := Car{Model: "X", Price: decimal.NewFromInt(10000), Mileage: 5000, Color: Red}

	assert.True(t, car.HasMileageGreaterThan(4999))
	assert.False(t, car.HasMileageGreaterThan(5000))

	assert.True(t, car.HasPriceBetween(decimal.NewFromInt(10000), decimal.NewFromInt(10000)))
	assert.True(t, car.HasPriceBetween(decimal.NewFromInt(5000), decimal.NewFromInt(20000)))
	assert.False(t, car.HasPriceBetween(decimal.NewFromInt(10001), decimal.NewFromInt(20000)))
}

func TestCloneDoesNotAliasComponents(t *testing.T) {
	car := Car{Model: "X", Components: []string{"radio", "ac"}}
	clone := car.Clone()
	clone.Components[0] = "gps"

	assert.Equal(t, []string{"radio", "ac"}, car.Components)
	assert.Equal(t, []string{"gps", "ac"}, clone.Components)
}

func TestCarString(t *testing.T) {
	car := Car{Model: "X", Price: decimal.NewFromInt(10000), Mileage: 5000, Color: Red, Components: []string{"radio", "ac"}}
	assert.Equal(t, "X | price: 10000 | mileage: 5000 | color: RED | components: radio, ac", car.String())
}

func TestNewCar(t *testing.T) {
	car, err := NewCar(Record{
		"model":      "X",
		"price":      json.Number("10000.50"),
		"mileage":    json.Number("5000"),
		"color":      "red",
		"components": []any{"radio", "ac"},
	})
	require.NoError(t, err)
	assert.Equal(t, "X", car.Model)
	assert.True(t, car.Price.Equal(decimal.RequireFromString("10000.5")))
	assert.Equal(t, 5000, car.Mileage)
	assert.Equal(t, Red, car.Color)
	assert.Equal(t, []string{"radio", "ac"}, car.Components)
}

func TestNewCarAcceptsPriceString(t *testing.T) {
	car, err := NewCar(Record{
		"model":   "Y",
		"price":   "199.99",
		"mileage": float64(12),
		"color":   "BLUE",
	})
	require.NoError(t, err)
	assert.True(t, car.Price.Equal(decimal.RequireFromString("199.99")))
	assert.Equal(t, 12, car.Mileage)
	assert.Empty(t, car.Components)
}

func TestNewCarValidation(t *testing.T) {
	valid := func() Record {
		return Record{
			"model":      "X",
			"price":      json.Number("100"),
			"mileage":    json.Number("10"),
			"color":      "RED",
			"components": []any{"ac"},
		}
	}

	tests := []struct {
		name   string
		mutate func(Record)
	}{
		{name: "UnknownColor", mutate: func(r Record) { r["color"] = "PURPLE" }},
		{name: "MissingModel", mutate: func(r Record) { delete(r, "model") }},
		{name: "ModelNotString", mutate: func(r Record) { r["model"] = json.Number("1") }},
		{name: "UnparseablePrice", mutate: func(r Record) { r["price"] = "cheap" }},
		{name: "NegativePrice", mutate: func(r Record) { r["price"] = json.Number("-1") }},
		{name: "PriceWrongType", mutate: func(r Record) { r["price"] = true }},
		{name: "FractionalMileage", mutate: func(r Record) { r["mileage"] = json.Number("10.5") }},
		{name: "NegativeMileage", mutate: func(r Record) { r["mileage"] = json.Number("-10") }},
		{name: "MileageOutOfRange", mutate: func(r Record) { r["mileage"] = 1e300 }},
		{name: "MileageBelowRange", mutate: func(r Record) { r["mileage"] = -1e300 }},
		{name: "MissingMileage", mutate: func(r Record) { delete(r, "mileage") }},
		{name: "ComponentNotString", mutate: func(r Record) { r["components"] = []any{"ac", json.Number("3")} }},
		{name: "ComponentsNotArray", mutate: func(r Record) { r["components"] = "ac" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := valid()
			tc.mutate(r)
			_, err := NewCar(r)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCarsFromRecordsNamesBadRecord(t *testing.T) {
	records := []Record{
		{"model": "X", "price": json.Number("1"), "mileage": json.Number("1"), "color": "RED"},
		{"model": "Y", "price": json.Number("1"), "mileage": json.Number("1"), "color": "ORANGE"},
	}
	_, err := CarsFromRecords(records)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "record 1")
}
