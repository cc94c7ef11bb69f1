package dal

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is a single untyped car entry as read from the data file
type Record map[string]any

// NewCar converts a raw record into a Car
func NewCar(r Record) (Car, error) {
	model, err := stringField(r, "model")
	if err != nil {
		return Car{}, err
	}

	price, err := priceField(r)
	if err != nil {
		return Car{}, err
	}

	mileage, err := mileageField(r)
	if err != nil {
		return Car{}, err
	}

	colorName, err := stringField(r, "color")
	if err != nil {
		return Car{}, err
	}
	color, err := ParseColor(colorName)
	if err != nil {
		return Car{}, err
	}

	components, err := componentsField(r)
	if err != nil {
		return Car{}, err
	}

	return Car{
		Model:      model,
		Price:      price,
		Mileage:    mileage,
		Color:      color,
		Components: components,
	}, nil
}

// CarsFromRecords converts every record, stopping at the first invalid one
func CarsFromRecords(records []Record) ([]Car, error) {
	cars := make([]Car, 0, len(records))
	for i, r := range records {
		car, err := NewCar(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		cars = append(cars, car)
	}
	return cars, nil
}

func stringField(r Record, name string) (string, error) {
	raw, ok := r[name]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", ErrValidation, name)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q must be a string, got %T", ErrValidation, name, raw)
	}
	return s, nil
}

func priceField(r Record) (decimal.Decimal, error) {
	raw, ok := r["price"]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: missing field %q", ErrValidation, "price")
	}

	var (
		price decimal.Decimal
		err   error
	)
	switch v := raw.(type) {
	case json.Number:
		price, err = decimal.NewFromString(v.String())
	case string:
		price, err = decimal.NewFromString(strings.TrimSpace(v))
	case float64:
		price = decimal.NewFromFloat(v)
	case int:
		price = decimal.NewFromInt(int64(v))
	case int64:
		price = decimal.NewFromInt(v)
	default:
		return decimal.Zero, fmt.Errorf("%w: field %q must be a number, got %T", ErrValidation, "price", raw)
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: field %q: %v", ErrValidation, "price", err)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: price must not be negative: %s", ErrValidation, price)
	}
	return price, nil
}

func mileageField(r Record) (int, error) {
	raw, ok := r["mileage"]
	if !ok {
		return 0, fmt.Errorf("%w: missing field %q", ErrValidation, "mileage")
	}

	var mileage int64
	switch v := raw.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: mileage must be an integer: %s", ErrValidation, v)
		}
		mileage = n
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: mileage must be an integer: %v", ErrValidation, v)
		}
		if v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, fmt.Errorf("%w: mileage out of range: %v", ErrValidation, v)
		}
		mileage = int64(v)
	case int:
		mileage = int64(v)
	case int64:
		mileage = v
	default:
		return 0, fmt.Errorf("%w: field %q must be an integer, got %T", ErrValidation, "mileage", raw)
	}
	if mileage < 0 {
		return 0, fmt.Errorf("%w: mileage must not be negative: %d", ErrValidation, mileage)
	}
	return int(mileage), nil
}

func componentsField(r Record) ([]string, error) {
	raw, ok := r["components"]
	if !ok || raw == nil {
		return []string{}, nil
	}

	switch v := raw.(type) {
	case []string:
		return append([]string{}, v...), nil
	case []any:
		components := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: components[%d] must be a string, got %T", ErrValidation, i, item)
			}
			components = append(components, s)
		}
		return components, nil
	}
	return nil, fmt.Errorf("%w: field %q must be an array of strings, got %T", ErrValidation, "components", raw)
}
