package dal

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Color defines the paint color of a car
type Color string

const (
	Black  Color = "BLACK"
	Blue   Color = "BLUE"
	Green  Color = "GREEN"
	Red    Color = "RED"
	Silver Color = "SILVER"
	White  Color = "WHITE"
)

var colors = []Color{Black, Blue, Green, Red, Silver, White}

// Colors returns every known color in declaration order
func Colors() []Color {
	return slices.Clone(colors)
}

// ParseColor matches name against the known colors, ignoring case
func ParseColor(name string) (Color, error) {
	c := Color(strings.ToUpper(strings.TrimSpace(name)))
	if !slices.Contains(colors, c) {
		return "", fmt.Errorf("%w: unknown color %q", ErrValidation, name)
	}
	return c, nil
}

// SortCriteria names the car field a collection is sorted by
type SortCriteria string

const (
	SortByModel   SortCriteria = "MODEL"
	SortByPrice   SortCriteria = "PRICE"
	SortByMileage SortCriteria = "MILEAGE"
	SortByColor   SortCriteria = "COLOR"
)

// ParseSortCriteria matches name against the sortable fields, ignoring case
func ParseSortCriteria(name string) (SortCriteria, error) {
	criteria := SortCriteria(strings.ToUpper(strings.TrimSpace(name)))
	switch criteria {
	case SortByModel, SortByPrice, SortByMileage, SortByColor:
		return criteria, nil
	}
	return "", fmt.Errorf("%w: invalid sort criteria %q", ErrInvalidArgument, name)
}

// Car defines a car struct
type Car struct {
	Model      string          `json:"model" yaml:"model"`
	Price      decimal.Decimal `json:"price" yaml:"price"`
	Mileage    int             `json:"mileage" yaml:"mileage"`
	Color      Color           `json:"color" yaml:"color"`
	Components []string        `json:"components" yaml:"components"`
}

// HasMileageGreaterThan reports whether the car has been driven more than value
func (c Car) HasMileageGreaterThan(value int) bool {
	return c.Mileage > value
}

// HasPriceBetween reports whether the price lies in [low, high]
func (c Car) HasPriceBetween(low, high decimal.Decimal) bool {
	return c.Price.GreaterThanOrEqual(low) && c.Price.LessThanOrEqual(high)
}

// Clone returns a copy of the car that shares no components slice with c
func (c Car) Clone() Car {
	c.Components = slices.Clone(c.Components)
	return c
}

func (c Car) String() string {
	return fmt.Sprintf("%s | price: %s | mileage: %d | color: %s | components: %s",
		c.Model, c.Price, c.Mileage, c.Color, strings.Join(c.Components, ", "))
}
