package service

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nekruzvatanshoev/carstats/pkg/carstats/dal"
	"github.com/nekruzvatanshoev/carstats/pkg/carstats/loader"
)

// Service answers read-only queries over an ordered collection of cars
type Service struct {
	cars []dal.Car
}

// New returns a Service holding cars. The slice is not copied.
func New(cars []dal.Car) *Service {
	return &Service{cars: cars}
}

// Load reads filename and builds a Service from its records
func Load(filename string) (*Service, error) {
	records, err := loader.GetCarsData(filename)
	if err != nil {
		return nil, err
	}
	cars, err := dal.CarsFromRecords(records)
	if err != nil {
		return nil, err
	}
	return New(cars), nil
}

// Len returns the number of cars held
func (s *Service) Len() int {
	return len(s.cars)
}

// Cars returns the held cars in collection order
func (s *Service) Cars() []dal.Car {
	return slices.Clone(s.cars)
}

func (s *Service) String() string {
	lines := make([]string, 0, len(s.cars))
	for _, car := range s.cars {
		lines = append(lines, car.String())
	}
	return strings.Join(lines, "\n")
}

// SortBy returns a stably sorted copy of the cars ordered by criteria.
// Equal cars keep their relative order in both directions.
func (s *Service) SortBy(criteria dal.SortCriteria, reverse bool) ([]dal.Car, error) {
	var compare func(a, b dal.Car) int
	switch criteria {
	case dal.SortByModel:
		compare = func(a, b dal.Car) int { return cmp.Compare(a.Model, b.Model) }
	case dal.SortByPrice:
		compare = func(a, b dal.Car) int { return a.Price.Cmp(b.Price) }
	case dal.SortByMileage:
		compare = func(a, b dal.Car) int { return cmp.Compare(a.Mileage, b.Mileage) }
	case dal.SortByColor:
		compare = func(a, b dal.Car) int { return cmp.Compare(a.Color, b.Color) }
	default:
		return nil, fmt.Errorf("%w: invalid sort criteria %q", dal.ErrInvalidArgument, criteria)
	}

	sorted := slices.Clone(s.cars)
	if reverse {
		slices.SortStableFunc(sorted, func(a, b dal.Car) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(sorted, compare)
	}
	return sorted, nil
}

// CarsWithMileageGreaterThan returns the cars driven strictly more than threshold
func (s *Service) CarsWithMileageGreaterThan(threshold int) ([]dal.Car, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: mileage threshold must not be negative: %d", dal.ErrInvalidArgument, threshold)
	}
	return s.filter(func(c dal.Car) bool { return c.HasMileageGreaterThan(threshold) }), nil
}

// CarsWithPriceBetween returns the cars priced within [low, high]
func (s *Service) CarsWithPriceBetween(low, high decimal.Decimal) ([]dal.Car, error) {
	if low.GreaterThan(high) {
		return nil, fmt.Errorf("%w: price range is not correct: %s > %s", dal.ErrInvalidArgument, low, high)
	}
	return s.filter(func(c dal.Car) bool { return c.HasPriceBetween(low, high) }), nil
}

// ColorCounts returns the number of cars per color. Every known color is present.
func (s *Service) ColorCounts() map[dal.Color]int {
	counts := make(map[dal.Color]int)
	for _, c := range dal.Colors() {
		counts[c] = 0
	}
	for _, car := range s.cars {
		counts[car.Color]++
	}
	return counts
}

// MostExpensiveByModel maps each model to its priciest car.
// On equal prices the first car seen wins.
func (s *Service) MostExpensiveByModel() map[string]dal.Car {
	best := make(map[string]dal.Car)
	for _, car := range s.cars {
		current, ok := best[car.Model]
		if !ok || car.Price.GreaterThan(current.Price) {
			best[car.Model] = car
		}
	}
	return best
}

// MostExpensiveCars returns every car sharing the highest price
func (s *Service) MostExpensiveCars() ([]dal.Car, error) {
	if len(s.cars) == 0 {
		return nil, fmt.Errorf("%w: no cars to pick the most expensive from", dal.ErrInvalidState)
	}

	highest := s.cars[0].Price
	for _, car := range s.cars[1:] {
		if car.Price.GreaterThan(highest) {
			highest = car.Price
		}
	}
	return s.filter(func(c dal.Car) bool { return c.Price.Equal(highest) }), nil
}

// CarsGroupedByComponent maps each component name to the cars listing it
func (s *Service) CarsGroupedByComponent() map[string][]dal.Car {
	grouped := make(map[string][]dal.Car)
	for _, car := range s.cars {
		for _, component := range car.Components {
			grouped[component] = append(grouped[component], car)
		}
	}
	return grouped
}

// CarsWithSortedComponents returns deep copies of the cars with their
// components in ascending order. The held cars are left untouched.
func (s *Service) CarsWithSortedComponents() []dal.Car {
	cars := make([]dal.Car, 0, len(s.cars))
	for _, car := range s.cars {
		clone := car.Clone()
		slices.Sort(clone.Components)
		cars = append(cars, clone)
	}
	return cars
}

func (s *Service) filter(keep func(dal.Car) bool) []dal.Car {
	matches := make([]dal.Car, 0)
	for _, car := range s.cars {
		if keep(car) {
			matches = append(matches, car)
		}
	}
	return matches
}
