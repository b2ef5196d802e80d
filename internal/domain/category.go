package domain

import "errors"

var (
	ErrInvalidCategory  = errors.New("unknown cost category")
	ErrInvalidFrequency = errors.New("unknown cost frequency")
)

// Category classifies a cost for grouping and chart display. It never affects
// activation.
type Category string

const (
	CategoryNecessary Category = "necessary"
	CategoryDaily     Category = "daily"
	CategoryLuxury    Category = "luxury"
	CategoryYearly    Category = "yearly"
)

// Categories lists all categories in display order
var Categories = []Category{CategoryNecessary, CategoryDaily, CategoryLuxury, CategoryYearly}

// Valid reports whether the category is one of the known values
func (c Category) Valid() bool {
	switch c {
	case CategoryNecessary, CategoryDaily, CategoryLuxury, CategoryYearly:
		return true
	}
	return false
}

type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether the frequency is one of the known values
func (f Frequency) Valid() bool {
	return f == FrequencyMonthly || f == FrequencyYearly
}
