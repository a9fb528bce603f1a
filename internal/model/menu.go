// Package model holds the domain types shared across the application.
package model

import "time"

// Canteen identifies a single cafeteria location.
type Canteen struct {
	ID   string
	Name string
}

// MenuDay is one canteen's published menu for a single date.
type MenuDay struct {
	Date    time.Time
	Canteen Canteen
	Lines   []Line
}

// Line is a named serving station within a canteen's daily offering.
type Line struct {
	ID    string
	Name  string
	Meals []Meal
}

// Meal is a single dish. An empty Price marks the meal as unpriced;
// unpriced meals are excluded from presentation.
type Meal struct {
	Name        string
	Price       string
	Classifiers []Classifier
	Additives   []string
}

// Priced reports whether the meal carries a price and should be rendered.
func (m Meal) Priced() bool {
	return m.Price != ""
}
