package domain

import "time"

// FoodItem is a single analyzed food within a meal. Items belong to exactly
// one meal and are never shared between meals.
type FoodItem struct {
	ID       string
	MealID   string
	Name     string
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
	Portion  string
}

// Meal is an immutable logged meal. Totals are the sums over Foods and are
// fixed at creation; the only mutation path is deletion.
type Meal struct {
	ID            string
	UserID        string
	Timestamp     time.Time
	ImageURL      string
	Foods         []FoodItem
	TotalCalories int
	TotalProteinG float64
	TotalCarbsG   float64
	TotalFatG     float64
	CreatedAt     time.Time
}

// Totalize recomputes the meal totals from its food items.
func (m *Meal) Totalize() {
	m.TotalCalories = 0
	m.TotalProteinG = 0
	m.TotalCarbsG = 0
	m.TotalFatG = 0
	for _, f := range m.Foods {
		m.TotalCalories += f.Calories
		m.TotalProteinG += f.ProteinG
		m.TotalCarbsG += f.CarbsG
		m.TotalFatG += f.FatG
	}
}
