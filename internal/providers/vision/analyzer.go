// Package vision defines the meal-image analysis capability. The real
// implementation is an integration point; the service ships with a mock.
package vision

import (
	"context"

	"caltrack/internal/domain"
)

// Analyzer turns a meal photo into a list of recognized food items.
type Analyzer interface {
	Analyze(ctx context.Context, imageURL string) ([]domain.FoodItem, error)
}
