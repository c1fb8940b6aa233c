package vision

import (
	"context"
	"time"

	"caltrack/internal/domain"
)

// Mock simulates an AI analysis: it waits Delay and returns a fixed plate.
type Mock struct {
	Delay time.Duration
}

// Analyze returns the canned Brazilian plate used across the demo flows.
func (m *Mock) Analyze(ctx context.Context, _ string) ([]domain.FoodItem, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return []domain.FoodItem{
		{Name: "Arroz Branco", Calories: 206, ProteinG: 4.3, CarbsG: 45, FatG: 0.4, Portion: "1 xícara (158g)"},
		{Name: "Frango Grelhado", Calories: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6, Portion: "100g"},
		{Name: "Feijão Preto", Calories: 132, ProteinG: 8.9, CarbsG: 23.7, FatG: 0.5, Portion: "1/2 xícara (86g)"},
		{Name: "Salada Verde", Calories: 25, ProteinG: 2, CarbsG: 5, FatG: 0.3, Portion: "1 tigela"},
	}, nil
}

var _ Analyzer = (*Mock)(nil)
