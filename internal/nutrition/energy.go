// Package nutrition implements the energy-expenditure formulas used to derive
// daily calorie targets.
package nutrition

import (
	"math"

	"caltrack/internal/domain"
)

var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// Weekly pace targets expressed as a daily kcal adjustment on top of TDEE.
var weightGoalAdjustments = map[domain.WeightGoal]int{
	domain.WeightGoalLoseFast:     -750,
	domain.WeightGoalLoseModerate: -500,
	domain.WeightGoalLoseSlow:     -250,
	domain.WeightGoalMaintain:     0,
	domain.WeightGoalGainSlow:     250,
	domain.WeightGoalGainModerate: 500,
	domain.WeightGoalGainFast:     750,
}

// BMR computes the basal metabolic rate via the revised Harris-Benedict
// equation. The "other" gender uses the female coefficients.
func BMR(weightKg, heightCm float64, ageYears int, gender domain.Gender) float64 {
	if gender == domain.GenderMale {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(ageYears)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(ageYears)
}

// TDEE scales a basal rate by the activity multiplier, rounded to the
// nearest kilocalorie. Unknown levels fall back to sedentary.
func TDEE(bmr float64, level domain.ActivityLevel) int {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[domain.ActivitySedentary]
	}
	return int(math.Round(bmr * mult))
}

// CalorieGoal applies the coarse three-way goal adjustment: a 500 kcal
// deficit or surplus targets roughly half a kilogram per week.
func CalorieGoal(tdee int, goal domain.Goal) int {
	switch goal {
	case domain.GoalLose:
		return tdee - 500
	case domain.GoalGain:
		return tdee + 500
	default:
		return tdee
	}
}

// CalorieGoalForWeightGoal applies the seven-way onboarding pace table.
func CalorieGoalForWeightGoal(tdee int, goal domain.WeightGoal) int {
	return tdee + weightGoalAdjustments[goal]
}

// Progress returns the consumed/goal percentage rounded to an integer.
// A zero goal yields zero rather than dividing by it.
func Progress(consumed, goal int) int {
	if goal == 0 {
		return 0
	}
	return int(math.Round(float64(consumed) / float64(goal) * 100))
}

// RemainingCalories may be negative when the user is over budget.
func RemainingCalories(consumed, goal int) int {
	return goal - consumed
}
