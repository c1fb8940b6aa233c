package domain

import "time"

// Gender enumerates supported gender options.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Goal enumerates the coarse weight goals.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// ActivityLevel enumerates daily activity levels used for TDEE.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// WorkoutsPerWeek enumerates the onboarding workout-frequency buckets.
type WorkoutsPerWeek string

const (
	WorkoutsLow  WorkoutsPerWeek = "0-2"
	WorkoutsMid  WorkoutsPerWeek = "3-5"
	WorkoutsHigh WorkoutsPerWeek = "6+"
)

// WeightGoal enumerates the fine-grained pace targets picked at onboarding.
type WeightGoal string

const (
	WeightGoalLoseFast     WeightGoal = "lose_fast"
	WeightGoalLoseModerate WeightGoal = "lose_moderate"
	WeightGoalLoseSlow     WeightGoal = "lose_slow"
	WeightGoalMaintain     WeightGoal = "maintain"
	WeightGoalGainSlow     WeightGoal = "gain_slow"
	WeightGoalGainModerate WeightGoal = "gain_moderate"
	WeightGoalGainFast     WeightGoal = "gain_fast"
)

// SubscriptionStatus enumerates billing states.
type SubscriptionStatus string

const (
	SubscriptionTrial     SubscriptionStatus = "trial"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// UserProfile represents an onboarded account. DailyCalorieGoal is derived
// at onboarding and only recomputed when biometrics change explicitly.
type UserProfile struct {
	ID               string
	Name             string
	Age              int
	WeightKg         float64
	HeightCm         float64
	Gender           Gender
	Goal             Goal
	TargetWeightKg   float64
	ActivityLevel    ActivityLevel
	DailyCalorieGoal int
	WorkoutsPerWeek  WorkoutsPerWeek
	WeightGoal       WeightGoal
	Subscription     SubscriptionStatus
	TrialStartDate   time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OnTrial reports whether the account has never converted to a paid plan.
func (u UserProfile) OnTrial() bool {
	return u.Subscription == SubscriptionTrial
}
