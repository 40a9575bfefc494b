// Package plan implements fitcoach's generative text service: workout plans,
// diet plans, and cricket coaching tips produced by a single LLM call per
// request. There is no multi-turn context, no streaming, and no retry — each
// request is one prompt, one complete response.
package plan

import "context"

// Workout categories produced by request classification.
const (
	CategoryStrength = "strength"
	CategoryCardio   = "cardio"
	CategoryGeneral  = "general"
)

// Experience levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
)

// Diet types.
const (
	DietVegan    = "vegan"
	DietBalanced = "balanced"
)

// WorkoutRequest describes a fitness-plan generation request.
type WorkoutRequest struct {
	Category  string   // "strength", "cardio", or "general"
	Level     string   // "beginner" or "intermediate"
	Duration  string   // session length in minutes, e.g. "30"
	Equipment []string // available equipment, e.g. ["resistance bands", "dumbbells"]
}

// DietRequest describes a diet-plan generation request.
type DietRequest struct {
	DietType         string   // "vegan" or "balanced"
	Calories         int      // daily calorie target
	IncludePreferred bool     // whether Foods should be worked into the plan
	Foods            []string // preferred foods, e.g. ["Chicken", "Fish", "Nuts"]
}

// TipsRequest describes a cricket coaching tips request.
type TipsRequest struct {
	Skill string // e.g. "batting", "bowling", "fielding"
	Level string // "beginner" or "intermediate"
}

// Generator produces complete response text for each request shape.
// Implementations may fail; callers treat any error as "generation failed"
// with no further distinction.
type Generator interface {
	WorkoutPlan(ctx context.Context, req WorkoutRequest) (string, error)
	DietPlan(ctx context.Context, req DietRequest) (string, error)
	CricketTips(ctx context.Context, req TipsRequest) (string, error)
}
