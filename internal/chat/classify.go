package chat

import (
	"strings"

	"github.com/fitcoach/fitcoach/internal/plan"
)

// Request is the classified request shape for one submission.
// Exactly one field is non-nil.
type Request struct {
	Workout *plan.WorkoutRequest
	Diet    *plan.DietRequest
}

// Defaults holds the fixed sub-parameters the classifier fills into requests.
// The zero value is not usable; start from DefaultRouting.
type Defaults struct {
	Duration          string   // workout session length in minutes
	Equipment         []string // equipment for keyword-matched workouts
	FallbackEquipment []string // equipment for the generic fallback branch
	Calories          int      // diet calorie target
	Foods             []string // preferred foods for diet plans
}

// DefaultRouting returns the stock routing parameters.
func DefaultRouting() Defaults {
	return Defaults{
		Duration:          "30",
		Equipment:         []string{"resistance bands", "dumbbells"},
		FallbackEquipment: []string{"body weight"},
		Calories:          2000,
		Foods:             []string{"Chicken", "Fish", "Nuts"},
	}
}

// route pairs a predicate with a request builder. Routes are evaluated
// top-down over the lowercased input; first match wins.
type route struct {
	match func(text string) bool
	build func(text string) Request
}

// Classifier routes free text to a request shape by case-insensitive
// substring matching. Safe for concurrent use after construction.
type Classifier struct {
	defaults Defaults
	routes   []route
}

// NewClassifier builds the ordered decision table. Precedence is fixed:
// workout keywords are checked before diet keywords, so text mentioning both
// routes to the workout branch.
func NewClassifier(d Defaults) *Classifier {
	c := &Classifier{defaults: d}
	c.routes = []route{
		{
			match: containsAny("workout", "exercise", "train"),
			build: c.workoutRequest,
		},
		{
			match: containsAny("diet", "nutrition", "food", "meal"),
			build: c.dietRequest,
		},
	}
	return c
}

// Classify maps user text to exactly one request. Text matching no route
// falls through to a generic fitness request.
func (c *Classifier) Classify(text string) Request {
	lower := strings.ToLower(text)
	for _, r := range c.routes {
		if r.match(lower) {
			return r.build(lower)
		}
	}
	return c.fallbackRequest()
}

// workoutRequest derives sub-parameters by further substring checks over the
// already-lowercased text.
func (c *Classifier) workoutRequest(lower string) Request {
	category := plan.CategoryCardio
	if strings.Contains(lower, "strength") {
		category = plan.CategoryStrength
	}
	level := plan.LevelIntermediate
	if strings.Contains(lower, "beginner") {
		level = plan.LevelBeginner
	}
	return Request{Workout: &plan.WorkoutRequest{
		Category:  category,
		Level:     level,
		Duration:  c.defaults.Duration,
		Equipment: c.defaults.Equipment,
	}}
}

func (c *Classifier) dietRequest(lower string) Request {
	dietType := plan.DietBalanced
	if strings.Contains(lower, "vegan") {
		dietType = plan.DietVegan
	}
	return Request{Diet: &plan.DietRequest{
		DietType:         dietType,
		Calories:         c.defaults.Calories,
		IncludePreferred: true,
		Foods:            c.defaults.Foods,
	}}
}

func (c *Classifier) fallbackRequest() Request {
	return Request{Workout: &plan.WorkoutRequest{
		Category:  plan.CategoryGeneral,
		Level:     plan.LevelIntermediate,
		Duration:  c.defaults.Duration,
		Equipment: c.defaults.FallbackEquipment,
	}}
}

// containsAny returns a predicate matching when text contains any keyword.
// Keywords must be lowercase; input is lowercased by Classify.
func containsAny(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
}
