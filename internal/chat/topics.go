package chat

// QuickPrompt is a predefined suggestion the user can submit with one
// selection instead of typing. Selection submits Text through the normal
// pipeline, nothing more.
type QuickPrompt struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Topic is an explore-panel entry. Selecting a topic appends a user message
// locally and then also submits the same text through the pipeline, which
// appends it again — two identical user bubbles. Observed behavior of the
// surface this was ported from; kept and regression-tested rather than fixed.
type Topic struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuickPrompts returns the fixed suggestion list shown under the input.
func QuickPrompts() []QuickPrompt {
	return []QuickPrompt{
		{Label: "Strength workout", Text: "Create a beginner strength workout for me"},
		{Label: "Cardio session", Text: "Give me a 30 minute cardio workout"},
		{Label: "Vegan meal plan", Text: "Suggest a vegan meal plan for today"},
	}
}

// Topics returns the fixed explore-panel list.
func Topics() []Topic {
	return []Topic{
		{Label: "Strength Training", Text: "Tell me about strength training"},
		{Label: "Cardio Fitness", Text: "Tell me about cardio fitness"},
		{Label: "Nutrition Basics", Text: "Tell me about nutrition basics"},
		{Label: "Rest & Recovery", Text: "Tell me about recovery"},
	}
}
