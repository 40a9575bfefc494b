package plan

import (
	"fmt"
	"strings"
)

// Prompt templates for each generation operation. Built as layered plain-text
// prompts: role, task parameters, then output-format instructions. The model
// answers in Markdown so terminal rendering can style headings and lists.

func buildWorkoutPrompt(req WorkoutRequest) string {
	var b strings.Builder
	b.WriteString("You are a certified fitness coach creating a personalized workout plan.\n\n")
	fmt.Fprintf(&b, "Create a %s-minute %s workout for an athlete at %s level.\n", req.Duration, req.Category, req.Level)
	if len(req.Equipment) > 0 {
		fmt.Fprintf(&b, "Available equipment: %s.\n", strings.Join(req.Equipment, ", "))
	} else {
		b.WriteString("No equipment is available; use body-weight exercises only.\n")
	}
	b.WriteString("\nFormat the plan in Markdown with these sections:\n")
	b.WriteString("1. Warm-up (5 minutes)\n")
	b.WriteString("2. Main workout with sets, reps and rest periods\n")
	b.WriteString("3. Cool-down and stretching\n")
	b.WriteString("\nKeep the total duration within the requested time. Include brief form cues for each exercise.")
	return b.String()
}

func buildDietPrompt(req DietRequest) string {
	var b strings.Builder
	b.WriteString("You are a sports nutritionist creating a one-day meal plan.\n\n")
	fmt.Fprintf(&b, "Create a %s meal plan targeting %d calories per day.\n", req.DietType, req.Calories)
	if req.IncludePreferred && len(req.Foods) > 0 {
		fmt.Fprintf(&b, "Where the diet type allows, work in these preferred foods: %s.\n", strings.Join(req.Foods, ", "))
	}
	b.WriteString("\nFormat the plan in Markdown with breakfast, lunch, dinner and two snacks.\n")
	b.WriteString("For each meal list the foods, approximate portions and calories.\n")
	b.WriteString("Finish with a one-line daily macro summary (protein/carbs/fat).")
	return b.String()
}

func buildTipsPrompt(req TipsRequest) string {
	var b strings.Builder
	b.WriteString("You are an experienced cricket coach.\n\n")
	fmt.Fprintf(&b, "Give practical %s tips for a %s player.\n", req.Skill, req.Level)
	b.WriteString("\nFormat the answer in Markdown as a numbered list of 5 tips.\n")
	b.WriteString("Each tip should name the technique, describe the drill, and note one common mistake to avoid.")
	return b.String()
}
