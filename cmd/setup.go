package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"

	"github.com/fitcoach/fitcoach/internal/config"
	"github.com/fitcoach/fitcoach/internal/log"
	"github.com/fitcoach/fitcoach/internal/plan"
)

// initLogger builds the logger from configuration. Output goes to stderr so
// stdout stays clean for the TUI and one-shot answers.
func initLogger(cfg *config.Config) log.Logger {
	level, json := cfg.LogConfig()
	return log.New(log.Config{Level: level, JSON: json})
}

// checkRequiredEnv verifies GEMINI_API_KEY is set, with setup instructions
// on failure.
func checkRequiredEnv(cfg *config.Config) error {
	if err := cfg.ValidateAPIKey(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: GEMINI_API_KEY environment variable not set")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "fitcoach requires a Gemini API key to generate plans.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "To set your API key:")
		fmt.Fprintln(os.Stderr, "  export GEMINI_API_KEY=your-api-key")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Get your API key at: https://ai.google.dev/")
		return err
	}
	return nil
}

// newGenerator initializes Genkit with the Google AI plugin and returns the
// Gemini-backed plan generator. GEMINI_API_KEY is read by the plugin itself.
func newGenerator(ctx context.Context, cfg *config.Config, logger log.Logger) (plan.Generator, error) {
	g := genkit.Init(ctx,
		genkit.WithPlugins(&googlegenai.GoogleAI{}),
	)

	svc, err := plan.NewService(plan.Config{
		Genkit:    g,
		Logger:    logger,
		ModelName: cfg.FullModelName(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating plan service: %w", err)
	}
	return svc, nil
}
