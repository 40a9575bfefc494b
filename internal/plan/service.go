package plan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/fitcoach/fitcoach/internal/log"
)

// modelProvider prefixes configured model names for the googlegenai plugin.
const modelProvider = "googleai/"

// Config contains all required parameters for the generation service.
type Config struct {
	Genkit    *genkit.Genkit
	Logger    log.Logger
	ModelName string // bare ("gemini-2.5-flash") or provider-qualified
}

func (cfg Config) validate() error {
	if cfg.Genkit == nil {
		return errors.New("genkit instance is required")
	}
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	if cfg.ModelName == "" {
		return errors.New("model name is required")
	}
	return nil
}

// Service is the production Generator, backed by a Gemini model through
// Genkit. One genkit.Generate call per request; responses are returned
// verbatim, including empty ones.
//
// All configuration is captured immutably at construction, so Service is safe
// for concurrent use.
type Service struct {
	g         *genkit.Genkit
	logger    log.Logger
	modelName string
}

// NewService creates the Gemini-backed generator.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	modelName := cfg.ModelName
	if !strings.Contains(modelName, "/") {
		modelName = modelProvider + modelName
	}

	s := &Service{
		g:         cfg.Genkit,
		logger:    cfg.Logger,
		modelName: modelName,
	}

	s.logger.Debug("plan service initialized", "model", s.modelName)
	return s, nil
}

// WorkoutPlan generates a workout plan for the given request.
func (s *Service) WorkoutPlan(ctx context.Context, req WorkoutRequest) (string, error) {
	s.logger.Debug("generating workout plan",
		"category", req.Category,
		"level", req.Level,
		"duration", req.Duration)
	text, err := s.generate(ctx, buildWorkoutPrompt(req))
	if err != nil {
		return "", fmt.Errorf("generating workout plan: %w", err)
	}
	return text, nil
}

// DietPlan generates a diet plan for the given request.
func (s *Service) DietPlan(ctx context.Context, req DietRequest) (string, error) {
	s.logger.Debug("generating diet plan",
		"diet_type", req.DietType,
		"calories", req.Calories)
	text, err := s.generate(ctx, buildDietPrompt(req))
	if err != nil {
		return "", fmt.Errorf("generating diet plan: %w", err)
	}
	return text, nil
}

// CricketTips generates cricket coaching tips for the given request.
func (s *Service) CricketTips(ctx context.Context, req TipsRequest) (string, error) {
	s.logger.Debug("generating cricket tips",
		"skill", req.Skill,
		"level", req.Level)
	text, err := s.generate(ctx, buildTipsPrompt(req))
	if err != nil {
		return "", fmt.Errorf("generating cricket tips: %w", err)
	}
	return text, nil
}

// generate runs a single one-shot model call.
func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := genkit.Generate(ctx, s.g,
		ai.WithModelName(s.modelName),
		ai.WithPrompt(prompt),
	)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Compile-time interface verification.
var _ Generator = (*Service)(nil)
