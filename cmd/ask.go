package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fitcoach/fitcoach/internal/chat"
	"github.com/fitcoach/fitcoach/internal/config"
	"github.com/fitcoach/fitcoach/internal/notify"
	"github.com/fitcoach/fitcoach/internal/plan"
)

var (
	askTips  bool
	askSkill string
	askLevel string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a one-shot question and print the answer",
	Long: `Ask runs a single exchange without the interactive chat: the question is
classified and answered the same way the TUI would answer it.

With --tips, ask generates cricket coaching tips instead; --skill and
--level tune the request.`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askTips, "tips", false, "generate cricket tips instead of a fitness answer")
	askCmd.Flags().StringVar(&askSkill, "skill", "batting", "cricket skill for --tips")
	askCmd.Flags().StringVar(&askLevel, "level", plan.LevelBeginner, "player level for --tips")
	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := initLogger(cfg)

	if err := checkRequiredEnv(cfg); err != nil {
		return err
	}

	ctx := context.Background()
	gen, err := newGenerator(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if askTips {
		tips, err := gen.CricketTips(ctx, plan.TipsRequest{Skill: askSkill, Level: askLevel})
		if err != nil {
			return fmt.Errorf("generating tips: %w", err)
		}
		fmt.Println(tips)
		return nil
	}

	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return errors.New("question must not be empty")
	}

	sess, err := chat.NewSession(chat.SessionConfig{
		Generator:  gen,
		Notifier:   &notify.Log{Logger: logger},
		Logger:     logger,
		Classifier: chat.NewClassifier(cfg.Routing()),
	})
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	reply, ok := sess.Send(ctx, question)
	if !ok {
		return errors.New("question must not be empty")
	}

	fmt.Println(reply.Content)
	return nil
}
