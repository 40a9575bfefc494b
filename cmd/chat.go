package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/fitcoach/fitcoach/internal/chat"
	"github.com/fitcoach/fitcoach/internal/config"
	"github.com/fitcoach/fitcoach/internal/notify"
	"github.com/fitcoach/fitcoach/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive coaching chat",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := initLogger(cfg)

	if err := checkRequiredEnv(cfg); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen, err := newGenerator(ctx, cfg, logger)
	if err != nil {
		return err
	}

	notices := notify.NewBuffer()
	sess, err := chat.NewSession(chat.SessionConfig{
		Generator:  gen,
		Notifier:   notices,
		Logger:     logger,
		Classifier: chat.NewClassifier(cfg.Routing()),
	})
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	model, err := tui.New(ctx, sess, notices)
	if err != nil {
		return fmt.Errorf("creating TUI: %w", err)
	}

	program := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err = program.Run(); err != nil {
		return fmt.Errorf("TUI exited: %w", err)
	}
	return nil
}
