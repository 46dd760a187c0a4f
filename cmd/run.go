package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/dreamteacher/internal/app"
	"github.com/abhisek/dreamteacher/internal/guidance"
	"github.com/abhisek/dreamteacher/internal/logging"
	"github.com/abhisek/dreamteacher/internal/mentor"
	"github.com/abhisek/dreamteacher/internal/wizard"
)

// runApp builds the wizard dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs always go to a file.
	log, err := logging.New(logging.Options{Mode: cfg.Log.Mode, Path: cfg.Log.Path, Level: cfg.Log.Level})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	repo, closeRepo := openEventRepo(cfg, log)
	defer closeRepo()

	completer := newCompleter(ctx, cfg, repo, log)
	seed := resolveSeed(cfg.Seed)
	log.Info("starting wizard", "seed", seed, "mentor_source", cfg.MentorSource, "guidance_mode", cfg.GuidanceMode)

	return app.Run(ctx, app.Options{
		Deps: wizard.Deps{
			Mentors:  mentor.NewBuilder(cfg.MentorSource, completer, log),
			Guidance: guidance.New(cfg.GuidanceMode, completer, log),
			Chat:     completer,
			Seed:     seed,
			Log:      log,
		},
	})
}
