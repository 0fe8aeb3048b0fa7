// Package cli defines the command surface of the hacksnooze client.
// The bare command starts the TUI, the subcommands cover the same
// operations for scripting and CI use.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	_ "modernc.org/sqlite"

	"github.com/dspetrov/hacksnooze/internal/client/api"
	"github.com/dspetrov/hacksnooze/internal/client/config"
	"github.com/dspetrov/hacksnooze/internal/client/models"
	"github.com/dspetrov/hacksnooze/internal/client/repositories/creds"
	"github.com/dspetrov/hacksnooze/internal/client/services"
	"github.com/dspetrov/hacksnooze/internal/client/tui"
	"github.com/dspetrov/hacksnooze/internal/logging"
)

var (
	cfgPath    string
	apiURL     string
	timeout    time.Duration
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "hacksnooze",
	Short: "Terminal client for Hack or Snooze",
	Long: `hacksnooze is a terminal client for the Hack or Snooze story service.

Run it without arguments for the interactive UI, or use the subcommands
for scripting.

Environment variables:
  HACKSNOOZE_API_URL     API base URL
  HACKSNOOZE_TIMEOUT     per-request timeout, e.g. 15s
  HACKSNOOZE_SESSION_DB  path of the local session database
  HACKSNOOZE_CONFIG      path of a JSON config file
  HACKSNOOZE_LOG_LEVEL   debug, info, warn or error`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer e.close(cmd.Context())

		return tui.Run(e.auth, e.stories)
	},
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a JSON config file (overrides HACKSNOOZE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides HACKSNOOZE_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout (overrides HACKSNOOZE_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON instead of human-readable text")
}

// env bundles the wired application services of one command run.
type env struct {
	cfg     *config.Config
	db      *sql.DB
	auth    services.AuthService
	stories services.StoryService
}

// setup loads the configuration, opens the session database and wires
// the services. Flags win over environment and file values. In
// interactive mode logs are dropped, the renderer owns the terminal.
func setup(ctx context.Context, interactive bool) (*env, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.BaseURL = apiURL
	}
	if timeout > 0 {
		cfg.RequestTimeout = timeout
	}

	var log logging.Logger = logging.NewDiscardLogger()
	if !interactive {
		log = newLogger(cfg.LogLevel)
	}

	db, err := creds.Open(ctx, cfg.SessionDB)
	if err != nil {
		return nil, err
	}

	client := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, log)

	return &env{
		cfg:     cfg,
		db:      db,
		auth:    services.NewAuthService(client, creds.NewSQLiteRepository(db)),
		stories: services.NewStoryService(client),
	}, nil
}

func (e *env) close(ctx context.Context) {
	if e.auth != nil {
		_ = e.auth.Close(ctx)
	}
	if e.db != nil {
		_ = e.db.Close()
	}
}

// newLogger builds the stderr logger of the non-interactive commands.
func newLogger(level string) logging.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return logging.NewSlogLogger(slog.New(h))
}

// currentUser resumes the saved session or fails with a hint.
func currentUser(ctx context.Context, e *env) (*models.User, error) {
	user, err := e.auth.Resume(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not resume the saved session: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("not logged in, run 'hacksnooze login <username>' first")
	}
	return user, nil
}
