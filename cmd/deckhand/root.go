package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mjholt/deckhand/internal/config"
	"github.com/mjholt/deckhand/internal/debuglog"
	"github.com/mjholt/deckhand/internal/session"
	"github.com/mjholt/deckhand/internal/tui"
	"github.com/mjholt/deckhand/pkg/client"
)

var rootCmd = &cobra.Command{
	Use:   "deckhand",
	Short: "Terminal client for the project dashboard",
	Long: `deckhand is a terminal client for the project dashboard API.

Running it without a subcommand opens the dashboard. Sign in first with
"deckhand login" (or "deckhand signup" for a new account).

Environment Variables:
  DECKHAND_API_URL   API base URL (default: http://localhost:3100/api)
  DECKHAND_DATA_DIR  Session and log directory (default: ~/.deckhand)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.Version = version
}

// newStore builds the file-backed session store from config.
func newStore(cfg *config.Config) *session.Store {
	return session.NewStore(session.NewFileKV(cfg.DataDir))
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := debuglog.Init(cfg.DataDir); err != nil {
		fmt.Printf("debug log disabled: %v\n", err)
	}
	defer debuglog.Close()

	store := newStore(cfg)
	sess := store.GetSession()
	if sess == nil {
		printSignInGreeting()
		return nil
	}

	c := client.New(cfg.APIURL, sess.Token)
	app := tui.NewApp(c, sess.User, version)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
