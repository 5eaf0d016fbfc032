// Package main is the entry point for the deck CLI.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jacksmith/deck/internal/cli"
	"github.com/jacksmith/deck/internal/ops"
	"github.com/jacksmith/deck/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "deck",
	Short: "deck - an editor for decks of proof cards",
	Long: `deck edits a deck of "proof" cards stored as a JSON document.

Every card is a Fact with a unique tagline. The deck is kept sorted by
tagline (ignoring case) and is saved after every change. Cards from other
deck files can be merged in with import; duplicates and non-facts are skipped.

The deck file defaults to default_file from .deckconfig.yaml (deck.txt).`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupGlobals,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	flagFile    string
	flagVerbose bool
	flagNoColor bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "deck file (default from .deckconfig.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("deck version {{.Version}}\n")
}

func setupGlobals(cmd *cobra.Command, args []string) error {
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		cli.SetColorEnabled(false)
	}

	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return err
	}
	level := cfg.SlogLevel()
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// deckPath returns the deck file to operate on.
func deckPath(cfg *storage.Config) string {
	if flagFile != "" {
		return flagFile
	}
	return cfg.DefaultFile
}

// openSession loads the configured deck. A deck file that exists but cannot
// be read is reported as a warning when allowCorrupt is set, and the session
// starts from an empty deck; otherwise it is an error.
func openSession(allowCorrupt bool) (*ops.Session, error) {
	sess, err := loadSession()
	var rerr *storage.FileReadError
	switch {
	case err == nil:
		return sess, nil
	case errors.As(err, &rerr) && allowCorrupt:
		fmt.Fprintln(os.Stderr, cli.FormatWarning(err))
		return sess, nil
	default:
		return nil, err
	}
}

// loadSession returns ops.OpenSession's result for the configured deck.
func loadSession() (*ops.Session, error) {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return nil, err
	}
	return ops.OpenSession(storage.New(cfg.DeckName), deckPath(cfg))
}
