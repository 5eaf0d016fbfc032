package main

import (
	"fmt"

	"github.com/jacksmith/deck/internal/cli"
	"github.com/jacksmith/deck/internal/storage"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new [path]",
	Short: "Create an empty deck file",
	Long: `Create a new, empty deck file.

The path defaults to --file or default_file from .deckconfig.yaml.
The deck name defaults to deck_name from .deckconfig.yaml.

Examples:
  deck new
  deck new heroes.txt --name="Heroes"
  deck new deck.txt --force    # overwrite an existing deck`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

var (
	newForce bool
	newName  string
)

func init() {
	newCmd.Flags().BoolVar(&newForce, "force", false, "overwrite an existing file")
	newCmd.Flags().StringVar(&newName, "name", "", "deck name")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return err
	}

	path := deckPath(cfg)
	if len(args) > 0 {
		path = args[0]
	}
	name := newName
	if name == "" {
		name = cfg.DeckName
	}

	d, err := storage.New(name).Create(path, newForce)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (%s)\n", cli.Green("Created"), path, d.DeckName)
	return nil
}
