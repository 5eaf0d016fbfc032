package main

import (
	"errors"

	"github.com/jacksmith/deck/internal/storage"
	"github.com/jacksmith/deck/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Edit the deck interactively",
	Long: `Open the deck in a full-screen editor.

Keys:
  a          add a card
  e, enter   edit the selected tagline
  d          delete the selected card (asks y/n)
  /          search taglines; n jumps to the next match
  i          import another deck file
  s          save
  q          save and quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	sess, err := loadSession()
	var rerr *storage.FileReadError
	if err != nil && !errors.As(err, &rerr) {
		return err
	}

	m := tui.New(sess)
	if rerr != nil {
		m.ShowError(rerr)
	}
	return tui.Run(m)
}
