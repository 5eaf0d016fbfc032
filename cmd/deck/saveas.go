package main

import (
	"fmt"

	"github.com/jacksmith/deck/internal/cli"
	"github.com/spf13/cobra"
)

var saveAsCmd = &cobra.Command{
	Use:   "save-as <path>",
	Short: "Write the deck to another file",
	Long: `Write the current deck to a new path.

The original file is left unchanged. A deck file that cannot be loaded
is not copied.

Examples:
  deck save-as backup.txt
  deck save-as heroes.txt --file=deck.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSaveAs,
}

func init() {
	rootCmd.AddCommand(saveAsCmd)
}

func runSaveAs(cmd *cobra.Command, args []string) error {
	sess, err := openSession(false)
	if err != nil {
		return err
	}

	if err := sess.SaveAs(args[0]); err != nil {
		return err
	}

	st := sess.Status()
	fmt.Printf("%s %d cards to %s\n", cli.Green("Saved"), st.Cards, st.Path)
	return nil
}
