package main

import (
	"fmt"

	"github.com/jacksmith/deck/internal/cli"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge cards from another deck file",
	Long: `Merge the cards of another deck file into this deck.

Only Fact cards are taken (the content is matched ignoring case).
Cards whose tagline already exists, ignoring case, are skipped, as
are records without a tagline. A missing card type defaults to 3.

Examples:
  deck import other.txt
  deck import other.txt --file=heroes.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	sess, err := openSession(false)
	if err != nil {
		return err
	}

	result, err := sess.Import(args[0])
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatMergeResult(result))
	return nil
}
