package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/deck/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List cards in the deck",
	Long: `List all cards in tagline order.

The first column is the card's position, which other commands accept
in place of a tagline. Positions change after every edit.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openSession(true)
	if err != nil {
		return err
	}

	d := sess.Snapshot()
	if d.Len() == 0 {
		fmt.Println(cli.Gray("No cards. Add one with `deck add <tagline>`."))
		return nil
	}
	cli.RenderCards(os.Stdout, d, nil)
	return nil
}
