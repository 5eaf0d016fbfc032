package main

import (
	"fmt"

	"github.com/jacksmith/deck/internal/cli"
	"github.com/jacksmith/deck/internal/ops"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <card> [new-tagline]",
	Short: "Change a card's tagline",
	Long: `Change the tagline of a card.

<card> is a position from 'deck list' or a tagline (ignoring case).
Use -i to edit the current tagline in $EDITOR.

Examples:
  deck edit 3 "Can fly"
  deck edit "can walk" "Can fly"
  deck edit 3 -i`,
	Args:              cobra.RangeArgs(1, 2),
	RunE:              runEdit,
	ValidArgsFunction: completeTaglines,
}

var editInteractive bool

func init() {
	editCmd.Flags().BoolVarP(&editInteractive, "interactive", "i", false, "edit in $EDITOR")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if len(args) < 2 && !editInteractive {
		return fmt.Errorf("no new tagline given. Pass it as an argument or use -i")
	}

	sess, err := openSession(false)
	if err != nil {
		return err
	}

	d := sess.Snapshot()
	index, err := ops.ResolveCard(d, args[0])
	if err != nil {
		return err
	}
	old := d.Proofs[index].Tagline

	var tagline string
	if len(args) == 2 {
		tagline = args[1]
	} else {
		tagline, err = cli.EditTagline(old)
		if err != nil {
			return err
		}
	}

	changed, _, err := sess.RenameCard(index, tagline)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Println(cli.Gray("No changes."))
		return nil
	}

	fmt.Printf("%s %s -> %s\n", cli.Green("Renamed"), old, tagline)
	return nil
}
