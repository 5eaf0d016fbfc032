package main

import (
	"fmt"

	"github.com/jacksmith/deck/internal/cli"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <tagline>...",
	Short: "Add cards to the deck",
	Long: `Add one card per argument. Every card is a Fact with card type 3.

Taglines must be unique, ignoring case. Adding stops at the first
rejected tagline; cards added before it are kept.

Examples:
  deck add "Can fly"
  deck add "Can fly" "Breathes underwater"
  deck add -i    # one tagline per line in $EDITOR`,
	RunE: runAdd,
}

var addInteractive bool

func init() {
	addCmd.Flags().BoolVarP(&addInteractive, "interactive", "i", false, "enter taglines in $EDITOR")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	taglines := args
	if addInteractive {
		edited, err := cli.EditTaglines()
		if err != nil {
			return err
		}
		taglines = append(taglines, edited...)
	}
	if len(taglines) == 0 {
		return fmt.Errorf("no tagline given. Pass one as an argument or use -i")
	}

	sess, err := openSession(false)
	if err != nil {
		return err
	}

	for _, tagline := range taglines {
		placed, err := sess.AddCard(tagline)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", cli.Green("Added"), placed.Card.Tagline)
	}
	return nil
}
