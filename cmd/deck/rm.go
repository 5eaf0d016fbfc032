package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/deck/internal/cli"
	"github.com/jacksmith/deck/internal/ops"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <card>",
	Aliases: []string{"delete"},
	Short:   "Delete a card",
	Long: `Delete a card from the deck.

<card> is a position from 'deck list' or a tagline (ignoring case).
You are asked to confirm unless --yes is given.

Examples:
  deck rm 3
  deck rm "Can fly" --yes`,
	Args:              cobra.ExactArgs(1),
	RunE:              runRm,
	ValidArgsFunction: completeTaglines,
}

var rmYes bool

// confirmInput is where delete confirmations are read from.
var confirmInput io.Reader = os.Stdin

func init() {
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "delete without asking")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	sess, err := openSession(false)
	if err != nil {
		return err
	}

	index, err := ops.ResolveCard(sess.Snapshot(), args[0])
	if err != nil {
		return err
	}
	tagline := sess.Snapshot().Proofs[index].Tagline

	if !rmYes && !confirm(fmt.Sprintf("Delete %q?", tagline)) {
		fmt.Println("Cancelled.")
		return nil
	}

	card, err := sess.DeleteCard(index)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", cli.Red("Deleted"), card.Tagline)
	return nil
}

// confirm asks a yes/no question and reports whether the answer was yes.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	answer, err := bufio.NewReader(confirmInput).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
