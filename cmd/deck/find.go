package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/deck/internal/cli"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search taglines",
	Long: `Find cards whose tagline contains the query, ignoring case.

Examples:
  deck find fly
  deck find "under water"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("empty search query")
	}

	sess, err := openSession(true)
	if err != nil {
		return err
	}

	d := sess.Snapshot()
	matches := sess.Find(query)
	if len(matches) == 0 {
		fmt.Printf("No cards match %q.\n", query)
		return nil
	}

	table := cli.NewTable()
	table.SetMaxWidth(1, cli.DefaultMaxTaglineWidth)
	for _, i := range matches {
		c := d.Proofs[i]
		table.AddRow(cli.Gray(strconv.Itoa(i+1)), c.Tagline, cli.Gray(fmt.Sprintf("[type %d]", c.CardType)))
	}
	table.Render(os.Stdout)

	noun := "matches"
	if len(matches) == 1 {
		noun = "match"
	}
	fmt.Println(cli.Gray(fmt.Sprintf("%d %s", len(matches), noun)))
	return nil
}
