package main

import (
	"fmt"

	"github.com/jacksmith/deck/internal/cli"
	"github.com/jacksmith/deck/internal/ops"
	"github.com/jacksmith/deck/internal/storage"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check deck file integrity",
	Long: `Check the deck file for problems left by hand edits.

Checks for:
- Duplicate taglines (ignoring case)
- Fact content in non-canonical case
- Cards that are not facts
- Cards out of tagline order

Use --fix to repair what can be repaired (drops later duplicates,
normalizes content, sorts). Cards that are not facts are reported only.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

var checkFix bool

func init() {
	checkCmd.Flags().BoolVar(&checkFix, "fix", false, "repair fixable issues")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return err
	}
	s := storage.New(cfg.DeckName)
	path := deckPath(cfg)

	_, issues, err := ops.ValidateFile(s, path)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		fmt.Println(cli.Green("No issues found."))
		return nil
	}

	if !checkFix {
		fmt.Printf("Found %d issue(s):\n\n", len(issues))
		printIssues(issues)
		return fmt.Errorf("%s has %d issue(s)", path, len(issues))
	}

	fmt.Printf("Found %d issue(s). Attempting to fix...\n\n", len(issues))
	fixes, err := ops.RepairFile(s, path)
	if err != nil {
		return err
	}
	if len(fixes) > 0 {
		fmt.Println("Fixes applied:")
		for _, f := range fixes {
			if f.Tagline != "" {
				fmt.Printf("  %q: %s\n", f.Tagline, f.Description)
			} else {
				fmt.Printf("  %s\n", f.Description)
			}
		}
		fmt.Println()
	}

	_, remaining, err := ops.ValidateFile(s, path)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		fmt.Println(cli.Green("All fixable issues resolved."))
		return nil
	}

	fmt.Printf("Remaining issues (%d) that cannot be auto-fixed:\n\n", len(remaining))
	printIssues(remaining)
	return fmt.Errorf("%s has %d issue(s)", path, len(remaining))
}

func printIssues(issues []ops.Issue) {
	for _, i := range issues {
		if i.Tagline != "" {
			fmt.Printf("%s %q: %s\n", formatIssueType(i.Type), i.Tagline, i.Message)
		} else {
			fmt.Printf("%s %s\n", formatIssueType(i.Type), i.Message)
		}
	}
}

func formatIssueType(t ops.IssueType) string {
	switch t {
	case ops.IssueDuplicateTagline:
		return cli.Red("[duplicate]")
	case ops.IssueNotAFact:
		return cli.Red("[not-a-fact]")
	case ops.IssueNonCanonical:
		return cli.Yellow("[content]")
	case ops.IssueUnsorted:
		return cli.Yellow("[unsorted]")
	default:
		return fmt.Sprintf("[%s]", t)
	}
}
