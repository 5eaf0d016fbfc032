package main

import (
	"os"
	"strings"

	"github.com/jacksmith/deck/internal/storage"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for deck.

To load completions:

Bash:
  $ source <(deck completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ deck completion bash > /etc/bash_completion.d/deck
  # macOS:
  $ deck completion bash > $(brew --prefix)/etc/bash_completion.d/deck

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ deck completion zsh > "${fpath[1]}/_deck"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ deck completion fish | source
  # To load completions for each session, execute once:
  $ deck completion fish > ~/.config/fish/completions/deck.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Long:  "Generate the autocompletion script for bash.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Long:  "Generate the autocompletion script for zsh.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Long:  "Generate the autocompletion script for fish.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeTaglines completes the first argument with taglines from the deck.
func completeTaglines(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	d, err := storage.New(cfg.DeckName).Load(deckPath(cfg))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	toCompleteLower := strings.ToLower(toComplete)
	for _, tagline := range d.Taglines() {
		if strings.HasPrefix(strings.ToLower(tagline), toCompleteLower) {
			completions = append(completions, tagline)
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
