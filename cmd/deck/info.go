package main

import (
	"fmt"

	"github.com/jacksmith/deck/internal/cli"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show deck summary",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	sess, err := openSession(true)
	if err != nil {
		return err
	}

	st := sess.Status()
	fmt.Println(cli.FormatStatus(st))
	fmt.Printf("%s %s\n", cli.Gray("Path:"), st.Path)
	return nil
}
