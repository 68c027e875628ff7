package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MarkoPoloResearchLab/matchledger/internal/directory"
	"github.com/spf13/cobra"
)

const (
	flagMatches  = "matches"
	flagMessages = "messages"
)

func newApplyMessagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply-messages",
		Short: "Merge a messages CSV (ID,MESSAGE) into the match directory file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			matchesPath, err := cmd.Flags().GetString(flagMatches)
			if err != nil {
				return err
			}
			messagesPath, err := cmd.Flags().GetString(flagMessages)
			if err != nil {
				return err
			}
			if strings.TrimSpace(matchesPath) == "" {
				return fmt.Errorf("%s is required", flagMatches)
			}
			if strings.TrimSpace(messagesPath) == "" {
				return fmt.Errorf("%s is required", flagMessages)
			}
			messages, err := os.Open(messagesPath)
			if err != nil {
				return fmt.Errorf("open messages: %w", err)
			}
			defer messages.Close()

			result, err := directory.ApplyMessages(matchesPath, messages)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d message(s), skipped %d row(s), %d unknown id(s)\n", result.Applied, result.Skipped, result.Unknown)
			return nil
		},
	}
	cmd.Flags().String(flagMatches, "matches.json", "match directory file to update")
	cmd.Flags().String(flagMessages, "messages.csv", "CSV file with ID and MESSAGE columns")
	return cmd
}
