package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flopperam/unrealmcp/internal/journal"
)

func newJournalCommand() *cobra.Command {
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect the command journal",
	}

	journalCmd.AddCommand(newJournalTailCommand())

	return journalCmd
}

func newJournalTailCommand() *cobra.Command {
	var (
		path  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Show the most recent journaled commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = os.Getenv("UNREAL_MCP_JOURNAL_PATH")
			}
			if path == "" {
				return fmt.Errorf("journal path is required (--journal or UNREAL_MCP_JOURNAL_PATH)")
			}

			store, err := journal.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Journal is empty")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				detail := entry.Error
				if detail == "" {
					detail = entry.Params
				}
				rows = append(rows, []string{
					entry.Started.Local().Format("2006-01-02 15:04:05"),
					entry.Type,
					entry.Status,
					entry.Duration.String(),
					detail,
				})
			}
			out := renderTable(
				[]string{"Started", "Command", "Status", "Duration", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "journal", "", "SQLite command journal path")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show")

	return cmd
}
