package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"castmerge/internal/catalog"
	"castmerge/internal/config"
)

func newLogCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the merge audit log, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				entries, err := store.MergeLog(cmd.Context(), limitFlag)
				if err != nil {
					return err
				}
				if jsonFlag {
					return writeJSON(cmd, entries)
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No merges recorded")
					return nil
				}

				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{
						entry.MergeID,
						entry.Timestamp.Local().Format(time.RFC3339),
						entry.TargetName,
						strings.Join(entry.SourceNames, ", "),
						strconv.Itoa(len(entry.AffectedMovies)),
						yesNo(entry.PreservedAnalytics),
					})
				}
				writeRows(out,
					[]string{"Merge ID", "Timestamp", "Target", "Sources", "Movies", "Analytics Kept"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft})
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "l", 20, "Maximum number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit audit entries as JSON")
	return cmd
}
