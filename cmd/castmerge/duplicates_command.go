package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"castmerge/internal/catalog"
	"castmerge/internal/config"
	"castmerge/internal/detect"
)

func newDuplicatesCommand(ctx *commandContext) *cobra.Command {
	var entityFlag string
	var limitFlag int
	var maxResultsFlag int
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "duplicates",
		Short: "Scan the catalog for duplicate person references",
		RunE: func(cmd *cobra.Command, args []string) error {
			entityType, err := detect.ParseEntityType(entityFlag)
			if err != nil {
				return err
			}
			resolver, err := ctx.resolver()
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				detector := detect.New(store, resolver, ctx.ensureLogger())
				opts := detect.Options{
					EntityType: entityType,
					MovieLimit: cfg.Detection.MovieLimit,
					MaxResults: cfg.Detection.MaxResults,
				}
				if limitFlag > 0 {
					opts.MovieLimit = limitFlag
				}
				if maxResultsFlag > 0 {
					opts.MaxResults = maxResultsFlag
				}

				groups, err := detector.FindDuplicates(cmd.Context(), opts)
				if err != nil {
					return err
				}
				if jsonFlag {
					return writeJSON(cmd, groups)
				}

				out := cmd.OutOrStdout()
				if len(groups) == 0 {
					fmt.Fprintln(out, "No duplicate groups found")
					return nil
				}

				rows := make([][]string, 0, len(groups))
				for _, group := range groups {
					rows = append(rows, []string{
						group.CanonicalName,
						summarizeSpellings(group),
						occurrenceSummary(group),
						strconv.Itoa(len(group.Occurrences)),
						formatConfidence(group.Confidence),
					})
				}
				writeRows(out,
					[]string{"Canonical Name", "Spellings", "Fields", "Occurrences", "Confidence"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight})
				fmt.Fprintf(out, "%d duplicate group(s)\n", len(groups))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&entityFlag, "entity-type", "t", "all", "Entity type to scan: director, actor, or all")
	cmd.Flags().IntVar(&limitFlag, "movie-limit", 0, "Override the configured movie scan limit")
	cmd.Flags().IntVar(&maxResultsFlag, "max-results", 0, "Override the configured result cap")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit duplicate groups as JSON")
	return cmd
}
