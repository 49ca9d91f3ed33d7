package main

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"castmerge/internal/catalog"
	"castmerge/internal/config"
	"castmerge/internal/detect"
	"castmerge/internal/merge"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var entityFlag string
	var nameFlag string
	var minConfidenceFlag float64
	var fixFlag bool
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge duplicate person references to their canonical names",
		Long: "Merge runs in dry-run mode by default and only reports what it " +
			"would rewrite. Pass --fix to apply the changes.",
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
				logger := ctx.ensureLogger()

				if fixFlag {
					// One writer at a time. The engine itself takes no
					// lock, so concurrent fix runs are fenced here.
					lock := flock.New(cfg.LockPath())
					ok, err := lock.TryLock()
					if err != nil {
						return fmt.Errorf("acquire merge lock: %w", err)
					}
					if !ok {
						return errors.New("another merge is already running against this catalog")
					}
					defer lock.Unlock()
				}

				detector := detect.New(store, resolver, logger)
				groups, err := detector.FindDuplicates(cmd.Context(), detect.Options{
					EntityType: entityType,
					MovieLimit: cfg.Detection.MovieLimit,
					MaxResults: cfg.Detection.MaxResults,
				})
				if err != nil {
					return err
				}

				minConfidence := cfg.Detection.MinConfidence
				if cmd.Flags().Changed("min-confidence") {
					minConfidence = minConfidenceFlag
				}
				candidates := selectCandidates(groups, nameFlag, minConfidence)
				if len(candidates) == 0 {
					if jsonFlag {
						return writeJSON(cmd, merge.BatchResult{})
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to merge")
					return nil
				}

				engine := merge.NewEngine(store, logger)
				batch := merge.NewBatch(engine, logger)
				result := batch.Run(cmd.Context(), candidates, merge.Options{
					DryRun:            !fixFlag,
					PreserveAnalytics: cfg.Merge.PreserveAnalytics,
				})

				if jsonFlag {
					return writeJSON(cmd, result)
				}
				printBatchResult(cmd, result, fixFlag)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&entityFlag, "entity-type", "t", "all", "Entity type to scan: director, actor, or all")
	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Merge only the group with this canonical name")
	cmd.Flags().Float64Var(&minConfidenceFlag, "min-confidence", 0, "Override the configured confidence threshold")
	cmd.Flags().BoolVar(&fixFlag, "fix", false, "Apply the merges instead of reporting them")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the batch result as JSON")
	return cmd
}

// selectCandidates narrows detected groups to merge candidates. A named
// group bypasses the confidence threshold; the operator asked for it
// explicitly.
func selectCandidates(groups []detect.Group, name string, minConfidence float64) []merge.Candidate {
	if name == "" {
		return merge.CandidatesFromGroups(groups, minConfidence)
	}
	for _, group := range groups {
		if group.CanonicalName == name {
			return []merge.Candidate{{Group: group, CanonicalName: group.CanonicalName}}
		}
	}
	return nil
}

func printBatchResult(cmd *cobra.Command, result merge.BatchResult, applied bool) {
	out := cmd.OutOrStdout()
	for _, item := range result.Results {
		if item.Error != "" {
			fmt.Fprintf(out, "FAILED %s: %s\n", item.CanonicalName, item.Error)
			continue
		}
		movies := 0
		if item.Result != nil {
			movies = len(item.Result.AffectedMovieIDs)
		}
		if applied {
			rewritten := 0
			if item.Result != nil {
				rewritten = item.Result.MergedCount
			}
			fmt.Fprintf(out, "Merged %q: %d occurrence(s) rewritten across %d movie(s)\n", item.CanonicalName, rewritten, movies)
			continue
		}
		spellings := 0
		if item.Result != nil {
			spellings = len(item.Result.SourceNames)
		}
		fmt.Fprintf(out, "Would merge %q: %d spelling(s) across %d movie(s)\n", item.CanonicalName, spellings, movies)
	}
	fmt.Fprintf(out, "Total: %d, merged: %d, errors: %d\n", result.Total, result.Merged, result.Errors)
	if !applied {
		fmt.Fprintln(out, "Dry run only; re-run with --fix to apply")
	}
}
