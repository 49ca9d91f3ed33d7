package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"castmerge/internal/catalog"
	"castmerge/internal/collab"
	"castmerge/internal/config"
)

func newCollaborationsCommand(ctx *commandContext) *cobra.Command {
	var minMoviesFlag int
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:     "collaborations",
		Aliases: []string{"collabs"},
		Short:   "Report recurring collaboration pairs across the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				builder := collab.New(store, ctx.ensureLogger())
				minMovies := cfg.Collaboration.MinMovies
				if cmd.Flags().Changed("min-movies") {
					minMovies = minMoviesFlag
				}
				collaborations, err := builder.Build(cmd.Context(), collab.Options{MinMovies: minMovies})
				if err != nil {
					return err
				}
				if jsonFlag {
					return writeJSON(cmd, collaborations)
				}

				out := cmd.OutOrStdout()
				if len(collaborations) == 0 {
					fmt.Fprintln(out, "No recurring collaborations found")
					return nil
				}

				rows := make([][]string, 0, len(collaborations))
				for _, c := range collaborations {
					rows = append(rows, []string{
						c.Entity1,
						c.Entity2,
						humanLabel(string(c.RelationshipType)),
						strconv.Itoa(c.MovieCount),
					})
				}
				writeRows(out,
					[]string{"Entity", "Entity", "Relationship", "Movies"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight})
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&minMoviesFlag, "min-movies", 0, "Override the configured minimum shared movie count")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit collaborations as JSON")
	return cmd
}
