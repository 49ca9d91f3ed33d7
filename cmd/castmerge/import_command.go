package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"castmerge/internal/catalog"
	"castmerge/internal/config"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import movies from a JSON file into the catalog",
		Long: "Import reads a JSON array of movie objects and inserts each one. " +
			"Cast lists may mix bare name strings with objects carrying a name field; " +
			"both forms are kept as-is.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			var movies []*catalog.Movie
			if err := json.Unmarshal(data, &movies); err != nil {
				return fmt.Errorf("parse import file: %w", err)
			}

			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				inserted := 0
				for i, movie := range movies {
					if movie == nil || movie.Title == "" {
						return fmt.Errorf("movie %d has no title", i)
					}
					if _, err := store.Insert(cmd.Context(), movie); err != nil {
						return fmt.Errorf("insert %q: %w", movie.Title, err)
					}
					inserted++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d movie(s)\n", inserted)
				return nil
			})
		},
	}
	return cmd
}
