package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"castmerge/internal/names"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "resolve <name>",
		Short: "Resolve a name against the external identity service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := ctx.resolver()
			if err != nil {
				return err
			}
			if resolver == nil {
				return errors.New("tmdb enrichment is disabled; enable it in the configuration first")
			}

			canonical := names.Canonicalize(args[0])
			identity, err := resolver.Resolve(cmd.Context(), canonical)
			if err != nil {
				return err
			}
			if jsonFlag {
				return writeJSON(cmd, identity)
			}

			out := cmd.OutOrStdout()
			if !identity.Found {
				fmt.Fprintf(out, "No confident match for %q\n", canonical)
				return nil
			}
			fmt.Fprintf(out, "Name:       %s\n", identity.Name)
			fmt.Fprintf(out, "Person ID:  %d\n", identity.PersonID)
			fmt.Fprintf(out, "Department: %s\n", identity.Department)
			fmt.Fprintf(out, "Popularity: %.1f\n", identity.Popularity)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the resolved identity as JSON")
	return cmd
}
