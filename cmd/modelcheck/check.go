package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/modelcheck"
	"github.com/reoring/modelcheck/source"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check MODEL...",
		Short: "Check model files against the metamodel",
		Long: `Check each model file against the metamodel and compile it. Unlike
validation of ordinary data, any warning rejects a model.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPalette(cmd.OutOrStdout())
			failed := false
			for _, path := range args {
				spec, err := readDocument(cmd.InOrStdin(), path, source.FormatOf(path, source.FormatYAML))
				if err != nil {
					return err
				}
				v, err := modelcheck.Compile(spec, modelcheck.WithLogger(a.logger))
				if err != nil {
					failed = true
					if iss, ok := modelcheck.AsIssues(err); ok {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, p.err.Sprint("invalid"))
						printIssues(cmd.OutOrStdout(), "", iss, &p)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s: %v\n", path, p.err.Sprint("invalid"), err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d schemas)\n", path, p.ok.Sprint("ok"), len(v.Schemas()))
			}
			if failed {
				return &exitError{code: exitInvalid}
			}
			return nil
		},
	}
}
