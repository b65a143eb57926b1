package main

import (
	"github.com/spf13/cobra"

	"github.com/reoring/modelcheck"
	"github.com/reoring/modelcheck/source"
)

func newMetamodelCommand(_ *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "metamodel",
		Short: "Print the metamodel, the schema language described in itself",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := source.ParseFormat(format)
			if err != nil {
				return err
			}
			b, err := source.Encode(f, modelcheck.MetamodelSpec())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (json, yaml)")
	return cmd
}
