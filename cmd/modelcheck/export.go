package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/modelcheck/jsonschema"
	"github.com/reoring/modelcheck/source"
)

func newExportCommand(a *app) *cobra.Command {
	var modelPath, root, format string
	cmd := &cobra.Command{
		Use:   "export --model FILE",
		Short: "Export a model as a JSON Schema document",
		Long: `Export every schema of the model under $defs of a JSON Schema (draft 2020-12)
document. With --root the document's $ref points at that schema.

Coercions accepted by the validator have no JSON Schema equivalent; the
export describes sanitized values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if modelPath == "" {
				return fmt.Errorf("--model is required")
			}
			f, err := source.ParseFormat(format)
			if err != nil {
				return err
			}
			v, err := a.loadModel(cmd, modelPath)
			if err != nil {
				return err
			}
			doc, err := jsonschema.Export(v, root)
			if err != nil {
				return err
			}
			b, err := source.Encode(f, doc)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "model file (JSON or YAML)")
	cmd.Flags().StringVar(&root, "root", "", "schema referenced by the document's $ref")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, yaml)")
	return cmd
}
