package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reoring/modelcheck"
	"github.com/reoring/modelcheck/source"
)

func newValidateCommand(a *app) *cobra.Command {
	var modelPath, inputFormat string
	cmd := &cobra.Command{
		Use:   "validate --model FILE [input...]",
		Short: "Validate documents against a schema of a model",
		Long: `Validate each input document (or standard input when none is given, or "-")
against a schema of the model and print the result.

Output formats:
  text   human readable report (colored on terminals)
  json   results as JSON
  yaml   results as YAML
  patch  RFC 7386 merge patch turning each input into its sanitized value
  diff   line diff between each input and its sanitized value

The exit status is 1 when any input has errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if modelPath == "" {
				return fmt.Errorf("--model is required")
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			return a.runValidate(cmd, modelPath, inputFormat, args)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&modelPath, "model", "m", "", "model file (JSON or YAML)")
	f.StringVar(&inputFormat, "input-format", "json", "format of inputs without a .json/.yaml extension")
	addValidationFlags(a, f)
	return cmd
}

// addValidationFlags registers the flags that map onto modelcheck.Options.
func addValidationFlags(a *app, f *pflag.FlagSet) {
	f.StringP("schema", "s", "", "schema name (default: default_model from config)")
	f.Bool("regex-as-string", false, "render sanitized patterns as /source/flags")
	f.Bool("hide-confidential", false, "redact strings marked confidential")
	f.Int("max-depth", 0, "maximum validation depth (0: library default, <0: unlimited)")
	f.StringP("format", "f", "text", "output format (text, json, yaml, patch, diff)")
	_ = a.v.BindPFlag("default_model", f.Lookup("schema"))
	_ = a.v.BindPFlag("regex_as_string", f.Lookup("regex-as-string"))
	_ = a.v.BindPFlag("hide_confidential", f.Lookup("hide-confidential"))
	_ = a.v.BindPFlag("max_depth", f.Lookup("max-depth"))
	_ = a.v.BindPFlag("format", f.Lookup("format"))
}

func (a *app) options() []modelcheck.Option {
	return []modelcheck.Option{
		modelcheck.WithDefaultModel(a.v.GetString("default_model")),
		modelcheck.WithRegexAsString(a.v.GetBool("regex_as_string")),
		modelcheck.WithHideConfidential(a.v.GetBool("hide_confidential")),
		modelcheck.WithMaxDepth(a.v.GetInt("max_depth")),
		modelcheck.WithLogger(a.logger),
	}
}

func (a *app) runValidate(cmd *cobra.Command, modelPath, inputFormat string, inputs []string) error {
	def, err := source.ParseFormat(inputFormat)
	if err != nil {
		return err
	}
	rep, err := newReporter(a.v.GetString("format"), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	v, err := a.loadModel(cmd, modelPath)
	if err != nil {
		return err
	}
	schema := a.v.GetString("default_model")
	if schema == "" {
		if names := v.Schemas(); len(names) == 1 {
			schema = names[0]
		} else {
			return fmt.Errorf("--schema is required: model defines %d schemas", len(names))
		}
	}

	failed := false
	for _, name := range inputs {
		value, err := readDocument(cmd.InOrStdin(), name, source.FormatOf(name, def))
		if err != nil {
			return err
		}
		res, err := v.Validate(value, schema)
		if err != nil {
			return err
		}
		a.logger.Info("validated", "input", name, "schema", schema, "status", string(res.Status))
		if !res.OK() {
			failed = true
		}
		if err := rep.add(name, value, res); err != nil {
			return err
		}
	}
	if err := rep.flush(); err != nil {
		return err
	}
	if failed {
		return &exitError{code: exitInvalid}
	}
	return nil
}

func (a *app) loadModel(cmd *cobra.Command, path string) (*modelcheck.Validator, error) {
	spec, err := readDocument(cmd.InOrStdin(), path, source.FormatOf(path, source.FormatYAML))
	if err != nil {
		return nil, err
	}
	v, err := modelcheck.Compile(spec, a.options()...)
	if err != nil {
		if iss, ok := modelcheck.AsIssues(err); ok {
			printIssues(cmd.ErrOrStderr(), path, iss, nil)
			return nil, &exitError{code: exitUsage}
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func readDocument(stdin io.Reader, name string, f source.Format) (any, error) {
	var r io.Reader = stdin
	if name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", name, err)
		}
		defer file.Close()
		r = file
	}
	v, err := source.DecodeReader(f, r)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	return v, nil
}
