package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reoring/modelcheck/i18n"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// exitError carries an exit code without an extra message; the command has
// already reported the details.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// app holds the state shared by all sub-commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *slog.Logger
}

// newRootCommand builds the command tree. Configuration is layered: flags,
// then MODELCHECK_* environment variables, then the config file
// (--config, MODELCHECK_CONFIG_FILE or ./.modelcheck.yaml).
func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "modelcheck",
		Short: "Validate and sanitize documents against declarative models",
		Long: `modelcheck checks JSON and YAML documents against a model of named schemas.

A model maps schema names to {type, meta} definitions. The model itself is
checked against the built-in metamodel before use.

Examples:
  modelcheck validate --model shapes.yaml --schema point point.json
  modelcheck validate --model shapes.yaml --format patch input.json
  modelcheck check shapes.yaml
  modelcheck export --model shapes.yaml --root point
  modelcheck metamodel --format yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./.modelcheck.yaml, can also use MODELCHECK_CONFIG_FILE)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.String("lang", "en", "message language (BCP 47 tag)")
	_ = a.v.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("log_format", pf.Lookup("log-format"))
	_ = a.v.BindPFlag("lang", pf.Lookup("lang"))

	root.AddCommand(
		newValidateCommand(a),
		newCheckCommand(a),
		newMetamodelCommand(a),
		newExportCommand(a),
		newVersionCommand(),
	)
	return root
}

func (a *app) initConfig(stderr io.Writer) error {
	switch {
	case a.cfgFile != "":
		a.v.SetConfigFile(a.cfgFile)
	case os.Getenv("MODELCHECK_CONFIG_FILE") != "":
		a.v.SetConfigFile(os.Getenv("MODELCHECK_CONFIG_FILE"))
	default:
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".modelcheck")
	}
	a.v.SetEnvPrefix("MODELCHECK")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	a.logger = newLogger(stderr, a.v.GetString("log_level"), a.v.GetString("log_format"))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", "path", used)
	}
	i18n.SetLanguage(a.v.GetString("lang"))
	return nil
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		lv = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lv}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
