package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/sieread/internal/buildinfo"
	"github.com/cleared-dev/sieread/internal/config"
)

// env is the state shared by all subcommands, filled in before they run.
type env struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	e := &env{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:     "sieread",
		Short:   "Read SIE accounting exports",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&e.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().StringVar(&e.logLevel, "log-level", "", "log level (trace, debug, info, warn, error); overrides config")

	rootCmd.AddCommand(newAccountsCommand(e))
	rootCmd.AddCommand(newVerificationsCommand(e))
	rootCmd.AddCommand(newCheckCommand(e))
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

// setup loads the config and builds the logger. A missing config file is
// only an error when --config was given explicitly.
func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.configPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		cfg = config.Default()
	default:
		return err
	}
	e.cfg = cfg

	logCfg := cfg.Log
	if e.logLevel != "" {
		logCfg.Level = e.logLevel
	}
	logger, err := newLogger(cmd.ErrOrStderr(), logCfg)
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	e.log = logger
	return nil
}
