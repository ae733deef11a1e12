// Package cli implements the invobs command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/invobs/internal/paths"
	"github.com/mesh-intelligence/invobs/pkg/inventory"
	"github.com/mesh-intelligence/invobs/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// sysError marks failures of the environment (files, directories) rather
// than of user input.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func sysErr(err error) error {
	if err == nil {
		return nil
	}
	return &sysError{err: err}
}

// cliState holds global flag values and what PersistentPreRunE loaded from
// them. Each root command owns one, so tests can build independent trees.
type cliState struct {
	configDir string
	jsonMode  bool
	verbose   bool

	cfg    *viper.Viper
	logger *slog.Logger
}

// NewRootCmd creates the top-level "invobs" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	st := &cliState{}

	root := &cobra.Command{
		Use:     "invobs",
		Short:   "Translate engine observation dumps into inventory counts",
		Long:    "invobs reads hero events or universal snapshots and reports per-item counts\nover a declared, sorted item vocabulary.",
		Version: version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for the version command.
			if cmd.Name() == "version" {
				return nil
			}

			configDir, err := paths.ResolveConfigDir(st.configDir)
			if err != nil {
				return sysErr(err)
			}
			st.configDir = configDir

			cfg, err := loadConfig(configDir, cmd.Flags())
			if err != nil {
				return sysErr(err)
			}
			st.cfg = cfg

			level := slog.LevelInfo
			if st.verbose {
				level = slog.LevelDebug
			}
			st.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/invobs)")
	pf.BoolVar(&st.jsonMode, "json", false, "output as JSON")
	pf.BoolVarP(&st.verbose, "verbose", "v", false, "log skipped records")
	pf.String(cfgKeyFlavor, "", "translator flavor: flat or variant (overrides config)")
	pf.StringSlice(cfgKeyItems, nil, "item vocabulary, comma separated (overrides config)")
	pf.Bool(flagUseVariants, false, "fold variants into item keys (variant flavor)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(st))
	root.AddCommand(newVocabCmd(st))
	root.AddCommand(newTranslateCmd(st))
	root.AddCommand(newMergeCmd(st))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "invobs:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error onto the CLI's exit codes.
func exitCode(err error) int {
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// translatorConfig returns the translator configuration resolved from flags,
// environment, config.yaml, and defaults.
func (st *cliState) translatorConfig() types.Config {
	return types.Config{
		Flavor:      st.cfg.GetString(cfgKeyFlavor),
		Items:       splitItems(st.cfg.GetStringSlice(cfgKeyItems)),
		UseVariants: st.cfg.GetBool(cfgKeyUseVariants),
	}
}

// translator builds the configured translator.
func (st *cliState) translator() (inventory.Translator, error) {
	return inventory.NewTranslator(st.translatorConfig(), inventory.WithLogger(st.logger))
}
