// Package cli defines Cobra command definitions for browse-prompts and
// create-prompt. This file contains the shared flags, setup and Execute
// helpers used by both tools.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/berth-dev/promptkit/internal/config"
	"github.com/berth-dev/promptkit/internal/log"
)

var version = "dev" // set via ldflags at build time

// errReported marks a failure whose message has already been printed.
var errReported = errors.New("already reported")

// reported wraps err so Execute exits non-zero without printing it again.
func reported(err error) error {
	return fmt.Errorf("%w: %w", errReported, err)
}

// globalOptions holds the flags both tools accept.
type globalOptions struct {
	root       string
	configPath string
	initConfig bool
}

func addGlobalFlags(cmd *cobra.Command, opts *globalOptions) {
	cmd.Flags().StringVar(&opts.root, "root", "", "Prompt library directory (default: ../prompts next to the executable)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Config file (default: <user config dir>/promptkit/config.yaml)")
	cmd.Flags().BoolVar(&opts.initConfig, "init-config", false, "Write a default config file (with --root, if given) and exit")
}

// writeInitialConfig creates the config file named by --config, or the
// default one. An existing file is never replaced.
func writeInitialConfig(cmd *cobra.Command, opts *globalOptions) error {
	path := opts.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	cfg := config.DefaultConfig()
	cfg.Root = opts.root
	if err := config.WriteConfig(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}

// env is the resolved per-invocation state.
type env struct {
	cfg    *config.Config
	root   string
	logger *log.Logger
}

// setup loads config, resolves the prompt root and opens the event log.
// A log that cannot be opened is a warning, not a failure.
func setup(cmd *cobra.Command, opts *globalOptions, tool string) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	root, err := cfg.ResolveRoot(opts.root)
	if err != nil {
		return nil, fmt.Errorf("resolving prompt root: %w", err)
	}

	e := &env{cfg: cfg, root: root}

	if cfg.Log.Enabled {
		dir, dirErr := cfg.LogDir()
		if dirErr == nil {
			e.logger, dirErr = log.NewLogger(dir, tool)
		}
		if dirErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: event log disabled: %v\n", dirErr)
		}
	}

	return e, nil
}

// record appends an event, reporting failures on stderr only.
func (e *env) record(cmd *cobra.Command, event log.LogEvent) {
	if event.Root == "" {
		event.Root = e.root
	}
	if err := e.logger.Append(event); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to write event log: %v\n", err)
	}
}

// ExecuteBrowse runs browse-prompts. Called from main.
func ExecuteBrowse() {
	execute(NewBrowseCommand())
}

// ExecuteCreate runs create-prompt. Called from main.
func ExecuteCreate() {
	execute(NewCreateCommand())
}

func execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
