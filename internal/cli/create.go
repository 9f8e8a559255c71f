// create.go implements the create-prompt command in its interactive and
// argument-driven forms.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/berth-dev/promptkit/internal/create"
	"github.com/berth-dev/promptkit/internal/log"
	"github.com/berth-dev/promptkit/internal/tui"
)

const createTool = "create-prompt"

const createUsage = `Usage:
  Interactive mode: create-prompt
  Command-line mode: create-prompt <name> <content> [category]
`

var errUsage = errors.New("wrong number of arguments")

// NewCreateCommand builds the create-prompt root command.
func NewCreateCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "create-prompt [name content [category]]",
		Short: "Create a new custom prompt",
		Long: `Create a prompt file in the library.

With no arguments, asks for a name, a category and the content (end the
content with Ctrl+D). An existing prompt is only replaced after confirmation.

With <name> <content> [category], writes the prompt directly. In this mode an
existing prompt with the same name and category is overwritten without asking.
Content may start with a dash ("- item"); only the flags listed below are
read as flags. Put "--" before the arguments to pass one of those literally.`,
		Version:            version,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			args, done, err := parseCommandLine(cmd, args)
			if err != nil || done {
				return err
			}
			if opts.initConfig {
				return writeInitialConfig(cmd, opts)
			}
			switch len(args) {
			case 0, 2, 3:
				return runCreate(cmd, opts, args)
			}
			fmt.Fprint(cmd.OutOrStdout(), createUsage)
			return reported(errUsage)
		},
	}

	addGlobalFlags(cmd, opts)
	return cmd
}

func runCreate(cmd *cobra.Command, opts *globalOptions, args []string) error {
	e, err := setup(cmd, opts, createTool)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		session := create.NewSession(e.root, cmd.InOrStdin(), out)
		res, err := session.Run()
		return finishCreate(cmd, e, out, "interactive", res, err)
	}

	category := ""
	if len(args) == 3 {
		category = args[2]
	}
	res, err := create.CreateFromArgs(e.root, args[0], args[1], category)
	return finishCreate(cmd, e, out, "args", res, err)
}

// finishCreate reports the outcome of a creation attempt and records it.
func finishCreate(cmd *cobra.Command, e *env, out io.Writer, mode string, res create.Result, err error) error {
	event := log.LogEvent{Mode: mode, Path: res.Path, Category: res.Category}

	switch {
	case err == nil:
		event.Event = log.EventPromptCreated
		if res.Overwrote {
			event.Event = log.EventPromptOverwritten
		}
		e.record(cmd, event)

		msg := "✓ Prompt created: " + res.Path
		if mode == "interactive" {
			msg = "\n✓ Prompt created successfully: " + res.Path
		}
		if tui.IsTerminalWriter(out) {
			msg = tui.SuccessStyle.Render(msg)
		}
		fmt.Fprintln(out, msg)
		return nil

	case errors.Is(err, create.ErrCancelled):
		event.Event = log.EventPromptCancelled
		e.record(cmd, event)
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}

	event.Event = log.EventPromptCreateFailed
	event.Error = err.Error()
	e.record(cmd, event)

	switch {
	case errors.Is(err, create.ErrInvalidName):
		fmt.Fprintln(out, "Error: Could not create valid filename from prompt name.")
	case errors.Is(err, create.ErrEmptyContent):
		fmt.Fprintln(out, "\nError: Prompt content cannot be empty.")
	case errors.Is(err, create.ErrInputClosed):
		fmt.Fprintf(out, "\nError: %v\n", err)
	default:
		fmt.Fprintf(out, "\nError creating prompt file: %v\n", err)
	}
	return reported(err)
}
