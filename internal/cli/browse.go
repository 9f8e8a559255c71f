// browse.go implements the browse-prompts command: list the library and
// optionally show one prompt by number.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/berth-dev/promptkit/internal/catalog"
	"github.com/berth-dev/promptkit/internal/log"
	"github.com/berth-dev/promptkit/internal/tui"
)

const browseTool = "browse-prompts"

// NewBrowseCommand builds the browse-prompts root command.
func NewBrowseCommand() *cobra.Command {
	opts := &globalOptions{}
	var (
		pick   bool
		render string
	)

	cmd := &cobra.Command{
		Use:   "browse-prompts [number]",
		Short: "List custom prompts and show one by number",
		Long: `List every prompt in the library grouped by category, numbered
from 1. Pass a number to print that prompt's content after the listing.
Numbers are assigned fresh on every run from the files on disk.`,
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
			if len(args) > 1 {
				return fmt.Errorf("accepts at most 1 arg(s), received %d", len(args))
			}
			return runBrowse(cmd, opts, args, pick, render)
		},
	}

	addGlobalFlags(cmd, opts)
	cmd.Flags().BoolVarP(&pick, "pick", "p", false, "Choose a prompt from an interactive list (requires a terminal)")
	cmd.Flags().StringVar(&render, "render", "", "Markdown rendering of prompt content: auto, always or never (default from config)")

	return cmd
}

func runBrowse(cmd *cobra.Command, opts *globalOptions, args []string, pick bool, render string) error {
	e, err := setup(cmd, opts, browseTool)
	if err != nil {
		return err
	}

	if render == "" {
		render = e.cfg.Display.Render
	}
	if !tui.ValidRenderMode(render) {
		return fmt.Errorf("invalid --render value %q (want auto, always or never)", render)
	}

	cat, err := catalog.Scan(e.root, catalog.WithIgnore(e.cfg.Ignore))
	if err != nil {
		return err
	}
	idx := catalog.BuildIndex(cat)

	out := cmd.OutOrStdout()
	if err := idx.Render(out, tui.IsTerminalWriter(out)); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	e.record(cmd, log.LogEvent{Event: log.EventCatalogListed, Prompts: idx.Len()})

	if pick {
		if idx.Empty() {
			return nil
		}
		item, ok, err := tui.Pick(pickItems(idx))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		args = []string{strconv.Itoa(item.Number)}
	}

	if len(args) == 0 {
		return nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		fmt.Fprintf(out, "Error: Invalid prompt number '%s'\n", args[0])
		return reported(err)
	}

	entry, err := idx.Lookup(n)
	if err != nil {
		fmt.Fprintf(out, "Error: Prompt number %d not found.\n", n)
		e.record(cmd, log.LogEvent{Event: log.EventPromptNotFound, Number: n})
		return reported(err)
	}

	showPrompt(cmd, out, entry, e, render)
	e.record(cmd, log.LogEvent{Event: log.EventPromptViewed, Number: n, Path: entry.Path})
	return nil
}

// showPrompt prints one prompt between content markers.
func showPrompt(cmd *cobra.Command, out io.Writer, entry catalog.Entry, e *env, render string) {
	content := catalog.ReadContent(entry)

	if tui.ShouldRender(render, out) {
		rendered, err := tui.RenderMarkdown(content, e.cfg.Display.Style, e.cfg.Display.Width)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; showing raw content\n", err)
		} else {
			content = strings.TrimRight(rendered, "\n")
		}
	}

	fmt.Fprintf(out, "\n=== Prompt Content: %s ===\n\n", entry.Name)
	fmt.Fprintln(out, content)
	fmt.Fprint(out, "\n=== End of Prompt ===\n\n")
}

func pickItems(idx *catalog.Index) []tui.PickItem {
	items := idx.Items()
	out := make([]tui.PickItem, len(items))
	for i, it := range items {
		category := it.Category
		if category == catalog.RootCategory {
			category = "Root"
		}
		out[i] = tui.PickItem{Number: it.Number, Name: it.Entry.Name, Category: category}
	}
	return out
}
