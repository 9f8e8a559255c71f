// args.go splits the command line by hand. Both tools take free-form
// positional arguments (prompt content, a prompt number) that may start with
// a dash, so only flags the command declares are treated as flags.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// splitArgs separates declared flags (and their values) from positional
// arguments. Any token that is not a declared flag is positional, even when
// it starts with a dash: "- item", "--verbose explains" and "-1" all reach
// the command untouched. "--" ends flag parsing.
func splitArgs(fs *pflag.FlagSet, args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}

		f := lookupFlag(fs, a)
		if f == nil {
			positional = append(positional, a)
			continue
		}

		flagArgs = append(flagArgs, a)
		if !strings.Contains(a, "=") && f.NoOptDefVal == "" && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}
	return flagArgs, positional
}

func lookupFlag(fs *pflag.FlagSet, arg string) *pflag.Flag {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		name, _, _ := strings.Cut(arg[2:], "=")
		return fs.Lookup(name)
	case strings.HasPrefix(arg, "-") && len(arg) == 2:
		return fs.ShorthandLookup(arg[1:])
	}
	return nil
}

// parseCommandLine parses the declared flags of a command built with
// DisableFlagParsing and returns its positional arguments. done is set when
// --help or --version was handled and the command should stop.
func parseCommandLine(cmd *cobra.Command, args []string) (positional []string, done bool, err error) {
	flagArgs, positional := splitArgs(cmd.Flags(), args)
	if err := cmd.Flags().Parse(flagArgs); err != nil {
		return nil, false, err
	}

	if help, _ := cmd.Flags().GetBool("help"); help {
		return nil, true, cmd.Help()
	}
	if v, _ := cmd.Flags().GetBool("version"); v {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Name(), cmd.Version)
		return nil, true, nil
	}

	return positional, false, nil
}
