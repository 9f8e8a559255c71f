package cli

import (
	"strings"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	fs := NewBrowseCommand().Flags()

	tests := []struct {
		name       string
		args       []string
		flags      string
		positional string
	}{
		{"none", nil, "", ""},
		{"flag with value", []string{"--root", "/p", "3"}, "--root|/p", "3"},
		{"flag with equals", []string{"--root=/p", "3"}, "--root=/p", "3"},
		{"bool does not consume", []string{"--pick", "3"}, "--pick", "3"},
		{"shorthand", []string{"-p", "3"}, "-p", "3"},
		{"negative number", []string{"-1"}, "", "-1"},
		{"unknown long flag", []string{"--verbose explains"}, "", "--verbose explains"},
		{"markdown list", []string{"- a\n- b"}, "", "- a\n- b"},
		{"lone dash", []string{"-"}, "", "-"},
		{"double dash", []string{"--render", "never", "--", "--root", "-p"}, "--render|never", "--root|-p"},
		{"trailing flag without value", []string{"1", "--config"}, "--config", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, positional := splitArgs(fs, tt.args)
			if got := strings.Join(flags, "|"); got != tt.flags {
				t.Errorf("flags: got %q, want %q", got, tt.flags)
			}
			if got := strings.Join(positional, "|"); got != tt.positional {
				t.Errorf("positional: got %q, want %q", got, tt.positional)
			}
		})
	}
}

func TestBrowse_TrailingFlagWithoutValue(t *testing.T) {
	_, err := runCmd(t, NewBrowseCommand(), "", "--root")
	if err == nil || !strings.Contains(err.Error(), "needs an argument") {
		t.Fatalf("got %v, want a missing-argument error", err)
	}
}
