package tui

import (
	"bytes"
	"strings"
	"testing"
)

func TestShouldRender(t *testing.T) {
	var buf bytes.Buffer

	if !ShouldRender(RenderAlways, &buf) {
		t.Error("always should render")
	}
	if ShouldRender(RenderNever, &buf) {
		t.Error("never should not render")
	}
	if ShouldRender(RenderAuto, &buf) {
		t.Error("auto should not render into a buffer")
	}
}

func TestValidRenderMode(t *testing.T) {
	for _, m := range []string{RenderAuto, RenderAlways, RenderNever} {
		if !ValidRenderMode(m) {
			t.Errorf("%q should be valid", m)
		}
	}
	if ValidRenderMode("sometimes") {
		t.Error("unknown mode should be invalid")
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Code Review\n\nCheck the **diff**.", "notty", 60)
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	for _, want := range []string{"Code Review", "Check the", "diff"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdown_UnknownStyle(t *testing.T) {
	if _, err := RenderMarkdown("text", "no-such-style", 60); err == nil {
		t.Error("expected an error for an unknown style")
	}
}
