package create

import (
	"regexp"
	"strings"
)

var (
	separatorRun = regexp.MustCompile(`[\s\v\x1c-\x1f\x{85}\p{Z}_]+`)
	disallowed   = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRun    = regexp.MustCompile(`-+`)
)

// SanitizeName converts a human-entered title into a kebab-case filename
// stem. The result may be empty when the title has no letters or digits;
// callers must reject that.
func SanitizeName(title string) string {
	name := strings.ToLower(title)
	name = separatorRun.ReplaceAllString(name, "-")
	name = disallowed.ReplaceAllString(name, "")
	name = hyphenRun.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}
