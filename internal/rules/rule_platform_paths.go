package rules

import (
	"regexp"
	"strings"
)

var (
	driveLetter  = regexp.MustCompile(`[A-Za-z]:\\\\`)
	doubledSlash = regexp.MustCompile(`\\{2,}`)
)

// PlatformSpecificPaths flags lines with Windows drive letters, doubled
// backslashes, or mixed path separators.
func PlatformSpecificPaths() Rule {
	return Rule{
		Name:      "PlatformSpecificPaths",
		Category:  "Portability",
		Priority:  medium,
		Impact:    "Path separators or drive letters may break on other OS.",
		Heuristic: true,
		Check: func(ctx *Context) {
			for i, line := range ctx.Lines {
				mixed := strings.Contains(line, `\`) && strings.Contains(line, "/")
				if driveLetter.MatchString(line) || mixed || doubledSlash.MatchString(line) {
					ctx.At(i+1, "Hardcoded path detected. Prefer pathlib.Path or os.path.join for portability.")
				}
			}
		},
	}
}
