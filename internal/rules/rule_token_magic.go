package rules

import "regexp"

var tokenTypeCompare = regexp.MustCompile(`\.type\s*==\s*\d+`)

// TokenMagicNumbers flags lines comparing a .type attribute against a
// bare numeric literal; named token constants are clearer.
func TokenMagicNumbers() Rule {
	return Rule{
		Name:      "TokenMagicNumbers",
		Category:  "Correctness",
		Priority:  medium,
		Impact:    "Brittle parsing; unclear meaning.",
		Heuristic: true,
		Check: func(ctx *Context) {
			for i, line := range ctx.Lines {
				if tokenTypeCompare.MatchString(line) {
					ctx.At(i+1, "Comparing token .type to numeric literal; prefer named constants from token module.")
				}
			}
		},
	}
}
