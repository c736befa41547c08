package rules

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

var (
	snakeCase = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	camelCase = regexp.MustCompile(`^[A-Z][A-Za-z0-9]+$`)
)

// NamingConventions enforces snake_case functions/parameters/variables
// and CamelCase classes.
func NamingConventions() Rule {
	return Rule{
		Name:      "NamingConventions",
		Category:  "Style",
		Priority:  low,
		Impact:    "Non-PEP8 naming hurts readability.",
		Heuristic: true,
		Check: func(ctx *Context) {
			pyast.Walk(ctx.Tree, func(n *pyast.Node) bool {
				switch n.Kind {
				case pyast.FunctionDef, pyast.AsyncFunctionDef:
					if !isDunder(n.Name) && !snakeCase.MatchString(n.Name) {
						ctx.At(n.Line, `Function name "`+n.Name+`" is not snake_case.`)
					}
					checkParamNames(ctx, n.Args)
				case pyast.Lambda:
					checkParamNames(ctx, n.Args)
				case pyast.ClassDef:
					if !camelCase.MatchString(n.Name) {
						ctx.At(n.Line, `Class name "`+n.Name+`" is not CamelCase.`)
					}
				case pyast.Name:
					if n.Ctx != pyast.Store {
						return true
					}
					if pyast.IsBuiltin(n.Name) {
						ctx.At(n.Line, `Variable "`+n.Name+`" shadows built-in.`)
					}
					if hasUpper(n.Name) && !isAllUpper(n.Name) {
						ctx.At(n.Line, `Variable "`+n.Name+`" is not snake_case.`)
					}
				}
				return true
			})
		},
	}
}

func checkParamNames(ctx *Context, args *pyast.Arguments) {
	if args == nil {
		return
	}
	check := func(p *pyast.Param) {
		if p == nil || p.Name == "self" || p.Name == "cls" || p.Name == "" {
			return
		}
		if !snakeCase.MatchString(p.Name) {
			ctx.At(p.Line, `Parameter name "`+p.Name+`" is not snake_case.`)
		}
	}
	for _, p := range args.Args {
		check(p)
	}
	for _, p := range args.KwOnly {
		check(p)
	}
	check(args.Vararg)
	check(args.Kwarg)
}

func isDunder(name string) bool {
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// isAllUpper mirrors str.isupper: every cased rune uppercase, at least one.
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
