package rules

import (
	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/parser"
)

// DefaultRegistry returns the full rule set in its fixed execution order.
// The returned slice is a fresh value; callers may filter or reorder it
// without affecting other runs.
func DefaultRegistry(s Settings) []Rule {
	s = s.Normalize()
	all := []Rule{
		BareOrBroadExcept(),
		AssertForRuntime(),
		MutableDefaultArgs(),
		OpenWithoutWith(),
		FileModeMismatch(),
		NonPythonicLoops(),
		LenComparisons(),
		IdentityVsEquality(),
		TypeCheck(),
		UnsafeCSVParsing(),
		EvalExecUse(),
		DangerousFunctions(),
		Concurrency(),
		ExitCallsInLibrary(),
		UnusedImports(),
		UnusedVariables(),
		WildcardImports(),
		ShadowBuiltins(),
		TokenMagicNumbers(),
		PrintStatements(),
		FStringMissing(),
		NamingConventions(),
		UndefinedNames(),
		DictAccessGuard(),
		ReturnAnnotationMismatch(),
		TodoComments(),
		PlatformSpecificPaths(),
		PotentialStringCastNeeded(),
		ExceptionChaining(),
		EmptyExceptBody(),
		MagicLiterals(),
		MissingDocstrings(),
		Complexity(s.MaxComplexity, s.MaxFuncLines),
		IgnoredReturnValue(),
		ImportOrder(),
		CircularImports(),
		OpenEncoding(),
		ThreadSafety(),
	}
	if len(s.Disabled) == 0 {
		return all
	}
	out := make([]Rule, 0, len(all))
	for _, r := range all {
		if s.Disabled[r.Name] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Evaluate runs every rule in rs over one file's parsed state and returns
// the concatenated findings filtered by the minimum priority.
func Evaluate(rs []Rule, ctx *Context) []issue.Issue {
	min := issue.Rank(ctx.Settings.MinPriority)
	var all []issue.Issue
	for i := range rs {
		for _, iss := range rs[i].Run(ctx) {
			if issue.Rank(iss.Priority) >= min {
				all = append(all, iss)
			}
		}
	}
	return all
}

// Analyze parses src and evaluates the default registry against it. It is
// the library entry point for callers that do not need driver features.
func Analyze(file string, src []byte, s Settings) []issue.Issue {
	tree := parser.Parse(src)
	ctx := NewContext(file, string(src), tree, s.Normalize())
	return Evaluate(DefaultRegistry(s), ctx)
}
