// Package rulesdsl loads extra text-match rules from a YAML pack.
package rulesdsl

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/codewithboateng/pyreview/internal/pyast"
	"github.com/codewithboateng/pyreview/internal/rules"
)

type dslPack struct {
	Rules []dslRule `yaml:"rules"`
}

type dslRule struct {
	ID       string `yaml:"id"`
	Category string `yaml:"category"`
	Priority string `yaml:"priority"` // LOW|MEDIUM|HIGH
	Impact   string `yaml:"impact"`
	Message  string `yaml:"message"`

	Where struct {
		LineRegex    string `yaml:"line_regex"`    // regex matched per source line (case-insensitive)
		ExcludeRegex string `yaml:"exclude_regex"` // skip lines that also match this (optional)
		FileRegex    string `yaml:"file_regex"`    // only files whose path matches (optional)
		Import       string `yaml:"import"`        // only files importing this module (optional)
	} `yaml:"where"`
}

type compiled struct {
	rule       dslRule
	reLine     *regexp.Regexp
	reExclude  *regexp.Regexp
	reFile     *regexp.Regexp
	needImport string
}

// LoadRules reads a YAML pack and returns one Rule per entry.
func LoadRules(path string) ([]rules.Rule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules pack: %w", err)
	}
	var pack dslPack
	if err := yaml.Unmarshal(b, &pack); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	var out []rules.Rule
	for _, r := range pack.Rules {
		cr, err := compile(r)
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.ID, err)
		}
		out = append(out, asRule(*cr))
	}
	return out, nil
}

func compile(r dslRule) (*compiled, error) {
	if r.ID == "" || r.Category == "" || r.Priority == "" || r.Message == "" {
		return nil, fmt.Errorf("missing required fields (id/category/priority/message)")
	}
	switch strings.ToUpper(r.Priority) {
	case "LOW", "MEDIUM", "HIGH":
	default:
		return nil, fmt.Errorf("bad priority %q", r.Priority)
	}
	if r.Where.LineRegex == "" {
		return nil, fmt.Errorf("missing where.line_regex")
	}
	c := &compiled{rule: r, needImport: strings.TrimSpace(r.Where.Import)}
	re, err := regexp.Compile("(?i)" + r.Where.LineRegex)
	if err != nil {
		return nil, fmt.Errorf("line_regex: %w", err)
	}
	c.reLine = re
	if r.Where.ExcludeRegex != "" {
		re, err := regexp.Compile("(?i)" + r.Where.ExcludeRegex)
		if err != nil {
			return nil, fmt.Errorf("exclude_regex: %w", err)
		}
		c.reExclude = re
	}
	if r.Where.FileRegex != "" {
		re, err := regexp.Compile("(?i)" + r.Where.FileRegex)
		if err != nil {
			return nil, fmt.Errorf("file_regex: %w", err)
		}
		c.reFile = re
	}
	return c, nil
}

func asRule(c compiled) rules.Rule {
	return rules.Rule{
		Name:      c.rule.ID,
		Category:  c.rule.Category,
		Priority:  strings.ToUpper(c.rule.Priority),
		Impact:    c.rule.Impact,
		Heuristic: true,
		Check: func(ctx *rules.Context) {
			if c.reFile != nil && !c.reFile.MatchString(ctx.File) {
				return
			}
			if c.needImport != "" && !importsModule(ctx.Tree, c.needImport) {
				return
			}
			for i, line := range ctx.Lines {
				if !c.reLine.MatchString(line) {
					continue
				}
				if c.reExclude != nil && c.reExclude.MatchString(line) {
					continue
				}
				ctx.At(i+1, c.rule.Message)
			}
		},
	}
}

// importsModule reports whether the module (or one of its submodules)
// is imported anywhere in the tree.
func importsModule(tree *pyast.Node, module string) bool {
	found := false
	pyast.Walk(tree, func(n *pyast.Node) bool {
		switch n.Kind {
		case pyast.Import:
			for _, a := range n.Names {
				if a.Name == module || strings.HasPrefix(a.Name, module+".") {
					found = true
				}
			}
		case pyast.ImportFrom:
			if n.Module == module || strings.HasPrefix(n.Module, module+".") {
				found = true
			}
		}
		return !found
	})
	return found
}
