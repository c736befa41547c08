package rules

import (
	"sort"
	"strings"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// ImportOrder flags relative imports appearing before the first absolute
// import at module scope, and contiguous import blocks whose flattened
// name list is not case-insensitively alphabetical.
func ImportOrder() Rule {
	r := Rule{
		Name:      "ImportOrder",
		Category:  "Style/Maintainability",
		Priority:  low,
		Impact:    "Consistent import ordering improves readability and reduces merge noise.",
		Heuristic: true,
	}
	r.Hooks = map[pyast.Kind]Hook{
		pyast.Module: func(ctx *Context, m *pyast.Node) {
			var imports []*pyast.Node
			for _, n := range m.Body {
				if n.Kind == pyast.Import || n.Kind == pyast.ImportFrom {
					imports = append(imports, n)
				}
			}
			sort.SliceStable(imports, func(i, j int) bool { return imports[i].Line < imports[j].Line })

			seenAbsolute := false
			for _, n := range imports {
				if n.Kind == pyast.ImportFrom && n.Level > 0 {
					if !seenAbsolute {
						ctx.Report("", "", n.Line, "",
							ctx.Prefixed("Relative import appears before absolute imports; reorder."))
					}
				} else {
					seenAbsolute = true
				}
			}

			var block []*pyast.Node
			prevLine := -1
			flush := func() {
				checkImportBlock(ctx, block)
				block = nil
			}
			for _, n := range imports {
				if prevLine != -1 && n.Line != prevLine+1 {
					flush()
				}
				block = append(block, n)
				prevLine = n.Line
			}
			flush()
		},
	}
	return r
}

func checkImportBlock(ctx *Context, block []*pyast.Node) {
	if len(block) == 0 {
		return
	}
	var names []string
	for _, n := range block {
		if n.Kind == pyast.Import {
			for _, a := range n.Names {
				names = append(names, a.Name)
			}
			continue
		}
		base := strings.Repeat(".", n.Level) + n.Module
		for _, a := range n.Names {
			if base != "" {
				names = append(names, base+"."+a.Name)
			} else {
				names = append(names, a.Name)
			}
		}
	}
	sorted := append([]string(nil), names...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i]) < strings.ToLower(sorted[j])
	})
	for i := range names {
		if names[i] != sorted[i] {
			ctx.Report("", "", block[0].Line, "",
				ctx.Prefixed("Import statements in this block are not alphabetically ordered."))
			return
		}
	}
}
