// Package parser turns Python source text into the pyast tree the rules
// consume. Parsing is done with tree-sitter and its Python grammar; the
// concrete syntax tree is converted into pyast's tagged nodes in one pass.
package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/codewithboateng/pyreview/internal/pyast"
)

// Parse parses src and returns the module node. Any syntax error yields nil:
// the analyzer treats the file as unparsable and every rule sees no tree.
func Parse(src []byte) *pyast.Node {
	p := sitter.NewParser()
	defer p.Close()
	lang := sitter.NewLanguage(tree_sitter_python.Language())
	if err := p.SetLanguage(lang); err != nil {
		return nil
	}
	tree := p.Parse(src, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()
	root := tree.RootNode()
	if root == nil || root.HasError() {
		return nil
	}
	c := &converter{src: src}
	return c.module(root)
}
