// Package js finds utility candidates in JavaScript string literals
package js

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// Parser handles parsing JS/JSX to extract string literal text
type Parser struct {
	parser *sitter.Parser
}

var jsLang = sitter.NewLanguage(tree_sitter_javascript.Language())

// parserPool is a pool of reusable JS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(jsLang); err != nil {
			panic(fmt.Sprintf("failed to set JS language: %v", err))
		}
		return &Parser{parser: parser}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Close closes the parser and releases its resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// ParseStrings returns the literal text of every string and template string
// in source, in document order. Template substitutions are skipped.
func (p *Parser) ParseStrings(source string) []Segment {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	var segments []Segment
	walk(tree.RootNode(), sourceBytes, &segments)
	return segments
}

func walk(node *sitter.Node, sourceBytes []byte, segments *[]Segment) {
	if node == nil {
		return
	}

	switch node.Kind() {
	case "string":
		*segments = append(*segments, extractSegments(node, sourceBytes, StringLiteral)...)
	case "template_string":
		*segments = append(*segments, extractSegments(node, sourceBytes, TemplateLiteral)...)
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		walk(node.Child(i), sourceBytes, segments)
	}
}

// extractSegments collects the string_fragment children of a literal node
func extractSegments(node *sitter.Node, sourceBytes []byte, kind SegmentKind) []Segment {
	var segments []Segment

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() != "string_fragment" {
			continue
		}
		segments = append(segments, Segment{
			Content:   string(sourceBytes[child.StartByte():child.EndByte()]),
			StartLine: child.StartPosition().Row,
			StartCol:  child.StartPosition().Column,
			Kind:      kind,
		})
	}

	return segments
}
