// Package css reads generated stylesheets back with tree-sitter, listing
// declarations and var() references and flagging syntax errors.
package css

import (
	"fmt"
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// Parser handles parsing CSS with tree-sitter
type Parser struct {
	parser *sitter.Parser
}

var cssLang = sitter.NewLanguage(tree_sitter_css.Language())

// parserPool is a pool of reusable CSS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(cssLang); err != nil {
			panic(fmt.Sprintf("failed to set CSS language: %v", err))
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

// Parse parses CSS source and extracts declarations, var() calls and syntax errors
func (p *Parser) Parse(source string) (*ParseResult, error) {
	src := []byte(source)
	tree := p.parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse CSS")
	}
	defer tree.Close()

	result := &ParseResult{
		Declarations: []*Declaration{},
		VarCalls:     []*VarCall{},
	}
	p.walkTree(tree.RootNode(), src, "", result)
	return result, nil
}

// walkTree recursively walks the tree, carrying the enclosing rule's selector
func (p *Parser) walkTree(node *sitter.Node, source []byte, selector string, result *ParseResult) {
	if node == nil {
		return
	}

	switch node.Kind() {
	case "rule_set":
		selector = ruleSelector(node, source)
	case "declaration":
		handleDeclaration(node, source, selector, result)
	case "call_expression":
		handleCallExpression(node, source, result)
	}

	if node.IsError() || node.IsMissing() {
		result.Errors = append(result.Errors, &SyntaxError{
			Text:  text(node, source),
			Range: nodeRange(node),
		})
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		p.walkTree(node.Child(i), source, selector, result)
	}
}

func ruleSelector(node *sitter.Node, source []byte) string {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() == "selectors" {
			return strings.TrimSpace(text(child, source))
		}
	}
	return ""
}

// handleDeclaration records the property and the raw text between ":" and ";"
func handleDeclaration(node *sitter.Node, source []byte, selector string, result *ParseResult) {
	var property string
	var valueStart, valueEnd uint
	afterColon := false

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch kind := child.Kind(); {
		case kind == "property_name":
			property = text(child, source)
		case kind == ":":
			afterColon = true
		case kind == ";":
		case afterColon:
			if valueStart == 0 {
				valueStart = child.StartByte()
			}
			valueEnd = child.EndByte()
		}
	}

	if property == "" {
		return
	}

	var value string
	if valueEnd > valueStart {
		value = strings.TrimSpace(string(source[valueStart:valueEnd]))
	}

	result.Declarations = append(result.Declarations, &Declaration{
		Selector: selector,
		Property: property,
		Value:    value,
		Range:    nodeRange(node),
	})
}

// handleCallExpression processes a function call expression (looking for var())
func handleCallExpression(node *sitter.Node, source []byte, result *ParseResult) {
	var functionNameNode *sitter.Node
	var argumentsNode *sitter.Node

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "function_name":
			functionNameNode = child
		case "arguments":
			argumentsNode = child
		}
	}

	if functionNameNode == nil || argumentsNode == nil {
		return
	}
	if text(functionNameNode, source) != "var" {
		return
	}

	// First argument is the property name, the rest is the fallback
	var name string
	var fallback *string
	var fallbackStart, fallbackEnd uint

	argCount := 0
	for i := uint(0); i < argumentsNode.ChildCount(); i++ {
		child := argumentsNode.Child(i)
		kind := child.Kind()

		if kind == "(" || kind == ")" {
			continue
		}
		if kind == "," {
			if argCount == 1 {
				argCount++
			}
			continue
		}

		switch argCount {
		case 0:
			name = strings.TrimSpace(text(child, source))
			argCount++
		case 2:
			if fallbackStart == 0 {
				fallbackStart = child.StartByte()
			}
			fallbackEnd = child.EndByte()
		}
	}

	if name == "" {
		return
	}
	if fallbackEnd > fallbackStart {
		fb := strings.TrimSpace(string(source[fallbackStart:fallbackEnd]))
		fallback = &fb
	}

	result.VarCalls = append(result.VarCalls, &VarCall{
		Name:     name,
		Fallback: fallback,
		Range:    nodeRange(node),
	})
}

func text(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

func nodeRange(node *sitter.Node) Range {
	return Range{
		Start: Position{
			Line:      uint32(node.StartPosition().Row),
			Character: uint32(node.StartPosition().Column),
		},
		End: Position{
			Line:      uint32(node.EndPosition().Row),
			Character: uint32(node.EndPosition().Column),
		},
	}
}
