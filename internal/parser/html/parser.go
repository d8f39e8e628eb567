// Package html finds utility candidates in HTML attributes
package html

import (
	"fmt"
	"sync"

	"bennypowers.dev/scrollbar/internal/collections"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

// Parser handles parsing HTML to extract utility attribute regions
type Parser struct {
	parser    *sitter.Parser
	attrQuery *sitter.Query
}

var htmlLang = sitter.NewLanguage(tree_sitter_html.Language())

// parserPool is a pool of reusable HTML parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(htmlLang); err != nil {
			panic(fmt.Sprintf("failed to set HTML language: %v", err))
		}

		attrQuery, qerr := sitter.NewQuery(htmlLang, `
			(attribute
				(attribute_name) @attr_name
				(quoted_attribute_value (attribute_value) @attr_value))
		`)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile attribute query: %v", qerr))
		}

		return &Parser{
			parser:    parser,
			attrQuery: attrQuery,
		}
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
	if p.attrQuery != nil {
		p.attrQuery.Close()
	}
}

// ParseRegions returns the values of class attributes and of attributes
// whose name is in utilityAttrs, in document order
func (p *Parser) ParseRegions(source string, utilityAttrs ...string) []Region {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	utility := collections.NewSet(utilityAttrs...)
	captureNames := p.attrQuery.CaptureNames()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	var regions []Region
	matches := cursor.Matches(p.attrQuery, tree.RootNode(), sourceBytes)
	for match := matches.Next(); match != nil; match = matches.Next() {
		var name string
		var value *sitter.Node
		for _, capture := range match.Captures {
			switch captureNames[capture.Index] {
			case "attr_name":
				name = string(sourceBytes[capture.Node.StartByte():capture.Node.EndByte()])
			case "attr_value":
				node := capture.Node
				value = &node
			}
		}
		if value == nil {
			continue
		}

		var kind RegionType
		switch {
		case name == "class":
			kind = ClassAttribute
		case utility.Has(name):
			kind = UtilityAttribute
		default:
			continue
		}

		regions = append(regions, Region{
			Name:      name,
			Content:   string(sourceBytes[value.StartByte():value.EndByte()]),
			StartLine: value.StartPosition().Row,
			StartCol:  value.StartPosition().Column,
			Type:      kind,
		})
	}

	return regions
}
