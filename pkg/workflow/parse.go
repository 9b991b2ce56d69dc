package workflow

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Parse parses content as YAML and returns the root node of each document.
// Empty documents are skipped.
func Parse(content []byte) ([]Node, error) {
	file, err := parser.ParseBytes(content, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse a file as YAML: %w", err)
	}
	roots := make([]Node, 0, len(file.Docs))
	for _, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		c := &converter{anchors: map[string]Node{}}
		roots = append(roots, c.convert(doc.Body))
	}
	return roots, nil
}

type converter struct {
	anchors map[string]Node
}

func (c *converter) convert(n ast.Node) Node { //nolint:cyclop
	switch v := n.(type) {
	case *ast.MappingNode:
		m := &Mapping{line: line(v)}
		for _, value := range v.Values {
			m.Pairs = append(m.Pairs, c.pair(value))
		}
		return m
	case *ast.MappingValueNode:
		// A document with a single key may be parsed without *ast.MappingNode
		return &Mapping{
			Pairs: []*Pair{c.pair(v)},
			line:  line(v),
		}
	case *ast.SequenceNode:
		s := &Sequence{line: line(v)}
		for _, item := range v.Values {
			s.Items = append(s.Items, c.convert(item))
		}
		return s
	case *ast.AnchorNode:
		node := c.convert(v.Value)
		if name := tokenValue(v.Name); name != "" {
			c.anchors[name] = node
		}
		return node
	case *ast.AliasNode:
		if node, ok := c.anchors[tokenValue(v.Value)]; ok {
			return node
		}
		return &Scalar{Value: "*" + tokenValue(v.Value), line: line(v)}
	case *ast.TagNode:
		return c.convert(v.Value)
	case *ast.NullNode:
		return &Scalar{Null: true, Comment: comment(v), line: line(v)}
	case *ast.StringNode:
		return &Scalar{Value: v.Value, Comment: comment(v), line: line(v)}
	case *ast.LiteralNode:
		s := &Scalar{Comment: comment(v), line: line(v)}
		if v.Value != nil {
			s.Value = v.Value.Value
		}
		return s
	case nil:
		return &Scalar{Null: true}
	default:
		return &Scalar{Value: tokenValue(v), Comment: comment(v), line: line(v)}
	}
}

func (c *converter) pair(mv *ast.MappingValueNode) *Pair {
	p := &Pair{
		Key:     keyString(mv.Key),
		KeyLine: line(mv.Key),
		Value:   c.convert(mv.Value),
	}
	// The trailing comment of `uses: foo@v1 # v1.0.0` may be attached to
	// either the value or the mapping value.
	if s, ok := p.Value.(*Scalar); ok && s.Comment == "" {
		s.Comment = comment(mv)
	}
	return p
}

func keyString(key ast.Node) string {
	switch k := key.(type) {
	case *ast.StringNode:
		return k.Value
	case *ast.MappingKeyNode:
		return keyString(k.Value)
	case nil:
		return ""
	default:
		return tokenValue(k)
	}
}

func line(n ast.Node) int {
	if n == nil {
		return 0
	}
	tk := n.GetToken()
	if tk == nil || tk.Position == nil {
		return 0
	}
	return tk.Position.Line
}

func tokenValue(n ast.Node) string {
	if n == nil {
		return ""
	}
	tk := n.GetToken()
	if tk == nil {
		return ""
	}
	return tk.Value
}

func comment(n ast.Node) string {
	if n == nil {
		return ""
	}
	cg := n.GetComment()
	if cg == nil {
		return ""
	}
	first, _, _ := strings.Cut(cg.String(), "\n")
	return strings.TrimSpace(first)
}
