// Package javats is a Java front end built on tree-sitter. Parse copies the
// concrete syntax tree into frontend.SyntaxNodes and resolves names, types
// and literal constants into a frontend.MapOracle.
//
// Resolution is deliberately local: it knows the types declared in the
// file, single-type imports, the preloaded java.lang types and whatever the
// binding.Universe already holds. Anything else resolves to an error type.
package javats

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/frontend"
)

var (
	// ErrSyntax is returned when the source does not parse cleanly.
	ErrSyntax = errors.New("syntax error")
	// ErrInvalidContent is returned for sources that are not valid UTF-8.
	ErrInvalidContent = errors.New("invalid content")
)

// SyntaxError locates the first parse error of a file.
type SyntaxError struct {
	Path   string
	Line   int
	Column int
	Near   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error near %q", e.Path, e.Line, e.Column, e.Near)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Parse parses one Java source file into a resolved frontend.Unit with a
// fresh binding.Universe.
func Parse(ctx context.Context, path string, src []byte) (*frontend.Unit, error) {
	return ParseWith(ctx, binding.NewUniverse(), path, src)
}

// ParseWith is Parse with a caller-provided universe. A universe must not be
// shared by concurrent parses.
func ParseWith(ctx context.Context, u *binding.Universe, path string, src []byte) (*frontend.Unit, error) {
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%s: %w: content is not valid UTF-8", path, ErrInvalidContent)
	}

	// A parser per call keeps Parse safe for concurrent use.
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: tree-sitter parse failed: %w", path, err)
	}
	defer tree.Close()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: parse canceled: %w", path, err)
	}

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("%s: tree-sitter returned no root node", path)
	}
	if root.HasError() {
		return nil, syntaxError(path, root, src)
	}

	m := &mirror{src: src}
	cursor := sitter.NewTreeCursor(root)
	defer cursor.Close()
	program := m.copy(cursor)

	oracle := frontend.NewMapOracle()
	newResolver(u, oracle).resolveProgram(program)

	return &frontend.Unit{
		Path:     path,
		Source:   string(src),
		Root:     program,
		Comments: m.comments,
		Oracle:   oracle,
		Universe: u,
	}, nil
}

// syntaxError reports the first ERROR or missing node in source order.
func syntaxError(path string, root *sitter.Node, src []byte) error {
	bad := firstError(root)
	if bad == nil {
		bad = root
	}
	p := bad.StartPoint()
	near := bad.Content(src)
	if bad.IsMissing() {
		near = bad.Type()
	}
	if len(near) > 20 {
		near = near[:20]
	}
	return &SyntaxError{Path: path, Line: int(p.Row) + 1, Column: int(p.Column) + 1, Near: near}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

// mirror copies a tree-sitter tree into SyntaxNodes, diverting comments.
type mirror struct {
	src      []byte
	comments []frontend.Node
}

func (m *mirror) node(n *sitter.Node) *frontend.SyntaxNode {
	out := frontend.NewSyntaxNode(n.Type(), n.Content(m.src))
	out.SetSpan(int(n.StartByte()), int(n.EndByte()), int(n.StartPoint().Row)+1)
	return out.SetNamed(n.IsNamed())
}

func (m *mirror) copy(c *sitter.TreeCursor) *frontend.SyntaxNode {
	out := m.node(c.CurrentNode())
	if !c.GoToFirstChild() {
		return out
	}
	for {
		field := c.CurrentFieldName()
		child := c.CurrentNode()
		switch child.Type() {
		case "line_comment", "block_comment":
			m.comments = append(m.comments, m.node(child))
		default:
			out.Append(field, m.copy(c))
		}
		if !c.GoToNextSibling() {
			break
		}
	}
	c.GoToParent()
	return out
}
