package frontend

// SyntaxNode is a materialized syntax tree node. Front ends copy their
// parser's tree into SyntaxNodes so the tree outlives the parser and node
// identity is stable for Oracle lookups. Tests build them by hand.
type SyntaxNode struct {
	kind     string
	text     string
	start    int
	end      int
	line     int
	named    bool
	children []*SyntaxNode
	fields   []string
}

// NewSyntaxNode returns a named node.
func NewSyntaxNode(kind, text string) *SyntaxNode {
	return &SyntaxNode{kind: kind, text: text, named: true, line: 1, end: len(text)}
}

// NewToken returns an anonymous node whose kind is its text.
func NewToken(text string) *SyntaxNode {
	return &SyntaxNode{kind: text, text: text, line: 1, end: len(text)}
}

// SetSpan records the byte range and line of the node.
func (n *SyntaxNode) SetSpan(start, end, line int) *SyntaxNode {
	n.start, n.end, n.line = start, end, line
	return n
}

// SetNamed marks the node as named or anonymous.
func (n *SyntaxNode) SetNamed(named bool) *SyntaxNode {
	n.named = named
	return n
}

// Append adds a child under field; an empty field means the child has none.
func (n *SyntaxNode) Append(field string, child *SyntaxNode) *SyntaxNode {
	n.children = append(n.children, child)
	n.fields = append(n.fields, field)
	return n
}

// Add appends unfielded children.
func (n *SyntaxNode) Add(children ...*SyntaxNode) *SyntaxNode {
	for _, c := range children {
		n.Append("", c)
	}
	return n
}

func (n *SyntaxNode) Kind() string   { return n.kind }
func (n *SyntaxNode) StartByte() int { return n.start }
func (n *SyntaxNode) EndByte() int   { return n.end }
func (n *SyntaxNode) Line() int      { return n.line }
func (n *SyntaxNode) Text() string   { return n.text }
func (n *SyntaxNode) IsNamed() bool  { return n.named }

func (n *SyntaxNode) Field(name string) Node {
	for i, f := range n.fields {
		if f == name {
			return n.children[i]
		}
	}
	return nil
}

func (n *SyntaxNode) Fields(name string) []Node {
	var out []Node
	for i, f := range n.fields {
		if f == name {
			out = append(out, n.children[i])
		}
	}
	return out
}

func (n *SyntaxNode) Children() []Node {
	out := make([]Node, 0, len(n.children))
	for _, c := range n.children {
		if c.named {
			out = append(out, c)
		}
	}
	return out
}

func (n *SyntaxNode) Tokens() []string {
	var out []string
	for _, c := range n.children {
		if !c.named {
			out = append(out, c.text)
		}
	}
	return out
}

// Walk calls fn for n and every descendant in pre-order. Returning false
// from fn skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}
