package ast

// Javadoc is a documentation comment made of tags.
type Javadoc struct {
	commentBase
	tags ChildList[*TagElement]
}

// NewJavadoc returns a new Javadoc.
func NewJavadoc() *Javadoc {
	n := &Javadoc{}
	n.pos = unknownPos
	n.tags.init(n, "tags")
	return n
}

func (n *Javadoc) Kind() Kind       { return KindJavadoc }
func (n *Javadoc) Accept(v Visitor) { accept(n, v) }

func (n *Javadoc) Tags() *ChildList[*TagElement] { return &n.tags }

func (n *Javadoc) slots() []slot {
	return []slot{&n.tags}
}

func (n *Javadoc) acceptInner(v Visitor) {
	if v.VisitJavadoc(n) {
		acceptChildren(n, v)
	}
	v.EndVisitJavadoc(n)
}

func (n *Javadoc) Copy() Node {
	c := NewJavadoc()
	copyNode(c, n)
	return c
}

// TagElement is one block or inline tag of a Javadoc comment. The leading
// untagged text of a comment is a TagElement with an empty name.
type TagElement struct {
	nodeBase
	fragments ChildList[Node]
	tagName   string
}

// NewTagElement returns a new TagElement.
func NewTagElement(tagName string) *TagElement {
	n := &TagElement{tagName: tagName}
	n.pos = unknownPos
	n.fragments.init(n, "fragments")
	return n
}

func (n *TagElement) Kind() Kind       { return KindTagElement }
func (n *TagElement) Accept(v Visitor) { accept(n, v) }

func (n *TagElement) Fragments() *ChildList[Node] { return &n.fragments }
func (n *TagElement) TagName() string             { return n.tagName }

func (n *TagElement) SetTagName(tagName string) *TagElement {
	n.tagName = tagName
	return n
}

func (n *TagElement) slots() []slot {
	return []slot{&n.fragments}
}

func (n *TagElement) acceptInner(v Visitor) {
	if v.VisitTagElement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitTagElement(n)
}

func (n *TagElement) Copy() Node {
	c := NewTagElement(n.tagName)
	copyNode(c, n)
	return c
}

// TextElement is a run of plain text inside a tag.
type TextElement struct {
	nodeBase
	text string
}

// NewTextElement returns a new TextElement.
func NewTextElement(text string) *TextElement {
	n := &TextElement{text: text}
	n.pos = unknownPos
	return n
}

func (n *TextElement) Kind() Kind       { return KindTextElement }
func (n *TextElement) Accept(v Visitor) { accept(n, v) }
func (n *TextElement) slots() []slot    { return nil }

func (n *TextElement) Text() string { return n.text }

func (n *TextElement) SetText(text string) *TextElement {
	n.text = text
	return n
}

func (n *TextElement) acceptInner(v Visitor) {
	v.VisitTextElement(n)
	v.EndVisitTextElement(n)
}

func (n *TextElement) Copy() Node {
	c := NewTextElement(n.text)
	copyNode(c, n)
	return c
}

// BlockComment is a /* */ comment.
type BlockComment struct {
	commentBase
	text string
}

// NewBlockComment returns a new BlockComment.
func NewBlockComment(text string) *BlockComment {
	n := &BlockComment{text: text}
	n.pos = unknownPos
	return n
}

func (n *BlockComment) Kind() Kind       { return KindBlockComment }
func (n *BlockComment) Accept(v Visitor) { accept(n, v) }
func (n *BlockComment) slots() []slot    { return nil }

func (n *BlockComment) Text() string { return n.text }

func (n *BlockComment) acceptInner(v Visitor) {
	v.VisitBlockComment(n)
	v.EndVisitBlockComment(n)
}

func (n *BlockComment) Copy() Node {
	c := NewBlockComment(n.text)
	copyNode(c, n)
	return c
}

// LineComment is a // comment.
type LineComment struct {
	commentBase
	text string
}

// NewLineComment returns a new LineComment.
func NewLineComment(text string) *LineComment {
	n := &LineComment{text: text}
	n.pos = unknownPos
	return n
}

func (n *LineComment) Kind() Kind       { return KindLineComment }
func (n *LineComment) Accept(v Visitor) { accept(n, v) }
func (n *LineComment) slots() []slot    { return nil }

func (n *LineComment) Text() string { return n.text }

func (n *LineComment) acceptInner(v Visitor) {
	v.VisitLineComment(n)
	v.EndVisitLineComment(n)
}

func (n *LineComment) Copy() Node {
	c := NewLineComment(n.text)
	copyNode(c, n)
	return c
}
