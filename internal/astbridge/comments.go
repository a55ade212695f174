package astbridge

import (
	"strings"
	"unicode"

	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/frontend"
)

// indexDocs records each doc comment under the offset of the first
// non-space byte after it, which is where the declaration it documents
// starts.
func (c *Converter) indexDocs(unit *frontend.Unit) {
	for _, cm := range unit.Comments {
		if !isDocComment(cm.Text()) {
			continue
		}
		end := cm.EndByte()
		for end < len(unit.Source) && unicode.IsSpace(rune(unit.Source[end])) {
			end++
		}
		c.docs[end] = cm
	}
}

func isDocComment(text string) bool {
	return strings.HasPrefix(text, "/**") && text != "/**/"
}

// javadocFor returns the doc comment immediately preceding n, or nil.
func (c *Converter) javadocFor(n frontend.Node) *ast.Javadoc {
	cm, ok := c.docs[n.StartByte()]
	if !ok || c.used[cm] {
		return nil
	}
	c.used[cm] = true
	return javadoc(cm)
}

// javadoc splits a doc comment into its leading description and one
// TagElement per block tag.
func javadoc(cm frontend.Node) *ast.Javadoc {
	doc := setPos(ast.NewJavadoc(), cm)
	text := strings.TrimSuffix(strings.TrimPrefix(cm.Text(), "/**"), "*/")

	var tag *ast.TagElement
	var lines []string
	flush := func() {
		body := strings.TrimSpace(strings.Join(lines, "\n"))
		lines = nil
		if tag == nil {
			if body == "" {
				return
			}
			tag = setPos(ast.NewTagElement(""), cm)
		}
		if body != "" {
			tag.Fragments().Add(setPos(ast.NewTextElement(body), cm))
		}
		doc.Tags().Add(tag)
		tag = nil
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if strings.HasPrefix(line, "@") {
			flush()
			name, rest, _ := strings.Cut(line, " ")
			tag = setPos(ast.NewTagElement(name), cm)
			line = rest
		}
		lines = append(lines, line)
	}
	flush()
	return doc
}

// comment converts a comment that documents no declaration.
func (c *Converter) comment(cm frontend.Node) ast.Comment {
	text := cm.Text()
	switch {
	case strings.HasPrefix(text, "//"):
		return setPos(ast.NewLineComment(text), cm)
	case isDocComment(text):
		return javadoc(cm)
	}
	return setPos(ast.NewBlockComment(text), cm)
}
