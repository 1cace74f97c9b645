package brief

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// ContainsMarker reports whether content contains marker, ignoring case.
func ContainsMarker(content, marker string) bool {
	return strings.Contains(strings.ToLower(content), strings.ToLower(marker))
}

// FirstHeading returns the plain text of the first heading in a markdown
// document. A leading YAML frontmatter block is ignored.
func FirstHeading(content []byte) string {
	source := stripFrontmatter(content)
	doc := markdown.Parser().Parse(text.NewReader(source))

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok {
			title = strings.TrimSpace(inlineText(heading, source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

// inlineText concatenates the text segments below n, including those nested
// in emphasis, links and code spans.
func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(source))
			if node.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(node.Value)
		default:
			buf.WriteString(inlineText(c, source))
		}
	}
	return buf.String()
}

// stripFrontmatter drops a leading "---" delimited block. Without it goldmark
// reads the closing delimiter as a setext heading underline.
func stripFrontmatter(content []byte) []byte {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) < 3 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return content
	}
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			return bytes.Join(lines[i+1:], []byte("\n"))
		}
	}

	// No closing delimiter
	return content
}
