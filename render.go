package htmlwriter

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/cybergodev/htmlwriter/internal"
)

// Default render settings.
const (
	DefaultIndent    = "    " // 4 spaces
	DefaultLineLimit = 185
)

// Doctype prologues emitted per Doctype value.
const (
	doctypeHTML5 = "<!DOCTYPE html>"
	doctypeHTML4 = `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`
	doctypeXHTML = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd">`
)

// RenderConfig configures HTML serialization.
type RenderConfig struct {
	// Indent is the string repeated once per nesting level.
	Indent string

	// LineLimit is the character budget for a rendered line, including
	// its indentation. Single-line forms are used only when they fit the
	// budget; text content is wrapped against it. Tag lines that cannot
	// be split may exceed it.
	LineLimit int

	// Charset selects the output encoding. Empty means UTF-8. Characters
	// not representable in the charset are replaced with '?'.
	Charset string
}

// DefaultRenderConfig returns default render configuration.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Indent:    DefaultIndent,
		LineLimit: DefaultLineLimit,
	}
}

func validateRenderConfig(c RenderConfig) error {
	if c.LineLimit <= 0 {
		return fmt.Errorf("%w: LineLimit must be positive", ErrInvalidConfig)
	}
	if _, ok := internal.LookupEncoder(c.Charset); !ok {
		return fmt.Errorf("%w: unsupported charset %q", ErrInvalidConfig, c.Charset)
	}
	return nil
}

// Render serializes the document as formatted HTML text and writes it to
// w in the configured charset.
func (d *Document) Render(w io.Writer, cfg RenderConfig) error {
	if err := validateRenderConfig(cfg); err != nil {
		return err
	}
	p := &printer{
		indent:  cfg.Indent,
		indentW: utf8.RuneCountInString(cfg.Indent),
		limit:   cfg.LineLimit,
	}
	p.document(d)

	enc, _ := internal.LookupEncoder(cfg.Charset)
	data, err := enc.Encode(p.sb.String())
	if err != nil {
		return fmt.Errorf("htmlwriter: encode output: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("htmlwriter: write output: %w", err)
	}
	return nil
}

// RenderString serializes the document with the given configuration and
// returns the result as a string. The returned string is always UTF-8;
// the Charset setting only affects Render and WriteFile.
func (d *Document) RenderString(cfg RenderConfig) (string, error) {
	if err := validateRenderConfig(cfg); err != nil {
		return "", err
	}
	p := &printer{
		indent:  cfg.Indent,
		indentW: utf8.RuneCountInString(cfg.Indent),
		limit:   cfg.LineLimit,
	}
	p.document(d)
	return p.sb.String(), nil
}

// printer accumulates output lines, threading the indentation depth
// through the recursive walk.
type printer struct {
	sb      strings.Builder
	indent  string
	indentW int
	limit   int
}

// line emits s on its own line at the given depth.
func (p *printer) line(depth int, s string) {
	for i := 0; i < depth; i++ {
		p.sb.WriteString(p.indent)
	}
	p.sb.WriteString(s)
	p.sb.WriteByte('\n')
}

// fits reports whether s plus its indentation stays within the line
// budget. Every single-line decision measures the full line, indent
// included.
func (p *printer) fits(depth int, s string) bool {
	return depth*p.indentW+utf8.RuneCountInString(s) <= p.limit
}

// block emits pre-formatted multi-line content (inline CSS or JS),
// indenting each of its lines to the given depth.
func (p *printer) block(depth int, content string) {
	for _, l := range strings.Split(strings.Trim(content, "\n"), "\n") {
		p.line(depth, l)
	}
}

func (p *printer) document(d *Document) {
	switch d.doctype {
	case HTML4:
		p.line(0, doctypeHTML4)
	case XHTML:
		p.line(0, doctypeXHTML)
	default:
		p.line(0, doctypeHTML5)
	}
	p.line(0, "<html>")

	p.line(1, "<head>")
	p.line(2, "<title>"+html.EscapeString(d.title)+"</title>")
	for _, meta := range d.metadata {
		var tag strings.Builder
		tag.WriteString("<meta")
		for _, attr := range meta {
			tag.WriteString(" " + attr.Name + `="` + html.EscapeString(attr.Value) + `"`)
		}
		tag.WriteString(">")
		p.line(2, tag.String())
	}
	for _, css := range d.css {
		p.line(2, `<link rel="stylesheet" href="`+html.EscapeString(css)+`">`)
	}
	if d.internalCSS != "" {
		p.line(2, "<style>")
		p.block(3, d.internalCSS)
		p.line(2, "</style>")
	}
	for _, js := range d.externalJS {
		p.line(2, `<script src="`+html.EscapeString(js)+`"></script>`)
	}
	if d.js != "" {
		p.line(2, "<script>")
		p.block(3, d.js)
		p.line(2, "</script>")
	}
	p.line(1, "</head>")

	p.line(1, "<body>")
	for _, n := range d.body {
		p.node(2, n)
	}
	p.line(1, "</body>")
	p.line(0, "</html>")
}

// node renders one node at the given depth. Every tag begins a new line
// unless absorbed by the anchor-inlining rule.
func (p *printer) node(depth int, n *Node) {
	switch n.kind {
	case Contentless:
		p.line(depth, selfClosingTag(n))

	case Text:
		text := html.EscapeString(n.text)
		closing := "</" + n.tagName + ">"
		if inline := openTag(n) + text + closing; p.fits(depth, inline) {
			p.line(depth, inline)
			return
		}
		p.line(depth, openTag(n))
		for _, l := range internal.Wrap(text, p.limit-(depth+1)*p.indentW) {
			p.line(depth+1, l)
		}
		p.line(depth, closing)

	case Tree:
		if inline, ok := p.inlineAnchor(depth, n); ok {
			p.line(depth, inline)
			return
		}
		p.line(depth, openTag(n))
		for _, c := range n.children {
			p.node(depth+1, c)
		}
		p.line(depth, "</"+n.tagName+">")
	}
}

// inlineAnchor collapses an <a> tag with exactly one child onto a single
// line when the combined form fits the budget at the current depth. The
// rule applies to no other tag and never recurses: only children that
// themselves render on one line without recursion qualify.
func (p *printer) inlineAnchor(depth int, n *Node) (string, bool) {
	if n.tagName != "a" || len(n.children) != 1 {
		return "", false
	}
	child, ok := inlineForm(n.children[0])
	if !ok {
		return "", false
	}
	combined := openTag(n) + child + "</a>"
	if !p.fits(depth, combined) {
		return "", false
	}
	return combined, true
}

// inlineForm renders a node on one line without recursing into nested
// children. Tree nodes with children do not qualify.
func inlineForm(n *Node) (string, bool) {
	switch n.kind {
	case Contentless:
		return selfClosingTag(n), true
	case Text:
		return openTag(n) + html.EscapeString(n.text) + "</" + n.tagName + ">", true
	case Tree:
		if len(n.children) == 0 {
			return openTag(n) + "</" + n.tagName + ">", true
		}
	}
	return "", false
}

func openTag(n *Node) string {
	return "<" + n.tagName + attrString(&n.attrs) + ">"
}

func selfClosingTag(n *Node) string {
	return "<" + n.tagName + attrString(&n.attrs) + "/>"
}

// attrString renders attributes in insertion order. String-typed
// attributes render as name="value" with the value escaped; boolean-typed
// attributes render as the bare name when true and are omitted when
// false.
func attrString(a *Attributes) string {
	var sb strings.Builder
	for _, attr := range a.list {
		if booleanAttrs[attr.name] {
			if attr.flag {
				sb.WriteString(" " + attr.name)
			}
			continue
		}
		sb.WriteString(" " + attr.name + `="` + html.EscapeString(attr.val) + `"`)
	}
	return sb.String()
}
