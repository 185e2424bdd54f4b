package htmlwriter

import "fmt"

// Doctype selects the document type prologue emitted when rendering.
type Doctype int

const (
	// HTML5 emits the short HTML5 doctype.
	HTML5 Doctype = iota
	// HTML4 emits the HTML 4.01 Transitional DTD.
	HTML4
	// XHTML emits the XHTML 1.1 DTD.
	XHTML
)

// MetaAttr is one attribute of a <meta> tag.
type MetaAttr struct {
	Name  string
	Value string
}

// Meta describes one <meta> tag as an ordered attribute list. Attribute
// order is preserved through rendering.
type Meta []MetaAttr

// Document is a complete HTML page: head-level data plus an ordered
// top-level node list forming the body. Nodes in the body are exclusively
// owned by the document.
type Document struct {
	title       string
	doctype     Doctype
	metadata    []Meta
	internalCSS string
	css         []string
	body        []*Node
	js          string
	externalJS  []string
}

// NewDocument creates a document titled title with an HTML5 doctype and a
// single charset=utf-8 meta tag.
func NewDocument(title string) *Document {
	return &Document{
		title:    title,
		doctype:  HTML5,
		metadata: []Meta{{{Name: "charset", Value: "utf-8"}}},
	}
}

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// SetTitle replaces the document title.
func (d *Document) SetTitle(title string) { d.title = title }

// Doctype returns the document's doctype.
func (d *Document) Doctype() Doctype { return d.doctype }

// SetDoctype replaces the document's doctype.
func (d *Document) SetDoctype(t Doctype) { d.doctype = t }

// Metadata returns the ordered list of meta tags.
func (d *Document) Metadata() []Meta { return d.metadata }

// AddMetadata appends a new meta tag.
func (d *Document) AddMetadata(meta Meta) {
	d.metadata = append(d.metadata, meta)
}

// RemoveMetadata deletes the name/value pair from whichever meta tag
// contains it. A meta tag left without attributes is dropped entirely.
// No matching pair is a no-op.
func (d *Document) RemoveMetadata(name, value string) {
	for i, meta := range d.metadata {
		for j, attr := range meta {
			if attr.Name == name && attr.Value == value {
				meta = append(meta[:j], meta[j+1:]...)
				if len(meta) == 0 {
					d.metadata = append(d.metadata[:i], d.metadata[i+1:]...)
				} else {
					d.metadata[i] = meta
				}
				return
			}
		}
	}
}

// SetInternalCSS sets the inline stylesheet. It is emitted as a <style>
// block only when non-empty.
func (d *Document) SetInternalCSS(css string) { d.internalCSS = css }

// InternalCSS returns the inline stylesheet.
func (d *Document) InternalCSS() string { return d.internalCSS }

// AddCSSFile appends a linked stylesheet path.
func (d *Document) AddCSSFile(path string) {
	d.css = append(d.css, path)
}

// RemoveCSSFile removes a linked stylesheet path. Fails with ErrWriter if
// the path was never added.
func (d *Document) RemoveCSSFile(path string) error {
	list, err := removeFile(d.css, path, "stylesheet")
	if err != nil {
		return err
	}
	d.css = list
	return nil
}

// CSSFiles returns the ordered linked stylesheet paths.
func (d *Document) CSSFiles() []string { return d.css }

// SetScript sets the inline script. It is emitted as a <script> block
// only when non-empty.
func (d *Document) SetScript(js string) { d.js = js }

// Script returns the inline script.
func (d *Document) Script() string { return d.js }

// AddScriptFile appends a linked script path.
func (d *Document) AddScriptFile(path string) {
	d.externalJS = append(d.externalJS, path)
}

// RemoveScriptFile removes a linked script path. Fails with ErrWriter if
// the path was never added.
func (d *Document) RemoveScriptFile(path string) error {
	list, err := removeFile(d.externalJS, path, "script")
	if err != nil {
		return err
	}
	d.externalJS = list
	return nil
}

// ScriptFiles returns the ordered linked script paths.
func (d *Document) ScriptFiles() []string { return d.externalJS }

func removeFile(list []string, path, kind string) ([]string, error) {
	for i, f := range list {
		if f == path {
			return append(list[:i], list[i+1:]...), nil
		}
	}
	return list, fmt.Errorf("%w: %s %q is not linked", ErrWriter, kind, path)
}

// Body returns the document's top-level node list.
//
// The returned slice is a read-only view: mutate the body through
// InsertBefore, AppendChild and RemoveChild instead.
func (d *Document) Body() []*Node { return d.body }

// GetByID returns the first node in the body tree whose id attribute
// equals id, in pre-order depth-first order, or nil.
func (d *Document) GetByID(id string) *Node {
	return findByID(d.body, id)
}

// GetByClassName returns every node in the body tree whose class token
// list contains name, in traversal order.
func (d *Document) GetByClassName(name string) []*Node {
	return collect(d.body, func(m *Node) bool { return m.hasClass(name) }, nil)
}

// GetByTagName returns every node in the body tree whose tag name equals
// name, in traversal order.
func (d *Document) GetByTagName(name string) []*Node {
	return collect(d.body, func(m *Node) bool { return m.tagName == name }, nil)
}

// InsertBefore inserts insert immediately preceding before, which must be
// a top-level node of the body. Fails with ErrNotChild otherwise.
// Ownership of insert transfers to the document.
func (d *Document) InsertBefore(before, insert *Node) error {
	body, err := spliceBefore(d.body, before, insert)
	if err != nil {
		return err
	}
	d.body = body
	return nil
}

// AppendChild appends node to the end of the body. Ownership of node
// transfers to the document.
func (d *Document) AppendChild(node *Node) {
	d.body = append(d.body, node)
}

// RemoveChild removes node from the body, preserving the order of the
// remaining nodes. Fails with ErrNotChild when node is not a top-level
// node of the body.
func (d *Document) RemoveChild(node *Node) error {
	body, err := spliceOut(d.body, node)
	if err != nil {
		return err
	}
	d.body = body
	return nil
}
