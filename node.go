// Package htmlwriter builds in-memory HTML documents and renders them as
// formatted HTML text. Pages are assembled programmatically from typed
// nodes instead of hand-written markup strings; a configurable serializer
// decides line breaks, indentation and wrapping on output.
//
// Tag names and attributes are accepted uninterpreted: the package performs
// no HTML validity checking.
package htmlwriter

import "fmt"

// NodeKind identifies which content variant a node holds.
type NodeKind int

const (
	// Contentless nodes hold no content and render as one self-closing tag.
	Contentless NodeKind = iota + 1
	// Text nodes hold a string.
	Text
	// Tree nodes hold an ordered list of child nodes.
	Tree
)

// String returns an error message-friendly name for the kind.
func (k NodeKind) String() string {
	switch k {
	case Contentless:
		return "contentless"
	case Text:
		return "text"
	case Tree:
		return "tree"
	default:
		return "invalid"
	}
}

// selfClosingTags lists the tag names that default to contentless nodes.
// The set is fixed and not user-extensible.
var selfClosingTags = map[string]bool{
	"img":   true,
	"br":    true,
	"hr":    true,
	"input": true,
}

// Node is a single HTML tag. A node owns its attributes and exactly one
// content variant, selected by its NodeKind: contentless nodes hold
// nothing, text nodes hold a string, tree nodes hold an ordered child
// list. Children are exclusively owned; a node must appear in at most one
// owning collection at a time.
type Node struct {
	tagName  string
	attrs    Attributes
	kind     NodeKind
	text     string
	children []*Node
}

// NewNode creates a node for tag. Tags in the self-closing set
// (img, br, hr, input) become contentless nodes; every other tag becomes
// a tree node with an empty child list. The tag name must be non-empty
// and is immutable after construction.
func NewNode(tag string) *Node {
	if selfClosingTags[tag] {
		return &Node{tagName: tag, kind: Contentless}
	}
	return &Node{tagName: tag, kind: Tree}
}

// NewTextNode creates a text node for tag holding text.
func NewTextNode(tag, text string) *Node {
	return &Node{tagName: tag, kind: Text, text: text}
}

// NewTreeNode creates a tree node for tag with the given children,
// regardless of tag name. Ownership of the children transfers to the new
// node.
func NewTreeNode(tag string, children ...*Node) *Node {
	return &Node{tagName: tag, kind: Tree, children: children}
}

// NewVoidNode creates a contentless node for tag, regardless of whether
// the tag is in the self-closing set.
func NewVoidNode(tag string) *Node {
	return &Node{tagName: tag, kind: Contentless}
}

// TagName returns the node's tag name.
func (n *Node) TagName() string { return n.tagName }

// Kind returns the node's content kind.
func (n *Node) Kind() NodeKind { return n.kind }

// Attributes returns the node's attribute store.
func (n *Node) Attributes() *Attributes { return &n.attrs }

// Attr returns the value of a string-typed attribute and whether it is set.
func (n *Node) Attr(name string) (string, bool) { return n.attrs.Get(name) }

// SetAttr sets a string-typed attribute. See Attributes.Set.
func (n *Node) SetAttr(name, value string) error { return n.attrs.Set(name, value) }

// BoolAttr returns the value of a boolean-typed attribute.
func (n *Node) BoolAttr(name string) bool { return n.attrs.GetBool(name) }

// SetBoolAttr sets a boolean-typed attribute. See Attributes.SetBool.
func (n *Node) SetBoolAttr(name string, value bool) error { return n.attrs.SetBool(name, value) }

// Classes returns the node's class tokens in order.
func (n *Node) Classes() []string { return n.attrs.Classes() }

// SetClasses replaces the node's class token list.
func (n *Node) SetClasses(tokens []string) { n.attrs.SetClasses(tokens) }

// AddClass appends a class token unless already present.
func (n *Node) AddClass(token string) { n.attrs.AddClass(token) }

// RemoveClass removes a class token if present.
func (n *Node) RemoveClass(token string) { n.attrs.RemoveClass(token) }

// ID returns the node's id attribute, or "" if unset.
func (n *Node) ID() string {
	id, _ := n.attrs.Get("id")
	return id
}

// SetID sets the node's id attribute.
func (n *Node) SetID(id string) error { return n.attrs.Set("id", id) }

// Href returns the node's href attribute, or "" if unset.
func (n *Node) Href() string {
	href, _ := n.attrs.Get("href")
	return href
}

// SetHref sets the node's href attribute.
func (n *Node) SetHref(href string) error { return n.attrs.Set("href", href) }

// Src returns the node's src attribute, or "" if unset.
func (n *Node) Src() string {
	src, _ := n.attrs.Get("src")
	return src
}

// SetSrc sets the node's src attribute.
func (n *Node) SetSrc(src string) error { return n.attrs.Set("src", src) }

// TextContent returns the node's text content. Text nodes report their
// string; tree nodes with no children report "". Tree nodes with children
// and contentless nodes have no text content and report ok == false.
func (n *Node) TextContent() (string, bool) {
	switch n.kind {
	case Text:
		return n.text, true
	case Tree:
		if len(n.children) == 0 {
			return "", true
		}
		return "", false
	default:
		return "", false
	}
}

// SetTextContent replaces the node's content with text, converting the
// node to a text node. Any previous children are discarded. Conversion is
// permitted from every kind, including contentless nodes.
func (n *Node) SetTextContent(text string) {
	n.kind = Text
	n.text = text
	n.children = nil
}

// ChildNodes returns the node's ordered child list. Tree nodes report
// their children; text nodes holding the empty string report an empty
// list. Text nodes with content and contentless nodes have no children
// and report ok == false.
//
// The returned slice is a read-only view: mutate the tree through
// InsertBefore, AppendChild and RemoveChild instead.
func (n *Node) ChildNodes() ([]*Node, bool) {
	switch n.kind {
	case Tree:
		return n.children, true
	case Text:
		if n.text == "" {
			return []*Node{}, true
		}
		return nil, false
	default:
		return nil, false
	}
}

// GetByID returns the first descendant whose id attribute equals id, in
// pre-order depth-first order. The node itself is excluded from the
// search. Returns nil when no descendant matches or when the node is not
// a tree node.
func (n *Node) GetByID(id string) *Node {
	if n.kind != Tree {
		return nil
	}
	return findByID(n.children, id)
}

// GetByClassName returns every descendant whose class token list contains
// name, in traversal order. Non-tree nodes yield no matches.
func (n *Node) GetByClassName(name string) []*Node {
	if n.kind != Tree {
		return nil
	}
	return collect(n.children, func(m *Node) bool { return m.hasClass(name) }, nil)
}

// GetByTagName returns every descendant whose tag name equals name, in
// traversal order. Non-tree nodes yield no matches.
func (n *Node) GetByTagName(name string) []*Node {
	if n.kind != Tree {
		return nil
	}
	return collect(n.children, func(m *Node) bool { return m.tagName == name }, nil)
}

func (n *Node) hasClass(name string) bool {
	for _, t := range n.attrs.Classes() {
		if t == name {
			return true
		}
	}
	return false
}

// InsertBefore inserts insert immediately preceding before, which must be
// a direct child of n. Fails with ErrNodeKind on non-tree nodes and with
// ErrNotChild when before is not a child. Ownership of insert transfers
// to n.
func (n *Node) InsertBefore(before, insert *Node) error {
	if n.kind != Tree {
		return fmt.Errorf("%w: cannot insert into a %s node", ErrNodeKind, n.kind)
	}
	children, err := spliceBefore(n.children, before, insert)
	if err != nil {
		return err
	}
	n.children = children
	return nil
}

// AppendChild appends child to the end of the child list. Fails with
// ErrNodeKind on non-tree nodes. Ownership of child transfers to n.
func (n *Node) AppendChild(child *Node) error {
	if n.kind != Tree {
		return fmt.Errorf("%w: cannot append to a %s node", ErrNodeKind, n.kind)
	}
	n.children = append(n.children, child)
	return nil
}

// RemoveChild removes child from the child list, preserving the order of
// the remaining children. Fails with ErrNodeKind on non-tree nodes and
// with ErrNotChild when child is not a direct child.
func (n *Node) RemoveChild(child *Node) error {
	if n.kind != Tree {
		return fmt.Errorf("%w: cannot remove from a %s node", ErrNodeKind, n.kind)
	}
	children, err := spliceOut(n.children, child)
	if err != nil {
		return err
	}
	n.children = children
	return nil
}
