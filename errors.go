package htmlwriter

import "errors"

// Error definitions for the `cybergodev/htmlwriter` package.
var (
	// ErrWriter is returned for general misuse of the document API,
	// such as removing a linked file that was never added.
	ErrWriter = errors.New("htmlwriter: invalid operation")

	// ErrNodeKind is returned when a tree-only operation is invoked on a
	// text or contentless node.
	ErrNodeKind = errors.New("htmlwriter: wrong node kind")

	// ErrNotChild is returned when a referenced node is not a member of
	// the tree being edited.
	ErrNotChild = errors.New("htmlwriter: node is not a child")

	// ErrAttributeType is returned when an attribute value of the wrong
	// type is supplied for a boolean-typed or string-typed attribute.
	ErrAttributeType = errors.New("htmlwriter: attribute type mismatch")

	// ErrInvalidConfig is returned when render configuration validation fails.
	ErrInvalidConfig = errors.New("htmlwriter: invalid config")
)
