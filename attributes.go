package htmlwriter

import (
	"fmt"
	"strings"
)

// booleanAttrs lists the attribute names that carry boolean values.
// Every other attribute name is string-typed.
var booleanAttrs = map[string]bool{
	"checked":  true,
	"disabled": true,
}

// attribute is a single name/value pair. Boolean-typed names use flag,
// string-typed names use val.
type attribute struct {
	name string
	val  string
	flag bool
}

// Attributes is an ordered attribute store for one node. Names map to
// string values, except the boolean-typed names listed in booleanAttrs.
// Insertion order is preserved and used when attributes are rendered.
//
// The zero value is an empty store ready to use.
type Attributes struct {
	list []attribute
}

func (a *Attributes) index(name string) int {
	for i := range a.list {
		if a.list[i].name == name {
			return i
		}
	}
	return -1
}

// Get returns the value of a string-typed attribute. The second return
// value reports whether the attribute is set. Boolean-typed names are
// never reported here; use GetBool.
func (a *Attributes) Get(name string) (string, bool) {
	if booleanAttrs[name] {
		return "", false
	}
	if i := a.index(name); i >= 0 {
		return a.list[i].val, true
	}
	return "", false
}

// Set sets a string-typed attribute. Setting a boolean-typed name fails
// with ErrAttributeType. Setting the empty string removes the attribute.
func (a *Attributes) Set(name, value string) error {
	if booleanAttrs[name] {
		return fmt.Errorf("%w: attribute %q expects a boolean value", ErrAttributeType, name)
	}
	if value == "" {
		a.remove(name)
		return nil
	}
	if name == "class" {
		// Class tokens are normalized to single-space separation.
		value = strings.Join(strings.Fields(value), " ")
	}
	if i := a.index(name); i >= 0 {
		a.list[i].val = value
		return nil
	}
	a.list = append(a.list, attribute{name: name, val: value})
	return nil
}

// GetBool returns the value of a boolean-typed attribute. Unset
// boolean-typed names and all string-typed names report false.
func (a *Attributes) GetBool(name string) bool {
	if !booleanAttrs[name] {
		return false
	}
	if i := a.index(name); i >= 0 {
		return a.list[i].flag
	}
	return false
}

// SetBool sets a boolean-typed attribute. Setting a string-typed name
// fails with ErrAttributeType.
func (a *Attributes) SetBool(name string, value bool) error {
	if !booleanAttrs[name] {
		return fmt.Errorf("%w: attribute %q expects a string value", ErrAttributeType, name)
	}
	if i := a.index(name); i >= 0 {
		a.list[i].flag = value
		return nil
	}
	a.list = append(a.list, attribute{name: name, flag: value})
	return nil
}

func (a *Attributes) remove(name string) {
	if i := a.index(name); i >= 0 {
		a.list = append(a.list[:i], a.list[i+1:]...)
	}
}

// Classes returns the class attribute as an ordered token list. An unset
// class attribute yields an empty list.
func (a *Attributes) Classes() []string {
	val, ok := a.Get("class")
	if !ok {
		return nil
	}
	return strings.Fields(val)
}

// SetClasses replaces the full class token list. An empty list removes
// the class attribute.
func (a *Attributes) SetClasses(tokens []string) {
	// Set never fails for "class"; it is string-typed.
	_ = a.Set("class", strings.Join(tokens, " "))
}

// AddClass appends a class token unless it is already present.
func (a *Attributes) AddClass(token string) {
	tokens := a.Classes()
	for _, t := range tokens {
		if t == token {
			return
		}
	}
	a.SetClasses(append(tokens, token))
}

// RemoveClass removes a class token. Absent tokens are a no-op.
func (a *Attributes) RemoveClass(token string) {
	tokens := a.Classes()
	for i, t := range tokens {
		if t == token {
			a.SetClasses(append(tokens[:i], tokens[i+1:]...))
			return
		}
	}
}

// Len returns the number of set attributes.
func (a *Attributes) Len() int {
	return len(a.list)
}
