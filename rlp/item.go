// Package rlp implements the encoding side of the recursive length prefix format: a canonical, self-delimiting
// byte encoding of nested byte strings and lists.
package rlp

// Item is a node of an RLP tree, either a String or a List. No other implementations exist.
type Item interface {
	item()
}

// String is a byte string, possibly empty.
type String []byte

// List is an ordered list of items, possibly empty.
type List []Item

func (String) item() {}
func (List) item()   {}

// Strings returns the list of the given strings.
func Strings(values ...string) List {
	l := make(List, len(values))
	for i, v := range values {
		l[i] = String(v)
	}
	return l
}
