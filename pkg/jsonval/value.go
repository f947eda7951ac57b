// Package jsonval defines a generic JSON value representation and a decoder
// that preserves object member insertion order and number literals.
//
// The standard library's map-based decoding loses the order of object keys,
// which matters when the output mirrors the document's layout. Values here
// form a closed union over the six JSON kinds; consumers dispatch with an
// exhaustive type switch.
package jsonval

// Value is one parsed JSON value. The concrete types are Null, Bool, Number,
// String, Array, and Object; no other type implements it.
type Value interface {
	isValue()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON true or false literal.
type Bool bool

// Number holds a JSON number as its literal decimal text.
type Number string

// String is a JSON string with escapes resolved.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Member is one key/value entry of an object.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered sequence of members, in document order.
type Object []Member

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}
