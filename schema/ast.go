// Package schema implements the compiler front-end for the databuf
// schema-definition language: binary-serializable record types declared as
// flat tables with numbered fields, nested objects, repeated values, and
// timeseries fields. Parsing produces an abstract syntax tree; code
// generation and storage bindings are downstream consumers of that tree.
package schema

// Scalar is one of the fixed set of primitive wire types.
type Scalar string

const (
	Int32    Scalar = "int32"
	Int64    Scalar = "int64"
	Uint32   Scalar = "uint32"
	Uint64   Scalar = "uint64"
	Sint32   Scalar = "sint32"
	Sint64   Scalar = "sint64"
	Bool     Scalar = "bool"
	Fixed32  Scalar = "fixed32"
	Fixed64  Scalar = "fixed64"
	Sfixed32 Scalar = "sfixed32"
	Sfixed64 Scalar = "sfixed64"
	Float    Scalar = "float"
	Double   Scalar = "double"
	Bytes    Scalar = "bytes"
	Bytes32  Scalar = "bytes32"
	String   Scalar = "string"
)

// Datatype is the declared type of a field: a scalar, an inline object, or
// a timeseries wrapping of another datatype. Nodes are values, built once
// by the parser and never mutated.
type Datatype interface {
	isDatatype()
}

func (Scalar) isDatatype()     {}
func (Object) isDatatype()     {}
func (TimeSeries) isDatatype() {}

// Object is an inline nested record type. Field numbers inside an object
// are scoped to that object alone, independent of any enclosing or sibling
// numbering.
type Object struct {
	Decls []ObjectDecl
}

// TimeSeries declares a time-indexed sequence of the wrapped datatype.
// Wrapping may nest to arbitrary depth.
type TimeSeries struct {
	Elem Datatype
}

// ObjectDecl is one entry in a table or object body: a field or a reserved
// number slot.
type ObjectDecl interface {
	isObjectDecl()
}

func (Field) isObjectDecl()    {}
func (Reserved) isObjectDecl() {}

// Field is a typed, numbered member of a table or object. Number is the
// wire/storage tag. Repeated marks zero-or-more values; Breakout hints
// that the field should be materialized in its own storage location. The
// two are orthogonal and may both be set.
type Field struct {
	Number   uint64
	Name     string
	Datatype Datatype
	Repeated bool
	Breakout bool
}

// Reserved permanently retires a field number with no associated field.
type Reserved struct {
	Number uint64
}

// Definition is a top-level schema entry.
type Definition interface {
	isDefinition()
}

func (Table) isDefinition() {}
func (KV) isDefinition()    {}

// Table is a structured record type. Key lists the field names that form
// the compound key, in storage order; every key entry must name a Field in
// Fields.
type Table struct {
	Name   string
	Key    []string
	Fields []ObjectDecl
}

// KV declares a table that behaves as an opaque key-value namespace with
// no declared fields.
type KV struct {
	Name string
}
