// Package relalg declares the relational-algebra vocabulary a query
// planner consumes alongside parsed databuf schemas. It is a data model
// only: the nodes describe queries over tables, and evaluation,
// optimization, and execution belong to the planner, not to this package.
package relalg

// Node is a relational expression producing a multiset of tuples.
type Node interface {
	isNode()
}

func (Relation) isNode()         {}
func (SetUnion) isNode()         {}
func (SetDifference) isNode()    {}
func (SetIntersection) isNode()  {}
func (CartesianProduct) isNode() {}
func (Projection) isNode()       {}
func (Selection) isNode()        {}
func (Rename) isNode()           {}
func (NaturalJoin) isNode()      {}
func (ThetaJoin) isNode()        {}
func (SemiJoin) isNode()         {}
func (AntiJoin) isNode()         {}

// Relation is a table as declared in the schema. The table's compound key
// is its primary key and it yields every field; use Projection to narrow.
type Relation struct {
	Table string
}

// SetUnion is the multiset of all tuples in both relations. The relations
// must be union-compatible.
type SetUnion struct {
	A, B Node
}

// SetDifference is the multiset of tuples in A that are not in B. The
// relations must be union-compatible.
type SetDifference struct {
	A, B Node
}

// SetIntersection is the multiset of tuples in both A and B. Derivable
// from SetUnion and SetDifference; included for performance. The
// relations must be union-compatible.
type SetIntersection struct {
	A, B Node
}

// CartesianProduct is the multiset of all pairings of tuples from A and
// B. The relations must be attribute-disjoint.
type CartesianProduct struct {
	A, B Node
}

// Projection restricts the relation to the listed proto paths.
type Projection struct {
	Rel   Node
	Paths []string
}

// Selection filters the relation to tuples matching the predicate.
type Selection struct {
	Rel       Node
	Predicate Expr
}

// Rename remaps attribute paths of one relation onto another naming.
type Rename struct {
	Rel         Node
	PathMapping map[string]string
}

// NaturalJoin is the set of all combinations equal on common attributes.
// Equivalent to renaming shared attributes apart, taking the cartesian
// product, and keeping only rows where the originally shared attributes
// agree.
type NaturalJoin struct {
	A, B Node
}

// ThetaJoin is the cartesian product of two relations restricted to rows
// matching the predicate.
type ThetaJoin struct {
	A, B      Node
	Predicate Expr
}

// SemiJoin is the natural join of A and B, returning only A's attributes.
type SemiJoin struct {
	A, B Node
}

// AntiJoin returns the rows of A with no matching row in B.
//
//	SetUnion(SemiJoin(a, b), AntiJoin(a, b)) == a
type AntiJoin struct {
	A, B Node
}

// Expr is a predicate or arithmetic expression over tuple attributes.
type Expr interface {
	isExpr()
}

func (Path) isExpr()    {}
func (Literal) isExpr() {}
func (Unary) isExpr()   {}
func (Binary) isExpr()  {}

// Path references a field of the current tuple by proto path.
type Path string

// Literal is a constant operand.
type Literal struct {
	Value any
}

// UnaryOp is an operator over one expression.
type UnaryOp string

const OpNot UnaryOp = "not"

// BinaryOp is an operator over two expressions.
type BinaryOp string

const (
	OpAnd BinaryOp = "and"
	OpOr  BinaryOp = "or"
	OpAdd BinaryOp = "+"
	OpSub BinaryOp = "-"
	OpMul BinaryOp = "*"
	OpDiv BinaryOp = "/"
	OpMod BinaryOp = "%"
)

// Unary applies Op to a single expression.
type Unary struct {
	Op   UnaryOp
	Expr Expr
}

// Binary applies Op to a pair of expressions.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}
