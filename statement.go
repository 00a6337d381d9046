package serd

import "fmt"

// Order identifies one of the twelve ways a Model can keep its statements
// sorted, named by the term positions in comparison priority. A graph-
// prefixed order (GSPO, GSOP, ...) groups statements by graph first; the
// six ungraphed orders (SPO, SOP, OPS, OSP, PSO, POS) compare subject,
// predicate and object only, collapsing distinct graphs together — used
// for a Model that does not track STORE_GRAPHS.
type Order uint8

const (
	OrderSPO Order = iota
	OrderSOP
	OrderOPS
	OrderOSP
	OrderPSO
	OrderPOS
	OrderGSPO
	OrderGSOP
	OrderGOPS
	OrderGOSP
	OrderGPSO
	OrderGPOS
)

func (o Order) String() string {
	names := [...]string{"SPO", "SOP", "OPS", "OSP", "PSO", "POS", "GSPO", "GSOP", "GOPS", "GOSP", "GPSO", "GPOS"}
	if int(o) < len(names) {
		return names[o]
	}
	return fmt.Sprintf("order(%d)", int(o))
}

// HasGraph reports whether o sorts by graph first.
func (o Order) HasGraph() bool { return o >= OrderGSPO }

// fieldOrder returns the four field indices (0=S 1=P 2=O 3=G) in this
// order's comparison priority; the fourth slot is unused (-1) for the six
// ungraphed orders.
func (o Order) fieldOrder() [4]int {
	switch o {
	case OrderSPO:
		return [4]int{0, 1, 2, -1}
	case OrderSOP:
		return [4]int{0, 2, 1, -1}
	case OrderOPS:
		return [4]int{2, 1, 0, -1}
	case OrderOSP:
		return [4]int{2, 0, 1, -1}
	case OrderPSO:
		return [4]int{1, 0, 2, -1}
	case OrderPOS:
		return [4]int{1, 2, 0, -1}
	case OrderGSPO:
		return [4]int{3, 0, 1, 2}
	case OrderGSOP:
		return [4]int{3, 0, 2, 1}
	case OrderGOPS:
		return [4]int{3, 2, 1, 0}
	case OrderGOSP:
		return [4]int{3, 2, 0, 1}
	case OrderGPSO:
		return [4]int{3, 1, 0, 2}
	case OrderGPOS:
		return [4]int{3, 1, 2, 0}
	default:
		return [4]int{0, 1, 2, -1}
	}
}

// Caret pinpoints a location in a source document: a document identifier
// node (usually an IRI or a synthetic blank/urn node minted by the Reader)
// plus a 1-based line and column. A Reader attaches one to each statement
// it reads (in Turtle, statements generated from a nested property list or
// collection carry none), and most syntax errors it returns carry one.
type Caret struct {
	Document Node
	Line     int
	Col      int
}

func (c *Caret) String() string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d", c.Document.Value(), c.Line, c.Col)
}

// Statement is a subject-predicate-object triple, optionally placed in a
// named graph (Graph.IsZero() means the default graph), optionally carrying
// the Caret of the document location it was read from.
type Statement struct {
	Subject   Node
	Predicate Node
	Object    Node
	Graph     Node
	Caret     *Caret
}

// HasGraph reports whether s belongs to a named graph rather than the
// default graph.
func (s Statement) HasGraph() bool { return !s.Graph.IsZero() }

// field returns the i'th term in S=0,P=1,O=2,G=3 positional order.
func (s Statement) field(i int) Node {
	switch i {
	case 0:
		return s.Subject
	case 1:
		return s.Predicate
	case 2:
		return s.Object
	default:
		return s.Graph
	}
}

// compare orders s against other under ord, returning -1, 0 or 1.
func (s Statement) compare(other Statement, ord Order) int {
	for _, f := range ord.fieldOrder() {
		if f < 0 {
			continue
		}
		if c := compareNodeKeys(s.field(f), other.field(f)); c != 0 {
			return c
		}
	}
	return 0
}

func compareNodeKeys(a, b Node) int {
	ak, bk := a.key(), b.key()
	switch {
	case ak < bk:
		return -1
	case ak > bk:
		return 1
	default:
		return 0
	}
}

// String renders s in N-Triples/N-Quads syntax terminated by " .\n".
func (s Statement) String() string {
	if s.HasGraph() {
		return s.Subject.String() + " " + s.Predicate.String() + " " + s.Object.String() + " " + s.Graph.String() + " .\n"
	}
	return s.Subject.String() + " " + s.Predicate.String() + " " + s.Object.String() + " .\n"
}

// Pattern is a partially- or fully-bound Statement used to query a Model:
// a zero Node (Kind() == KindNone) in any field means "unbound", matching
// any term in that position.
type Pattern struct {
	Subject   Node
	Predicate Node
	Object    Node
	Graph     Node
}

// boundMask returns a bitmask with bit i set iff field i (S=0,P=1,O=2,G=3)
// of p is bound, used by the Model to pick the index with the longest
// bound prefix for p.
func (p Pattern) boundMask() uint8 {
	var m uint8
	if !p.Subject.IsZero() {
		m |= 1 << 0
	}
	if !p.Predicate.IsZero() {
		m |= 1 << 1
	}
	if !p.Object.IsZero() {
		m |= 1 << 2
	}
	if !p.Graph.IsZero() {
		m |= 1 << 3
	}
	return m
}

// matches reports whether s satisfies every bound field of p.
func (p Pattern) matches(s Statement) bool {
	if !p.Subject.IsZero() && !p.Subject.Equal(s.Subject) {
		return false
	}
	if !p.Predicate.IsZero() && !p.Predicate.Equal(s.Predicate) {
		return false
	}
	if !p.Object.IsZero() && !p.Object.Equal(s.Object) {
		return false
	}
	if !p.Graph.IsZero() && !p.Graph.Equal(s.Graph) {
		return false
	}
	return true
}
