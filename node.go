package serd

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Kind distinguishes the three RDF term kinds a Node can hold.
type Kind uint8

// The term kinds. KindNone is the zero value and marks an absent node (used
// for an unset default graph, an unbound pattern slot, etc).
const (
	KindNone Kind = iota
	KindBlank
	KindIRI
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindIRI:
		return "IRI"
	case KindLiteral:
		return "literal"
	default:
		return "none"
	}
}

// Flags record lexical hints about a Node, used by the Turtle writer to
// decide whether a literal may be abbreviated as bare numeric/boolean
// syntax instead of a quoted, fully-typed literal.
type Flags uint16

const (
	FlagHasDatatype Flags = 1 << iota
	FlagHasLanguage
	FlagNumericInteger
	FlagNumericDecimal
	FlagNumericDouble
	FlagNumericBoolean
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// Node is an immutable RDF term: an IRI, a blank node, or a literal. The
// zero Node (KindNone) represents "no node" — an unbound pattern slot or a
// statement's absent (default) graph.
//
// Node is a plain value type, safe to copy and compare with Equal. Identity
// and reference counting live one level up, in Nodes: interning a Node
// returns a NodeID, and two interned Nodes with the same logical value
// always resolve to the same NodeID.
type Node struct {
	kind  Kind
	value string
	meta  string // datatype IRI string (FlagHasDatatype) or language tag (FlagHasLanguage)
	flags Flags
}

// IsZero reports whether n is the absent node.
func (n Node) IsZero() bool { return n.kind == KindNone }

// Kind returns the term kind.
func (n Node) Kind() Kind { return n.kind }

// Value returns the lexical value: the IRI string, the blank node label, or
// the literal's lexical form.
func (n Node) Value() string { return n.value }

// Datatype returns the literal's datatype IRI node and true, or the zero
// Node and false if n is not a literal or carries a language tag instead.
func (n Node) Datatype() (Node, bool) {
	if n.kind != KindLiteral || !n.flags.has(FlagHasDatatype) {
		return Node{}, false
	}
	return Node{kind: KindIRI, value: n.meta}, true
}

// Language returns the literal's BCP 47 language tag and true, or "" and
// false if n is not a language-tagged literal.
func (n Node) Language() (string, bool) {
	if n.kind != KindLiteral || !n.flags.has(FlagHasLanguage) {
		return "", false
	}
	return n.meta, true
}

// Flags returns the lexical-hint bits attached to n.
func (n Node) Flags() Flags { return n.flags }

// Equal reports whether n and other denote the same RDF term: equal kind,
// value, and (for literals) equal datatype-or-language.
func (n Node) Equal(other Node) bool {
	return n.kind == other.kind && n.value == other.value && n.meta == other.meta &&
		n.flags.has(FlagHasLanguage) == other.flags.has(FlagHasLanguage)
}

// key returns a string uniquely identifying n's logical value, suitable as
// a hash-consing key in Nodes. It folds kind and the datatype-or-language
// discriminant into the key so that e.g. the IRI "x" and the blank node
// "x" never collide.
func (n Node) key() string {
	var disc byte
	switch {
	case n.flags.has(FlagHasLanguage):
		disc = 'L'
	case n.flags.has(FlagHasDatatype):
		disc = 'D'
	default:
		disc = '-'
	}
	var b strings.Builder
	b.Grow(len(n.value) + len(n.meta) + 3)
	b.WriteByte(byte('0' + n.kind))
	b.WriteByte(disc)
	b.WriteString(n.value)
	b.WriteByte(0)
	b.WriteString(n.meta)
	return b.String()
}

// String renders n in N-Triples term syntax. This is the canonical,
// fully-typed form used for debugging, round-trip equality testing, and
// as the Turtle writer's fallback when no sugar applies.
func (n Node) String() string {
	switch n.kind {
	case KindBlank:
		return "_:" + n.value
	case KindIRI:
		return "<" + escapeIRI(n.value) + ">"
	case KindLiteral:
		var b strings.Builder
		b.WriteByte('"')
		b.WriteString(escapeLiteral(n.value))
		b.WriteByte('"')
		switch {
		case n.flags.has(FlagHasLanguage):
			b.WriteByte('@')
			b.WriteString(n.meta)
		case n.flags.has(FlagHasDatatype) && n.meta != XSDString.value:
			b.WriteString("^^<")
			b.WriteString(escapeIRI(n.meta))
			b.WriteByte('>')
		}
		return b.String()
	default:
		return ""
	}
}

// --- constructors ---

// NewIRI returns a new absolute-or-relative IRI node, or an error if iri
// contains a character forbidden by RFC 3987 (whitespace or one of
// <>"{}|^`\).
func NewIRI(iri string) (Node, error) {
	if len(strings.TrimSpace(iri)) == 0 {
		return Node{}, statusErr(StatusBadURI, "IRI cannot be empty")
	}
	for _, r := range iri {
		switch r {
		case '<', '>', '"', '{', '}', '|', '^', '`', '\\', ' ', '\t', '\n', '\r':
			return Node{}, statusErr(StatusBadURI, fmt.Sprintf("IRI contains disallowed character %q", r))
		}
	}
	return Node{kind: KindIRI, value: iri}, nil
}

// NewIRIUnsafe is like NewIRI but performs no validation.
func NewIRIUnsafe(iri string) Node {
	return Node{kind: KindIRI, value: iri}
}

// URIComponents assembles an IRI from parsed parts: scheme, authority,
// path, query and fragment, following RFC 3986's component breakdown.
type URIComponents struct {
	Scheme    string
	Authority string // e.g. "user@host:port"
	Path      string
	Query     string
	Fragment  string
}

// NewURIFromComponents assembles and validates an IRI from its components.
func NewURIFromComponents(c URIComponents) (Node, error) {
	if c.Scheme == "" {
		return Node{}, statusErr(StatusBadURI, "URI components missing scheme")
	}
	var b strings.Builder
	b.WriteString(c.Scheme)
	b.WriteByte(':')
	if c.Authority != "" {
		b.WriteString("//")
		b.WriteString(c.Authority)
	}
	b.WriteString(c.Path)
	if c.Query != "" {
		b.WriteByte('?')
		b.WriteString(c.Query)
	}
	if c.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(c.Fragment)
	}
	return NewIRI(b.String())
}

// NewBlank returns a new blank node with the given label, or an error if id
// is empty.
func NewBlank(id string) (Node, error) {
	if len(strings.TrimSpace(id)) == 0 {
		return Node{}, statusErr(StatusBadArg, "blank node cannot have an empty id")
	}
	return Node{kind: KindBlank, value: id}, nil
}

// NewBlankUnsafe is like NewBlank but performs no validation.
func NewBlankUnsafe(id string) Node {
	return Node{kind: KindBlank, value: id}
}

// NewString returns an untyped ("plain") string literal. Per RDF 1.1, this
// is represented internally with datatype xsd:string.
func NewString(value string) Node {
	return Node{kind: KindLiteral, value: value, meta: XSDString.value, flags: FlagHasDatatype}
}

// NewTypedLiteral returns a literal with an explicit datatype IRI. It is an
// error for datatype not to be an IRI node, or to be empty.
func NewTypedLiteral(value string, datatype Node) (Node, error) {
	if datatype.kind != KindIRI || datatype.value == "" {
		return Node{}, statusErr(StatusBadLiteral, "literal datatype must be a non-empty IRI")
	}
	return Node{kind: KindLiteral, value: value, meta: datatype.value, flags: FlagHasDatatype}, nil
}

// NewTypedLiteralUnsafe is like NewTypedLiteral but performs no validation.
func NewTypedLiteralUnsafe(value, datatypeIRI string) Node {
	return Node{kind: KindLiteral, value: value, meta: datatypeIRI, flags: FlagHasDatatype}
}

// NewLangLiteral returns a string literal tagged with a BCP 47 language
// tag. The tag's syntax is checked with golang.org/x/text/language; this
// is a syntactic well-formedness check, not full registry validation (no
// check that subtags are assigned).
func NewLangLiteral(value, lang string) (Node, error) {
	if lang == "" {
		return Node{}, statusErr(StatusBadLiteral, "language tag cannot be empty")
	}
	if _, err := language.Parse(lang); err != nil {
		return Node{}, statusErr(StatusBadLiteral, fmt.Sprintf("invalid language tag %q: %v", lang, err))
	}
	return Node{kind: KindLiteral, value: value, meta: lang, flags: FlagHasLanguage}, nil
}

// NewLangLiteralUnsafe is like NewLangLiteral but performs no validation.
func NewLangLiteralUnsafe(value, lang string) Node {
	return Node{kind: KindLiteral, value: value, meta: lang, flags: FlagHasLanguage}
}
