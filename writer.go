package serd

import (
	"bufio"
	"io"
	"sort"
)

// errWriter wraps an io.Writer, remembering the first error any Write call
// hits so callers can chain writes without checking every return value and
// inspect the sticky error once at the end.
type errWriter struct {
	w   *bufio.Writer
	err error
}

func (e *errWriter) writeString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(s)
}

func (e *errWriter) writeByte(b byte) {
	if e.err != nil {
		return
	}
	e.err = e.w.WriteByte(b)
}

// Writer renders statements as structured Turtle: prefixed names, "a" for
// rdf:type, inline blank-node property lists, RDF collection sugar, and
// comma/semicolon grouping of repeated subjects/predicates. It is not a
// Sink itself. WriteGrouped takes statements already grouped by subject
// and does not sort them; WriteModel sorts a Model's statements into SPO
// order before grouping.
type Writer struct {
	out      *errWriter
	env      *Env
	logger   Logger
	seen     map[string]bool // cycle guard for property-list inlining
	objCount map[string]int  // object-position use count, for inlining decisions
}

// NewWriter returns a Writer emitting to w using env's prefix map for
// abbreviation (env's base is not used; a nil env means no abbreviation is
// attempted, only full IRIREFs). A nil logger discards diagnostics.
func NewWriter(w io.Writer, env *Env, logger Logger) *Writer {
	if env == nil {
		env = NewEnv(Node{})
	}
	return &Writer{out: &errWriter{w: bufio.NewWriter(w)}, env: env, logger: orNop(logger)}
}

// WritePrefixes emits @prefix directives for every binding in the Writer's
// Env, conventionally called once before the first statement.
func (w *Writer) WritePrefixes() error {
	tags := make([]string, 0, len(w.env.prefixes))
	for t := range w.env.prefixes {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	for _, t := range tags {
		ns, _ := w.env.Prefix(t)
		w.out.writeString("@prefix ")
		w.out.writeString(t)
		w.out.writeString(": <")
		w.out.writeString(escapeIRI(ns.Value()))
		w.out.writeString("> .\n")
	}
	return w.out.err
}

// WriteModel renders every statement in m in subject-grouped Turtle. It
// sorts the statements into SPO order itself, so m may keep any primary
// order. Graph components are not written (see WriteGrouped).
func (w *Writer) WriteModel(m *Model) error {
	stmts, err := m.All(Pattern{})
	if err != nil {
		return err
	}
	sort.SliceStable(stmts, func(i, j int) bool { return stmts[i].compare(stmts[j], OrderSPO) < 0 })
	return w.WriteGrouped(stmts)
}

// WriteGrouped renders a slice of statements already sorted by (subject,
// predicate), applying comma/semicolon sugar across runs of equal subject
// and predicate. The graph component is not written: statements in a named
// graph are rendered as plain triples (TriG's "GRAPH { }" block syntax is
// not produced).
func (w *Writer) WriteGrouped(stmts []Statement) error {
	w.seen = make(map[string]bool)
	w.objCount = make(map[string]int, len(stmts))
	for _, s := range stmts {
		w.objCount[s.Object.key()]++
	}
	var lastSubj, lastPred Node
	haveLast := false
	for i, s := range stmts {
		if w.inlineableBlank(s.Subject, stmts) {
			// subjects that are themselves only ever used as an inlined
			// object elsewhere are skipped at the top level entirely.
			continue
		}
		sameSubj := haveLast && lastSubj.Equal(s.Subject)
		samePred := sameSubj && lastPred.Equal(s.Predicate)
		switch {
		case samePred:
			w.out.writeString(" ,\n    ")
		case sameSubj:
			w.out.writeString(" ;\n    ")
			w.writeTerm(s.Predicate)
			w.out.writeByte(' ')
		default:
			if haveLast {
				w.out.writeString(" .\n")
			}
			w.writeTerm(s.Subject)
			w.out.writeByte(' ')
			w.writeTerm(s.Predicate)
			w.out.writeByte(' ')
		}
		w.writeObject(s.Object, stmts)
		lastSubj, lastPred, haveLast = s.Subject, s.Predicate, true
		_ = i
	}
	if haveLast {
		w.out.writeString(" .\n")
	}
	if err := w.out.w.Flush(); err != nil && w.out.err == nil {
		w.out.err = err
	}
	if w.out.err != nil {
		return statusErr(StatusBadWrite, w.out.err.Error())
	}
	return nil
}

// inlineableBlank reports whether n's own statements should be hoisted out
// of top-level position because n is rendered inline wherever it is used:
// a blank node referenced as exactly one other statement's object (the
// common case for both "[...]" property lists and collection cells) is
// written only at that occurrence, never again as its own subject block.
// A blank node used as an object more than once (or never) is left alone
// and rendered as an ordinary "_:label" subject.
func (w *Writer) inlineableBlank(n Node, all []Statement) bool {
	return n.Kind() == KindBlank && w.objCount[n.key()] == 1
}

func (w *Writer) writeTerm(n Node) {
	switch n.Kind() {
	case KindIRI:
		if n.Equal(RDFType) {
			w.out.writeString("a")
			return
		}
		if pn, ok := w.env.Abbreviate(n); ok {
			w.out.writeString(pn)
			return
		}
		w.out.writeByte('<')
		w.out.writeString(escapeIRI(n.Value()))
		w.out.writeByte('>')
	case KindBlank:
		w.out.writeString("_:")
		w.out.writeString(n.Value())
	default:
		w.writeLiteral(n)
	}
}

func (w *Writer) writeObject(n Node, all []Statement) {
	if n.Equal(RDFNil) {
		w.out.writeString("()")
		return
	}
	if n.Kind() == KindBlank && w.isListHead(n, all) {
		w.writeCollection(n, all)
		return
	}
	if w.inlineableBlank(n, all) && !w.seen[n.key()] {
		w.seen[n.key()] = true
		w.out.writeByte('[')
		sep := " "
		for _, s := range all {
			if s.Subject.Equal(n) {
				w.out.writeString(sep)
				w.writeTerm(s.Predicate)
				w.out.writeByte(' ')
				w.writeObject(s.Object, all)
				sep = " ; "
			}
		}
		w.out.writeString(" ]")
		return
	}
	w.writeTerm(n)
}

// isListHead reports whether n has an rdf:first statement, in which case
// the Writer renders it with "(...)" sugar instead of spelling out the
// backbone triples. The rest of the chain is not checked here:
// writeCollection follows rdf:rest and stops at rdf:nil, at a cell with no
// rdf:first or rdf:rest, or at a repeated cell.
func (w *Writer) isListHead(n Node, all []Statement) bool {
	_, hasFirst := findObject(all, n, RDFFirst)
	return hasFirst
}

func findObject(all []Statement, subj, pred Node) (Node, bool) {
	for _, s := range all {
		if s.Subject.Equal(subj) && s.Predicate.Equal(pred) {
			return s.Object, true
		}
	}
	return Node{}, false
}

// writeCollection renders the rdf:first/rdf:rest chain rooted at head as
// "(a b c)" sugar. A cycle (a rest pointer looping back to an earlier node
// in the same chain) truncates the collection at that point rather than
// looping forever, logging the truncation at Warn.
func (w *Writer) writeCollection(head Node, all []Statement) {
	w.out.writeByte('(')
	cur := head
	first := true
	visited := map[string]bool{}
	for {
		if visited[cur.key()] {
			w.logger.Log(LogWarn, "cyclic RDF list truncated during write", Fields{"node": cur.String()})
			break
		}
		visited[cur.key()] = true
		item, ok := findObject(all, cur, RDFFirst)
		if !ok {
			break
		}
		if !first {
			w.out.writeByte(' ')
		}
		first = false
		w.writeObject(item, all)
		rest, ok := findObject(all, cur, RDFRest)
		if !ok || rest.Equal(RDFNil) {
			break
		}
		cur = rest
	}
	w.out.writeByte(')')
}

func (w *Writer) writeLiteral(n Node) {
	if lang, ok := n.Language(); ok {
		w.out.writeByte('"')
		w.out.writeString(escapeLiteral(n.Value()))
		w.out.writeByte('"')
		w.out.writeByte('@')
		w.out.writeString(lang)
		return
	}
	dt, _ := n.Datatype()
	switch {
	case dt.Value() == XSDBoolean.Value() || dt.Value() == XSDInteger.Value() || dt.Value() == XSDDecimal.Value():
		w.out.writeString(n.Value())
	case dt.Value() == XSDDouble.Value():
		w.out.writeString(n.Value())
	case dt.Value() == XSDString.Value():
		w.out.writeByte('"')
		w.out.writeString(escapeLiteral(n.Value()))
		w.out.writeByte('"')
	default:
		w.out.writeByte('"')
		w.out.writeString(escapeLiteral(n.Value()))
		w.out.writeString(`"^^`)
		w.writeTerm(dt)
	}
}
