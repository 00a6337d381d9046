package serd

import (
	"io"

	"github.com/google/uuid"
)

// Syntax selects the grammar a Reader parses.
type Syntax uint8

const (
	SyntaxTurtle Syntax = iota
	SyntaxNTriples
	SyntaxEmpty // no input is expected; Finish immediately emits End
)

// maxNestingDepth bounds how deeply collections ("(...)") and blank-node
// property lists ("[...]") may nest before a document is rejected with
// StatusBadStack. This keeps the parser's recursion (and the Go call
// stack backing it) bounded regardless of how adversarial the input is.
const maxNestingDepth = 256

// Reader parses a stream of Turtle or N-Triples bytes and emits Base,
// Prefix, Statement and End events to a Sink as it goes. Input arrives
// through repeated Feed calls; Feed parses every complete top-level
// statement or directive currently available in the buffered input and
// returns, so a caller streaming a document over a slow transport (a
// socket, a chunked HTTP body) never needs to buffer the whole document
// itself. A statement that is not yet fully buffered is left for the next
// Feed call rather than erroring.
type Reader struct {
	syntax Syntax
	sink   Sink
	lex    *lexer
	env    *Env
	doc    Node
	logger Logger
	depth  int
	bnodeN int
	ended  bool
}

// NewReader returns a Reader for syntax, emitting events to sink.
func NewReader(syntax Syntax, sink Sink, logger Logger) *Reader {
	return &Reader{
		syntax: syntax,
		sink:   sink,
		lex:    newLexer(),
		logger: orNop(logger),
	}
}

// Start begins a new document. base is the initial base URI (may be the
// zero Node). name identifies the document for Caret purposes; if name is
// the zero Node, Start mints a synthetic "urn:uuid:..." node so every
// Caret still carries a stable document identity.
func (r *Reader) Start(base, name Node) error {
	if name.IsZero() {
		name = NewIRIUnsafe("urn:uuid:" + uuid.NewString())
	}
	r.doc = name
	r.env = NewEnv(base)
	r.depth = 0
	r.bnodeN = 0
	r.ended = false
	return nil
}

// Feed appends chunk to the Reader's buffered input and parses every
// complete top-level production currently available.
func (r *Reader) Feed(chunk []byte) error {
	r.lex.feed(chunk)
	return r.drain()
}

// Finish signals that no more input is coming: any previously-incomplete
// trailing production is now a real syntax error (rather than "need more
// data"), and the terminal End event is emitted.
func (r *Reader) Finish() error {
	r.lex.finish()
	if err := r.drain(); err != nil {
		return err
	}
	if r.ended {
		return nil
	}
	r.ended = true
	return r.sink.End()
}

// Read is a convenience wrapper for callers with the whole document
// already in memory: Start, Feed the entirety of src, then Finish.
func (r *Reader) Read(src io.Reader, base, name Node) error {
	if err := r.Start(base, name); err != nil {
		return err
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return statusErr(StatusBadRead, err.Error())
	}
	if err := r.Feed(data); err != nil {
		return err
	}
	return r.Finish()
}

func (r *Reader) drain() error {
	switch r.syntax {
	case SyntaxEmpty:
		return nil
	case SyntaxNTriples:
		return r.drainNTriples()
	default:
		return r.drainTurtle()
	}
}

// --- N-Triples: one statement per line, the simplest possible grammar ---

func (r *Reader) drainNTriples() error {
	for {
		mark := r.lex.mark()
		if err := r.lex.skipWSAndComments(); err != nil {
			r.lex.reset(mark[0], mark[1], mark[2])
			if err == errNeedMore {
				return nil
			}
			return err
		}
		if r.lex.exhausted() {
			return nil
		}
		stmtMark := r.lex.mark()
		s, err := r.parseNTStatement()
		if err == errNeedMore {
			r.lex.reset(stmtMark[0], stmtMark[1], stmtMark[2])
			return nil
		}
		if err != nil {
			return err
		}
		if err := r.sink.Statement(s); err != nil {
			return err
		}
	}
}

func (r *Reader) parseNTStatement() (Statement, error) {
	caret := r.lex.caret(r.doc)
	subj, err := r.parseNTTerm(true)
	if err != nil {
		return Statement{}, err
	}
	if err := r.lex.skipWSAndComments(); err != nil {
		return Statement{}, err
	}
	pred, err := r.parseNTTerm(false)
	if err != nil {
		return Statement{}, err
	}
	if err := r.lex.skipWSAndComments(); err != nil {
		return Statement{}, err
	}
	obj, err := r.parseNTTerm(true)
	if err != nil {
		return Statement{}, err
	}
	if err := r.lex.skipWSAndComments(); err != nil {
		return Statement{}, err
	}
	var graph Node
	r2, n := r.lex.peek()
	if n > 0 && r2 != '.' {
		graph, err = r.parseNTTerm(false)
		if err != nil {
			return Statement{}, err
		}
		if err := r.lex.skipWSAndComments(); err != nil {
			return Statement{}, err
		}
	}
	ok, err := r.lex.matchByte('.')
	if err != nil {
		return Statement{}, err
	}
	if !ok {
		return Statement{}, statusErrAt(StatusBadSyntax, "expected '.' at end of statement", r.lex.caret(r.doc))
	}
	return Statement{Subject: subj, Predicate: pred, Object: obj, Graph: graph, Caret: caret}, nil
}

// parseNTTerm parses one N-Triples term: an IRIREF, a blank node label, or
// (only where allowLiteral is set) a quoted literal.
func (r *Reader) parseNTTerm(allowLiteral bool) (Node, error) {
	r0, n := r.lex.peek()
	if n == 0 {
		if r.lex.atEOF {
			return Node{}, statusErrAt(StatusBadSyntax, "unexpected end of input", r.lex.caret(r.doc))
		}
		return Node{}, errNeedMore
	}
	switch {
	case r0 == '<':
		r.lex.advance(r0, n)
		iri, err := r.lex.scanDelimited('>', false)
		if err != nil {
			return Node{}, err
		}
		return NewIRI(iri)
	case r0 == '_':
		return r.parseBlankLabel()
	case allowLiteral && r0 == '"':
		return r.parseNTLiteral()
	default:
		return Node{}, statusErrAt(StatusBadSyntax, "unexpected character in term position", r.lex.caret(r.doc))
	}
}

func (r *Reader) parseBlankLabel() (Node, error) {
	start := r.lex.mark()
	r.lex.advance('_', 1)
	ok, err := r.lex.matchByte(':')
	if err != nil {
		r.lex.reset(start[0], start[1], start[2])
		return Node{}, err
	}
	if !ok {
		return Node{}, statusErrAt(StatusBadSyntax, "expected ':' after '_'", r.lex.caret(r.doc))
	}
	label, err := r.lex.scanWhile(isPnChars)
	if err != nil {
		r.lex.reset(start[0], start[1], start[2])
		return Node{}, err
	}
	if label == "" {
		return Node{}, statusErrAt(StatusBadSyntax, "empty blank node label", r.lex.caret(r.doc))
	}
	return NewBlankUnsafe(label), nil
}

func (r *Reader) parseNTLiteral() (Node, error) {
	r.lex.advance('"', 1)
	lex, err := r.lex.scanDelimited('"', false)
	if err != nil {
		return Node{}, err
	}
	r0, n := r.lex.peek()
	switch {
	case n > 0 && r0 == '@':
		r.lex.advance(r0, n)
		tag, err := r.lex.scanWhile(func(r rune) bool {
			return isAlpha(r) || isDigit(r) || r == '-'
		})
		if err != nil {
			return Node{}, err
		}
		return NewLangLiteralUnsafe(lex, tag), nil
	case n > 0 && r0 == '^':
		r.lex.advance(r0, n)
		ok, err := r.lex.matchByte('^')
		if err != nil || !ok {
			if err == nil {
				err = statusErrAt(StatusBadSyntax, "expected '^^' before datatype", r.lex.caret(r.doc))
			}
			return Node{}, err
		}
		dt, err := r.parseNTTerm(false)
		if err != nil {
			return Node{}, err
		}
		return NewTypedLiteralUnsafe(lex, dt.Value()), nil
	default:
		return NewString(lex), nil
	}
}

// --- Turtle ---

func (r *Reader) drainTurtle() error {
	for {
		if err := r.lex.skipWSAndComments(); err != nil {
			return sinkNeedMore(err)
		}
		if r.lex.exhausted() {
			return nil
		}
		mark := r.lex.mark()
		sink := r.sink
		var pending []Statement
		r.sink = SinkFunc{OnBase: sink.Base, OnPrefix: sink.Prefix, OnEnd: sink.End,
			OnStatement: func(s Statement) error { pending = append(pending, s); return nil }}
		err := r.parseTurtleStatement()
		r.sink = sink
		if err == errNeedMore {
			r.lex.reset(mark[0], mark[1], mark[2])
			if r.lex.atEOF {
				return statusErrAt(StatusBadSyntax, "unexpected end of input", r.lex.caret(r.doc))
			}
			return nil
		}
		if err != nil {
			return err
		}
		for _, s := range pending {
			if err := sink.Statement(s); err != nil {
				return err
			}
		}
	}
}

func sinkNeedMore(err error) error {
	if err == errNeedMore {
		return nil
	}
	return err
}

func (r *Reader) parseTurtleStatement() error {
	r0, n := r.lex.peek()
	if n == 0 {
		return errNeedMore
	}
	if r0 == '@' {
		return r.parseDirectiveAt()
	}
	word, isWord := r.peekKeyword()
	if isWord {
		switch word {
		case "PREFIX", "prefix":
			return r.parseSparqlPrefix()
		case "BASE", "base":
			return r.parseSparqlBase()
		}
	}
	return r.parseTriples()
}

func (r *Reader) peekKeyword() (string, bool) {
	save := r.lex.mark()
	w, err := r.lex.scanWhile(isAlpha)
	r.lex.reset(save[0], save[1], save[2])
	if err != nil {
		return "", false
	}
	return w, w != ""
}

func (r *Reader) parseDirectiveAt() error {
	r.lex.advance('@', 1)
	word, err := r.lex.scanWhile(isAlpha)
	if err != nil {
		return err
	}
	switch word {
	case "prefix":
		if err := r.expectWS(); err != nil {
			return err
		}
		return r.finishPrefixDirective(true)
	case "base":
		if err := r.expectWS(); err != nil {
			return err
		}
		return r.finishBaseDirective(true)
	default:
		return statusErrAt(StatusBadSyntax, "unknown directive @"+word, r.lex.caret(r.doc))
	}
}

func (r *Reader) parseSparqlPrefix() error {
	if _, err := r.lex.scanWhile(isAlpha); err != nil {
		return err
	}
	if err := r.expectWS(); err != nil {
		return err
	}
	return r.finishPrefixDirective(false)
}

func (r *Reader) parseSparqlBase() error {
	if _, err := r.lex.scanWhile(isAlpha); err != nil {
		return err
	}
	if err := r.expectWS(); err != nil {
		return err
	}
	return r.finishBaseDirective(false)
}

func (r *Reader) expectWS() error {
	if err := r.lex.skipWSAndComments(); err != nil {
		return err
	}
	return nil
}

func (r *Reader) finishPrefixDirective(requireDot bool) error {
	tag, err := r.lex.scanWhile(isPnChars)
	if err != nil {
		return err
	}
	ok, err := r.lex.matchByte(':')
	if err != nil {
		return err
	}
	if !ok {
		return statusErrAt(StatusBadSyntax, "expected ':' in prefix directive", r.lex.caret(r.doc))
	}
	if err := r.lex.skipWSAndComments(); err != nil {
		return err
	}
	ok, err = r.lex.matchByte('<')
	if err != nil {
		return err
	}
	if !ok {
		return statusErrAt(StatusBadSyntax, "expected IRI reference in prefix directive", r.lex.caret(r.doc))
	}
	ref, err := r.lex.scanDelimited('>', false)
	if err != nil {
		return err
	}
	uri, err := r.env.Expand(ref)
	if err != nil {
		return err
	}
	if err := r.env.SetPrefix(tag, uri); err != nil {
		return err
	}
	if err := r.lex.skipWSAndComments(); err != nil {
		return err
	}
	if requireDot {
		ok, err := r.lex.matchByte('.')
		if err != nil {
			return err
		}
		if !ok {
			return statusErrAt(StatusBadSyntax, "expected '.' after @prefix directive", r.lex.caret(r.doc))
		}
	}
	return r.sink.Prefix(tag, uri)
}

func (r *Reader) finishBaseDirective(requireDot bool) error {
	ok, err := r.lex.matchByte('<')
	if err != nil {
		return err
	}
	if !ok {
		return statusErrAt(StatusBadSyntax, "expected IRI reference in base directive", r.lex.caret(r.doc))
	}
	ref, err := r.lex.scanDelimited('>', false)
	if err != nil {
		return err
	}
	uri, err := r.env.Expand(ref)
	if err != nil {
		return err
	}
	if err := r.env.SetBase(uri); err != nil {
		return err
	}
	if err := r.lex.skipWSAndComments(); err != nil {
		return err
	}
	if requireDot {
		ok, err := r.lex.matchByte('.')
		if err != nil {
			return err
		}
		if !ok {
			return statusErrAt(StatusBadSyntax, "expected '.' after @base directive", r.lex.caret(r.doc))
		}
	}
	return r.sink.Base(uri)
}

func (r *Reader) parseTriples() error {
	caret := r.lex.caret(r.doc)
	subj, extra, err := r.parseSubjectTerm()
	if err != nil {
		return err
	}
	for _, s := range extra {
		if err := r.sink.Statement(s); err != nil {
			return err
		}
	}
	if err := r.lex.skipWSAndComments(); err != nil {
		return err
	}
	if ok, err := r.lex.matchByte('.'); err != nil {
		return err
	} else if ok {
		// a bare "[...] ." blank-node-property-list subject with no
		// predicate-object list is legal Turtle.
		return nil
	}
	if err := r.parsePredicateObjectList(subj, caret); err != nil {
		return err
	}
	if err := r.lex.skipWSAndComments(); err != nil {
		return err
	}
	ok, err := r.lex.matchByte('.')
	if err != nil {
		return err
	}
	if !ok {
		return statusErrAt(StatusBadSyntax, "expected '.' at end of triples", r.lex.caret(r.doc))
	}
	return nil
}

func (r *Reader) parsePredicateObjectList(subj Node, caret *Caret) error {
	for {
		if err := r.lex.skipWSAndComments(); err != nil {
			return err
		}
		pred, err := r.parsePredicate()
		if err != nil {
			return err
		}
		if err := r.lex.skipWSAndComments(); err != nil {
			return err
		}
		if err := r.parseObjectList(subj, pred, caret); err != nil {
			return err
		}
		if err := r.lex.skipWSAndComments(); err != nil {
			return err
		}
		ok, err := r.lex.matchByte(';')
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := r.lex.skipWSAndComments(); err != nil {
			return err
		}
		// trailing ';' with nothing after it (before '.' or ']') is legal.
		r0, n := r.lex.peek()
		if n > 0 && (r0 == '.' || r0 == ']') {
			return nil
		}
	}
}

func (r *Reader) parseObjectList(subj, pred Node, caret *Caret) error {
	for {
		obj, extra, err := r.parseObjectTerm()
		if err != nil {
			return err
		}
		for _, s := range extra {
			if err := r.sink.Statement(s); err != nil {
				return err
			}
		}
		if err := r.sink.Statement(Statement{Subject: subj, Predicate: pred, Object: obj, Graph: Node{}, Caret: caret}); err != nil {
			return err
		}
		if err := r.lex.skipWSAndComments(); err != nil {
			return err
		}
		ok, err := r.lex.matchByte(',')
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := r.lex.skipWSAndComments(); err != nil {
			return err
		}
	}
}

func (r *Reader) parsePredicate() (Node, error) {
	r0, n := r.lex.peek()
	if n == 0 {
		return Node{}, errNeedMore
	}
	if r0 == 'a' {
		save := r.lex.mark()
		r.lex.advance('a', 1)
		r1, n1 := r.lex.peek()
		if n1 == 0 && !r.lex.atEOF {
			r.lex.reset(save[0], save[1], save[2])
			return Node{}, errNeedMore
		}
		if n1 == 0 || isWhitespace(r1) || r1 == '<' || r1 == '"' {
			return RDFType, nil
		}
		r.lex.reset(save[0], save[1], save[2])
	}
	return r.parseIRIOrPrefixedName()
}

// parseSubjectTerm and parseObjectTerm return the parsed term plus any
// extra Statements generated by an inline blank-node property list or
// collection, which must be emitted before the enclosing statement.
func (r *Reader) parseSubjectTerm() (Node, []Statement, error) {
	return r.parseNodeTerm(false)
}

func (r *Reader) parseObjectTerm() (Node, []Statement, error) {
	return r.parseNodeTerm(true)
}

func (r *Reader) parseNodeTerm(allowLiteral bool) (Node, []Statement, error) {
	r0, n := r.lex.peek()
	if n == 0 {
		return Node{}, nil, errNeedMore
	}
	switch {
	case r0 == '<':
		n, err := r.parseIRIOrPrefixedName()
		return n, nil, err
	case r0 == '_':
		n, err := r.parseBlankLabel()
		return n, nil, err
	case r0 == '[':
		return r.parseBlankNodePropertyList()
	case r0 == '(':
		return r.parseCollection()
	case allowLiteral && (r0 == '"' || r0 == '\''):
		n, err := r.parseLiteral()
		return n, nil, err
	case allowLiteral && (r0 == '+' || r0 == '-' || isDigit(r0)):
		n, err := r.parseNumericLiteral()
		return n, nil, err
	case allowLiteral && r0 == 't':
		return r.parseBooleanOrPrefixed("true", NewBoolean(true))
	case allowLiteral && r0 == 'f':
		return r.parseBooleanOrPrefixed("false", NewBoolean(false))
	default:
		n, err := r.parseIRIOrPrefixedName()
		return n, nil, err
	}
}

func (r *Reader) parseBooleanOrPrefixed(word string, lit Node) (Node, []Statement, error) {
	save := r.lex.mark()
	w, err := r.lex.scanWhile(isPnChars)
	if err != nil {
		return Node{}, nil, err
	}
	if w == word {
		return lit, nil, nil
	}
	r.lex.reset(save[0], save[1], save[2])
	n, err := r.parseIRIOrPrefixedName()
	return n, nil, err
}

func (r *Reader) parseIRIOrPrefixedName() (Node, error) {
	r0, n := r.lex.peek()
	if n == 0 {
		return Node{}, errNeedMore
	}
	if r0 == '<' {
		r.lex.advance(r0, n)
		ref, err := r.lex.scanDelimited('>', false)
		if err != nil {
			return Node{}, err
		}
		return r.env.Expand(ref)
	}
	tag, err := r.lex.scanWhile(isPnChars)
	if err != nil {
		return Node{}, err
	}
	ok, err := r.lex.matchByte(':')
	if err != nil {
		return Node{}, err
	}
	if !ok {
		return Node{}, statusErrAt(StatusBadSyntax, "expected ':' in prefixed name", r.lex.caret(r.doc))
	}
	local, err := r.lex.scanPNLocal()
	if err != nil {
		return Node{}, err
	}
	ns, ok := r.env.Prefix(tag)
	if !ok {
		return Node{}, statusErrAt(StatusBadSyntax, "undefined prefix '"+tag+"'", r.lex.caret(r.doc))
	}
	return NewIRI(ns.Value() + local)
}

func (r *Reader) parseLiteral() (Node, error) {
	quote, _ := r.lex.peek()
	return r.parseQuotedLiteral(byte(quote))
}

func (r *Reader) parseQuotedLiteral(q byte) (Node, error) {
	start := r.lex.mark()
	r.lex.advance(rune(q), 1)
	long := false
	if r.lex.pos+1 < len(r.lex.buf) && r.lex.buf[r.lex.pos] == q && r.lex.buf[r.lex.pos+1] == q {
		r.lex.advance(rune(q), 1)
		r.lex.advance(rune(q), 1)
		long = true
	} else if r.lex.pos >= len(r.lex.buf) && !r.lex.atEOF {
		r.lex.reset(start[0], start[1], start[2])
		return Node{}, errNeedMore
	}
	var lex string
	var err error
	if long {
		lex, err = r.lex.scanLongDelimited(q)
	} else {
		lex, err = r.lex.scanDelimited(q, false)
	}
	if err != nil {
		if err == errNeedMore {
			r.lex.reset(start[0], start[1], start[2])
		}
		return Node{}, err
	}
	r0, n := r.lex.peek()
	switch {
	case n > 0 && r0 == '@':
		r.lex.advance(r0, n)
		tag, err := r.lex.scanWhile(func(c rune) bool { return isAlpha(c) || isDigit(c) || c == '-' })
		if err != nil {
			return Node{}, err
		}
		return NewLangLiteral(lex, tag)
	case n > 0 && r0 == '^':
		r.lex.advance(r0, n)
		ok, err := r.lex.matchByte('^')
		if err != nil {
			return Node{}, err
		}
		if !ok {
			return Node{}, statusErrAt(StatusBadSyntax, "expected '^^' before datatype", r.lex.caret(r.doc))
		}
		dt, err := r.parseIRIOrPrefixedName()
		if err != nil {
			return Node{}, err
		}
		return NewTypedLiteral(lex, dt)
	default:
		return NewString(lex), nil
	}
}

func (r *Reader) parseNumericLiteral() (Node, error) {
	lex, dt, err := r.lex.scanNumber()
	if err != nil {
		return Node{}, err
	}
	return NewTypedLiteralUnsafe(lex, dt.Value()), nil
}

func (r *Reader) newBlank() Node {
	r.bnodeN++
	id := "b" + itoa(r.bnodeN)
	return NewBlankUnsafe(id)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func (r *Reader) parseBlankNodePropertyList() (Node, []Statement, error) {
	r.depth++
	defer func() { r.depth-- }()
	if r.depth > maxNestingDepth {
		return Node{}, nil, statusErrAt(StatusBadStack, "nesting depth exceeds limit", r.lex.caret(r.doc))
	}
	r.lex.advance('[', 1)
	subj := r.newBlank()
	var extra []Statement
	if err := r.lex.skipWSAndComments(); err != nil {
		return Node{}, nil, err
	}
	if ok, err := r.lex.matchByte(']'); err != nil {
		return Node{}, nil, err
	} else if ok {
		return subj, nil, nil
	}
	if err := r.collectPredicateObjectList(subj, &extra); err != nil {
		return Node{}, nil, err
	}
	if err := r.lex.skipWSAndComments(); err != nil {
		return Node{}, nil, err
	}
	ok, err := r.lex.matchByte(']')
	if err != nil {
		return Node{}, nil, err
	}
	if !ok {
		return Node{}, nil, statusErrAt(StatusBadSyntax, "expected ']'", r.lex.caret(r.doc))
	}
	return subj, extra, nil
}

// collectPredicateObjectList is parsePredicateObjectList's variant that
// appends generated Statements to extra instead of emitting them straight
// to the sink, since a nested property list's statements must be ordered
// before the statement that refers to its subject.
func (r *Reader) collectPredicateObjectList(subj Node, extra *[]Statement) error {
	for {
		if err := r.lex.skipWSAndComments(); err != nil {
			return err
		}
		pred, err := r.parsePredicate()
		if err != nil {
			return err
		}
		if err := r.lex.skipWSAndComments(); err != nil {
			return err
		}
		for {
			obj, nested, err := r.parseObjectTerm()
			if err != nil {
				return err
			}
			*extra = append(*extra, nested...)
			*extra = append(*extra, Statement{Subject: subj, Predicate: pred, Object: obj, Graph: Node{}})
			if err := r.lex.skipWSAndComments(); err != nil {
				return err
			}
			ok, err := r.lex.matchByte(',')
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			if err := r.lex.skipWSAndComments(); err != nil {
				return err
			}
		}
		if err := r.lex.skipWSAndComments(); err != nil {
			return err
		}
		ok, err := r.lex.matchByte(';')
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := r.lex.skipWSAndComments(); err != nil {
			return err
		}
		r0, n := r.lex.peek()
		if n > 0 && (r0 == ']' || r0 == '.') {
			return nil
		}
	}
}

// parseCollection parses an RDF collection "(...)" into its rdf:first/
// rdf:rest/rdf:nil backbone, returning the head node (rdf:nil for an empty
// collection) and the backbone statements.
func (r *Reader) parseCollection() (Node, []Statement, error) {
	r.depth++
	defer func() { r.depth-- }()
	if r.depth > maxNestingDepth {
		return Node{}, nil, statusErrAt(StatusBadStack, "nesting depth exceeds limit", r.lex.caret(r.doc))
	}
	r.lex.advance('(', 1)
	var extra []Statement
	var items []Node
	for {
		if err := r.lex.skipWSAndComments(); err != nil {
			return Node{}, nil, err
		}
		if ok, err := r.lex.matchByte(')'); err != nil {
			return Node{}, nil, err
		} else if ok {
			break
		}
		item, nested, err := r.parseObjectTerm()
		if err != nil {
			return Node{}, nil, err
		}
		extra = append(extra, nested...)
		items = append(items, item)
	}
	if len(items) == 0 {
		return RDFNil, extra, nil
	}
	head := r.newBlank()
	cur := head
	for i, item := range items {
		extra = append(extra, Statement{Subject: cur, Predicate: RDFFirst, Object: item, Graph: Node{}})
		if i == len(items)-1 {
			extra = append(extra, Statement{Subject: cur, Predicate: RDFRest, Object: RDFNil, Graph: Node{}})
		} else {
			next := r.newBlank()
			extra = append(extra, Statement{Subject: cur, Predicate: RDFRest, Object: next, Graph: Node{}})
			cur = next
		}
	}
	return head, extra, nil
}
