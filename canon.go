package serd

import "strconv"

// CanonSink wraps another Sink, rewriting each Statement's literal terms
// into their canonical XSD lexical form (per the numeric/boolean
// constructors in xsd.go) before forwarding. Base/Prefix/End events pass
// through unchanged.
type CanonSink struct {
	next   Sink
	logger Logger
}

// NewCanonSink returns a Sink that canonicalises statements before handing
// them to next. A nil logger discards diagnostics.
func NewCanonSink(next Sink, logger Logger) *CanonSink {
	return &CanonSink{next: next, logger: orNop(logger)}
}

func (c *CanonSink) Base(uri Node) error           { return c.next.Base(uri) }
func (c *CanonSink) Prefix(tag string, uri Node) error { return c.next.Prefix(tag, uri) }
func (c *CanonSink) End() error                    { return c.next.End() }

func (c *CanonSink) Statement(s Statement) error {
	s.Subject = c.canonNode(s.Subject)
	s.Predicate = c.canonNode(s.Predicate)
	s.Object = c.canonNode(s.Object)
	s.Graph = c.canonNode(s.Graph)
	return c.next.Statement(s)
}

func (c *CanonSink) canonNode(n Node) Node {
	if n.Kind() != KindLiteral {
		return n
	}
	dt, ok := n.Datatype()
	if !ok {
		return n
	}
	switch dt.Value() {
	case XSDInteger.Value():
		if canon, err := canonicalDecimal(n.Value()); err == nil {
			return NewTypedLiteralUnsafe(stripDecimalPoint(canon), dt.Value())
		}
	case XSDDecimal.Value():
		if canon, err := canonicalDecimal(n.Value()); err == nil {
			return NewTypedLiteralUnsafe(canon, dt.Value())
		}
	case XSDDouble.Value(), XSDFloat.Value():
		if f, err := strconv.ParseFloat(n.Value(), 64); err == nil {
			return NewTypedLiteralUnsafe(canonicalDouble(f), dt.Value())
		}
	case XSDBoolean.Value():
		switch n.Value() {
		case "1", "true":
			return NewBoolean(true)
		case "0", "false":
			return NewBoolean(false)
		}
	}
	c.logger.Log(LogDebug, "literal left uncanonicalized", Fields{"value": n.Value(), "datatype": dt.Value()})
	return n
}

// stripDecimalPoint undoes canonicalDecimal's ".0" suffix for integers,
// which must never carry a decimal point.
func stripDecimalPoint(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			frac := s[i+1:]
			if frac == "0" {
				return s[:i]
			}
			return s // not a clean integer value; leave as-is
		}
	}
	return s
}
