package serd

// FilterFunc reports whether a statement should be forwarded by a
// FilterSink.
type FilterFunc func(Statement) bool

// FilterSink wraps another Sink, forwarding only the statements Keep
// accepts. Base/Prefix/End events always pass through, since they carry
// document structure rather than data subject to filtering.
type FilterSink struct {
	next Sink
	Keep FilterFunc
}

// NewFilterSink returns a Sink forwarding to next only statements for which
// keep returns true.
func NewFilterSink(next Sink, keep FilterFunc) *FilterSink {
	return &FilterSink{next: next, Keep: keep}
}

func (f *FilterSink) Base(uri Node) error               { return f.next.Base(uri) }
func (f *FilterSink) Prefix(tag string, uri Node) error { return f.next.Prefix(tag, uri) }
func (f *FilterSink) End() error                        { return f.next.End() }

func (f *FilterSink) Statement(s Statement) error {
	if f.Keep == nil || f.Keep(s) {
		return f.next.Statement(s)
	}
	return nil
}

// PatternFilter returns a FilterFunc accepting statements matching p,
// letting callers build a FilterSink directly from a Pattern the way they
// would query a Model.
func PatternFilter(p Pattern) FilterFunc {
	return func(s Statement) bool { return p.matches(s) }
}

// ModelSink returns a Sink that adds every statement it receives to m,
// ignoring Base/Prefix/End. This is the usual way to pipe a Reader straight
// into a Model.
type ModelSink struct {
	Model *Model
}

func (s ModelSink) Base(Node) error               { return nil }
func (s ModelSink) Prefix(string, Node) error      { return nil }
func (s ModelSink) End() error                     { return nil }
func (s ModelSink) Statement(st Statement) error {
	_, err := s.Model.Add(st)
	return err
}
