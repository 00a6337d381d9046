package serd

import "sort"

// ModelFlags configures a Model at construction time.
type ModelFlags uint8

const (
	// FlagStoreGraphs keeps named graphs distinct. Without it, every
	// statement is treated as if added to the default graph: two
	// statements differing only by graph collapse to one, and only the six
	// ungraphed orders (SPO, SOP, OPS, OSP, PSO, POS) may be requested.
	FlagStoreGraphs ModelFlags = 1 << iota
)

// Model is an in-memory, indexed set of Statements. It keeps one or more
// Orders as sorted slices so Ask/Find can binary-search instead of scan,
// and exposes AddIndex/DropIndex so a caller can trade memory for query
// speed on the orders their workload actually needs.
//
// Model is not safe for concurrent use; see the package's single-threaded
// cooperative concurrency model.
type Model struct {
	flags      ModelFlags
	alloc      Allocator
	logger     Logger
	indexes    map[Order][]Statement
	primary    Order
	generation uint64
}

// NewModel returns an empty Model whose first (and initially only) index is
// primary. A nil allocator uses DefaultAllocator; a nil logger discards
// diagnostics.
func NewModel(primary Order, flags ModelFlags, alloc Allocator, logger Logger) (*Model, error) {
	if flags&FlagStoreGraphs == 0 && primary.HasGraph() {
		return nil, statusErr(StatusBadArg, "graph-prefixed order requires FlagStoreGraphs")
	}
	m := &Model{
		flags:   flags,
		alloc:   orDefaultAllocator(alloc),
		logger:  orNop(logger),
		indexes: make(map[Order][]Statement),
		primary: primary,
	}
	m.indexes[primary] = nil
	return m, nil
}

func (m *Model) normalize(s Statement) Statement {
	if m.flags&FlagStoreGraphs == 0 {
		s.Graph = Node{}
	}
	return s
}

// AddIndex builds and maintains an additional sorted order, backfilling it
// from the primary index's current contents. It is a no-op if ord is
// already maintained.
func (m *Model) AddIndex(ord Order) error {
	if _, ok := m.indexes[ord]; ok {
		return nil
	}
	if m.flags&FlagStoreGraphs == 0 && ord.HasGraph() {
		return statusErr(StatusBadArg, "graph-prefixed order requires FlagStoreGraphs")
	}
	primary := m.indexes[m.primary]
	if err := m.alloc.Reserve(len(primary)); err != nil {
		return statusErr(StatusBadAlloc, "building index "+ord.String()+": "+err.Error())
	}
	cp := make([]Statement, len(primary))
	copy(cp, primary)
	sort.Slice(cp, func(i, j int) bool { return cp[i].compare(cp[j], ord) < 0 })
	m.indexes[ord] = cp
	m.generation++
	return nil
}

// DropIndex stops maintaining ord. Dropping the primary order is rejected;
// a Model always needs at least one index to operate.
func (m *Model) DropIndex(ord Order) error {
	if ord == m.primary {
		return statusErr(StatusBadCall, "cannot drop the primary index "+ord.String())
	}
	delete(m.indexes, ord)
	m.generation++
	return nil
}

// Orders returns the set of currently-maintained orders.
func (m *Model) Orders() []Order {
	out := make([]Order, 0, len(m.indexes))
	for o := range m.indexes {
		out = append(out, o)
	}
	return out
}

// Count returns the number of statements currently stored.
func (m *Model) Count() int { return len(m.indexes[m.primary]) }

func insertionPoint(idx []Statement, s Statement, ord Order) int {
	return sort.Search(len(idx), func(i int) bool { return idx[i].compare(s, ord) >= 0 })
}

// Ask reports whether s (or its graph-collapsed form, if FlagStoreGraphs is
// unset) is present.
func (m *Model) Ask(s Statement) bool {
	s = m.normalize(s)
	idx := m.indexes[m.primary]
	i := insertionPoint(idx, s, m.primary)
	return i < len(idx) && idx[i].compare(s, m.primary) == 0
}

// Add inserts s into every maintained index, returning (false, nil) without
// error if s (normalized per FlagStoreGraphs) is already present.
func (m *Model) Add(s Statement) (bool, error) {
	s = m.normalize(s)
	if m.Ask(s) {
		m.logger.Log(LogDebug, "duplicate statement ignored", Fields{"statement": s.String()})
		return false, nil
	}
	if err := m.alloc.Reserve(1); err != nil {
		return false, statusErr(StatusBadAlloc, "adding statement: "+err.Error())
	}
	for ord, idx := range m.indexes {
		i := insertionPoint(idx, s, ord)
		idx = append(idx, Statement{})
		copy(idx[i+1:], idx[i:])
		idx[i] = s
		m.indexes[ord] = idx
	}
	m.generation++
	return true, nil
}

// Erase removes s (normalized per FlagStoreGraphs) from every maintained
// index, reporting whether it was present.
func (m *Model) Erase(s Statement) bool {
	s = m.normalize(s)
	if !m.Ask(s) {
		return false
	}
	for ord, idx := range m.indexes {
		i := insertionPoint(idx, s, ord)
		if i < len(idx) && idx[i].compare(s, ord) == 0 {
			idx = append(idx[:i], idx[i+1:]...)
			m.indexes[ord] = idx
		}
	}
	m.generation++
	return true
}

// Clear removes every statement from every maintained index.
func (m *Model) Clear() {
	for ord := range m.indexes {
		m.indexes[ord] = nil
	}
	m.generation++
}

// selectOrder picks the maintained order whose field-priority prefix best
// matches pattern's bound fields, so Find can binary-search the largest
// possible contiguous run instead of scanning the whole index.
func (m *Model) selectOrder(p Pattern) Order {
	mask := p.boundMask()
	best, bestScore := m.primary, -1
	for ord := range m.indexes {
		score := matchedPrefixLen(ord, mask)
		if score > bestScore {
			best, bestScore = ord, score
		}
	}
	return best
}

// matchedPrefixLen returns how many of ord's leading fields (in its
// comparison priority) are bound in mask.
func matchedPrefixLen(ord Order, mask uint8) int {
	n := 0
	for _, f := range ord.fieldOrder() {
		if f < 0 {
			break
		}
		if mask&(1<<uint(f)) == 0 {
			break
		}
		n++
	}
	return n
}

// Find returns a Cursor iterating every stored statement matching pattern,
// positioned before the first match.
func (m *Model) Find(p Pattern) *Cursor {
	ord := m.selectOrder(p)
	idx := m.indexes[ord]
	lo, hi := boundRange(idx, p, ord)
	return &Cursor{
		model:      m,
		order:      ord,
		pattern:    p,
		pos:        lo - 1,
		end:        hi,
		generation: m.generation,
	}
}

// boundRange returns [lo, hi) delimiting the contiguous run of idx whose
// bound-prefix fields equal pattern's bound prefix under ord.
func boundRange(idx []Statement, p Pattern, ord Order) (int, int) {
	prefixLen := matchedPrefixLen(ord, p.boundMask())
	fields := ord.fieldOrder()
	less := func(s Statement) bool {
		for k := 0; k < prefixLen; k++ {
			c := compareNodeKeys(s.field(fields[k]), p.field(fields[k]))
			if c != 0 {
				return c < 0
			}
		}
		return false
	}
	atOrAfter := func(s Statement) bool {
		for k := 0; k < prefixLen; k++ {
			c := compareNodeKeys(s.field(fields[k]), p.field(fields[k]))
			if c != 0 {
				return c > 0
			}
		}
		return false
	}
	lo := sort.Search(len(idx), func(i int) bool { return !less(idx[i]) })
	hi := sort.Search(len(idx), func(i int) bool { return atOrAfter(idx[i]) })
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func (p Pattern) field(i int) Node {
	switch i {
	case 0:
		return p.Subject
	case 1:
		return p.Predicate
	case 2:
		return p.Object
	default:
		return p.Graph
	}
}

// All returns every matching statement as a slice, draining the cursor
// returned by Find(p). Convenient for callers who don't need incremental
// iteration.
func (m *Model) All(p Pattern) ([]Statement, error) {
	c := m.Find(p)
	var out []Statement
	for c.Next() {
		out = append(out, c.Statement())
	}
	return out, c.Err()
}

// Each feeds every statement matching p to sink as EventStatement events,
// without Base/Prefix/End framing (the Writer adds that framing itself).
func (m *Model) Each(p Pattern, sink Sink) error {
	c := m.Find(p)
	for c.Next() {
		if err := sink.Statement(c.Statement()); err != nil {
			return err
		}
	}
	return c.Err()
}
