package serd

// NodeID identifies a Node interned in a Nodes pool. The zero NodeID never
// denotes a real node (index 0 is reserved), so a NodeID-keyed map can use
// 0 as its own "absent" sentinel.
type NodeID uint32

type nodeSlot struct {
	node  Node
	refs  int
	alive bool
}

// Nodes is a hash-consed, reference-counted interning pool: calling Intern
// with two Nodes of equal logical value always returns the same NodeID, and
// Release drops the pool's reference, recycling the slot once the refcount
// reaches zero. A Model does not use a Nodes pool: its Statements hold
// Node values directly.
//
// Nodes is not safe for concurrent use; see the package's single-threaded
// cooperative concurrency model.
type Nodes struct {
	alloc  Allocator
	logger Logger
	byKey  map[string]NodeID
	slots  []nodeSlot // slots[0] is reserved and always dead
	free   []NodeID   // recycled slot indices, LIFO
}

// NewNodes returns an empty interning pool. A nil allocator uses
// DefaultAllocator; a nil logger discards diagnostics.
func NewNodes(alloc Allocator, logger Logger) *Nodes {
	return &Nodes{
		alloc:  orDefaultAllocator(alloc),
		logger: orNop(logger),
		byKey:  make(map[string]NodeID),
		slots:  make([]nodeSlot, 1), // index 0 reserved
	}
}

// Intern returns the stable NodeID for node, creating a new slot (with
// refcount 1) the first time a given logical value is seen, or
// incrementing the existing slot's refcount on subsequent calls.
func (n *Nodes) Intern(node Node) (NodeID, error) {
	key := node.key()
	if id, ok := n.byKey[key]; ok {
		n.slots[id].refs++
		return id, nil
	}
	if len(n.free) > 0 {
		id := n.free[len(n.free)-1]
		n.free = n.free[:len(n.free)-1]
		n.slots[id] = nodeSlot{node: node, refs: 1, alive: true}
		n.byKey[key] = id
		return id, nil
	}
	if err := n.alloc.Reserve(1); err != nil {
		n.logger.Log(LogError, "node pool growth denied by allocator", Fields{"check": "reserve"})
		return 0, statusErr(StatusBadAlloc, "reserving node slot: "+err.Error())
	}
	id := NodeID(len(n.slots))
	n.slots = append(n.slots, nodeSlot{node: node, refs: 1, alive: true})
	n.byKey[key] = id
	return id, nil
}

// Lookup returns the Node for id and true, or the zero Node and false if id
// is unset or has been fully released.
func (n *Nodes) Lookup(id NodeID) (Node, bool) {
	if int(id) <= 0 || int(id) >= len(n.slots) || !n.slots[id].alive {
		return Node{}, false
	}
	return n.slots[id].node, true
}

// Retain bumps id's refcount without re-interning, for callers that hold a
// NodeID they know is already valid.
func (n *Nodes) Retain(id NodeID) {
	if int(id) > 0 && int(id) < len(n.slots) && n.slots[id].alive {
		n.slots[id].refs++
	}
}

// Release drops one reference to id; once the refcount reaches zero the
// slot is recycled for a future Intern.
func (n *Nodes) Release(id NodeID) {
	if int(id) <= 0 || int(id) >= len(n.slots) || !n.slots[id].alive {
		return
	}
	n.slots[id].refs--
	if n.slots[id].refs <= 0 {
		delete(n.byKey, n.slots[id].node.key())
		n.slots[id] = nodeSlot{}
		n.free = append(n.free, id)
	}
}

// Len returns the number of live (non-recycled) entries.
func (n *Nodes) Len() int {
	return len(n.slots) - len(n.free) - 1 // minus the reserved zero slot
}
