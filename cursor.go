package serd

// Cursor iterates the statements a Model.Find call matched. A Cursor is
// invalidated by any subsequent Add/Erase/Clear/AddIndex/DropIndex on its
// Model: calling Next after that returns false and Err reports
// StatusBadCursor, rather than silently reading stale or shifted slice
// positions.
type Cursor struct {
	model      *Model
	order      Order
	pattern    Pattern
	pos        int
	end        int
	generation uint64
	err        error
}

// Next advances the cursor to the next matching statement, returning false
// when exhausted or invalidated.
func (c *Cursor) Next() bool {
	if c.err != nil {
		return false
	}
	if c.generation != c.model.generation {
		c.err = statusErr(StatusBadCursor, "model mutated since cursor was created")
		return false
	}
	for {
		c.pos++
		if c.pos >= c.end {
			return false
		}
		if c.pattern.matches(c.Statement()) {
			return true
		}
	}
}

// Statement returns the statement at the cursor's current position. It is
// only valid to call after a Next that returned true.
func (c *Cursor) Statement() Statement {
	return c.model.indexes[c.order][c.pos]
}

// Err returns the error that stopped iteration, or nil if it ran to
// completion (or has not been advanced to exhaustion/failure yet).
func (c *Cursor) Err() error { return c.err }
