package match

// DefaultOrderIDBase is the first order ID handed out by a fresh Sequencer.
const DefaultOrderIDBase = 1000

// Sequencer owns the two monotonic counters the engine depends on: the
// arrival sequence used as the time-priority tiebreaker, and the order ID
// allocator. Both are strictly increasing and never reused.
//
// The Sequencer is not safe for concurrent use; it is owned by exactly one
// Engine and only touched from the single writer (see SerialBook).
type Sequencer struct {
	lastArrival uint64
	nextOrderID uint64
}

// NewSequencer creates a Sequencer whose order IDs start at base.
func NewSequencer(base uint64) *Sequencer {
	return &Sequencer{
		nextOrderID: base,
	}
}

// NextArrival returns the next arrival sequence number, starting at 1.
func (s *Sequencer) NextArrival() uint64 {
	s.lastArrival++
	return s.lastArrival
}

// LastArrival returns the most recently assigned arrival sequence number.
func (s *Sequencer) LastArrival() uint64 {
	return s.lastArrival
}

// NextOrderID allocates a unique order ID.
func (s *Sequencer) NextOrderID() uint64 {
	id := s.nextOrderID
	s.nextOrderID++
	return id
}
