package match

import (
	"sync"
	"time"

	"github.com/rs/xid"
)

// Execution is one entry of the trade tape: a trade plus the presentation
// metadata the time & sales view needs.
type Execution struct {
	Ref   string    `json:"ref"` // Unique execution reference
	Trade Trade     `json:"trade"`
	Time  time.Time `json:"time"`
}

// TradeTape is the append-only execution history of one engine.
type TradeTape struct {
	mu    sync.RWMutex
	execs []Execution
}

// NewTradeTape creates an empty trade tape.
func NewTradeTape() *TradeTape {
	return &TradeTape{
		execs: make([]Execution, 0),
	}
}

// Record appends trades to the tape, stamping each with an execution
// reference and the current wall-clock time.
func (t *TradeTape) Record(trades ...Trade) {
	if len(trades) == 0 {
		return
	}

	now := time.Now().UTC()

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, trade := range trades {
		t.execs = append(t.execs, Execution{
			Ref:   xid.New().String(),
			Trade: trade,
			Time:  now,
		})
	}
}

// Len returns the number of executions recorded.
func (t *TradeTape) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.execs)
}

// Recent returns up to n executions, most recent first.
func (t *TradeTape) Recent(n int) []Execution {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.execs) {
		n = len(t.execs)
	}

	result := make([]Execution, 0, n)
	for i := len(t.execs) - 1; i >= len(t.execs)-n; i-- {
		result = append(result, t.execs[i])
	}
	return result
}
