// Package console renders order book state and the trade tape for a
// terminal, and parses interactive order input. It sits entirely outside the
// matching core: it only consumes read-only depth snapshots and executions,
// and converts integer units back to decimals for display.
package console

import (
	"fmt"
	"strings"

	match "github.com/valhallaex/matching-engine"
	"github.com/valhallaex/matching-engine/fixedpoint"
)

const bookColumnWidth = 38

// Renderer formats book and tape views using the engine's scaling convention.
type Renderer struct {
	Symbol        string
	PriceScale    fixedpoint.Scale
	QuantityScale fixedpoint.Scale
	TapeLimit     int
}

// ParseSide parses interactive side input: "buy"/"b" or "sell"/"s".
func ParseSide(input string) (match.Side, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "buy", "b":
		return match.Buy, nil
	case "sell", "s":
		return match.Sell, nil
	default:
		return 0, fmt.Errorf("unknown side %q: want buy/b or sell/s", input)
	}
}

// View renders the order book and the time & sales tape side by side.
func (r *Renderer) View(depth *match.Depth, execs []match.Execution) string {
	book := r.bookLines(depth)
	tape := r.tapeLines(execs)

	var b strings.Builder
	fmt.Fprintf(&b, "%s ORDER BOOK\n", r.Symbol)
	b.WriteString(strings.Repeat("=", 72))
	b.WriteByte('\n')

	n := len(book)
	if len(tape) > n {
		n = len(tape)
	}

	for i := 0; i < n; i++ {
		left := ""
		if i < len(book) {
			left = book[i]
		}
		right := ""
		if i < len(tape) {
			right = tape[i]
		}
		fmt.Fprintf(&b, "%-*s| %s\n", bookColumnWidth, left, right)
	}

	b.WriteString(strings.Repeat("=", 72))
	b.WriteByte('\n')
	return b.String()
}

// bookLines renders asks highest-first, the spread, then bids highest-first.
func (r *Renderer) bookLines(depth *match.Depth) []string {
	lines := make([]string, 0, len(depth.Asks)+len(depth.Bids)+3)

	lines = append(lines, "ASK SIDE:")
	for i := len(depth.Asks) - 1; i >= 0; i-- {
		lines = append(lines, r.levelLine(depth.Asks[i]))
	}

	lines = append(lines, fmt.Sprintf("   --- spread: %s ---", r.spread(depth)))

	lines = append(lines, "BID SIDE:")
	for _, level := range depth.Bids {
		lines = append(lines, r.levelLine(level))
	}

	return lines
}

func (r *Renderer) levelLine(level *match.DepthItem) string {
	return fmt.Sprintf("  $%9s | %10s | %d orders",
		r.PriceScale.FromUnits(level.Price).StringFixed(2),
		r.QuantityScale.FromUnits(level.Size).StringFixed(4),
		level.Count)
}

func (r *Renderer) spread(depth *match.Depth) string {
	if len(depth.Asks) == 0 || len(depth.Bids) == 0 {
		return "n/a"
	}

	diff := depth.Asks[0].Price - depth.Bids[0].Price
	return "$" + r.PriceScale.FromUnits(diff).StringFixed(2)
}

// tapeLines renders the time & sales column, most recent execution first.
func (r *Renderer) tapeLines(execs []match.Execution) []string {
	lines := make([]string, 0, len(execs)+2)
	lines = append(lines, "TIME & SALES")
	lines = append(lines, "Time     | Price     | Size")

	limit := r.TapeLimit
	if limit <= 0 || limit > len(execs) {
		limit = len(execs)
	}

	for _, exec := range execs[:limit] {
		lines = append(lines, fmt.Sprintf("%s | $%8s | %10s",
			exec.Time.Format("15:04:05"),
			r.PriceScale.FromUnits(exec.Trade.Price).StringFixed(2),
			r.QuantityScale.FromUnits(exec.Trade.Quantity).StringFixed(4)))
	}

	if len(execs) == 0 {
		lines = append(lines, "No trades yet")
	}

	return lines
}

// FormatTrade renders one execution for the order confirmation line.
func (r *Renderer) FormatTrade(trade match.Trade) string {
	price := r.PriceScale.FromUnits(trade.Price)
	qty := r.QuantityScale.FromUnits(trade.Quantity)
	value := price.Mul(qty)

	return fmt.Sprintf("%s @ $%s = $%s (maker #%d, taker #%d)",
		qty.StringFixed(4), price.StringFixed(2), value.StringFixed(2),
		trade.MakerID, trade.TakerID)
}
