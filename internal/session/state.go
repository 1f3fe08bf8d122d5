package session

import "strconv"

// State is everything the interactive calculator remembers between menu
// choices.
type State struct {
	// Memory is the last result. It is loaded from and saved to the store.
	Memory float64
	// Scientific is whether scientific mode is on.
	Scientific bool
	// History is the list of evaluated expressions, oldest first.
	History History
}

// Entry is one evaluated expression.
type Entry struct {
	Expr   string
	Result float64
}

// String formats the entry as "expr = result" with six decimal places.
func (e Entry) String() string {
	return e.Expr + " = " + strconv.FormatFloat(e.Result, 'f', 6, 64)
}

// History is an ordered log of evaluated expressions.
type History []Entry

// Add appends an entry.
func (h *History) Add(expr string, r float64) {
	*h = append(*h, Entry{Expr: expr, Result: r})
}
