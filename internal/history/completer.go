package history

// Completer produces history-based suggestions for a partial line.
type Completer struct {
	store *Store
	limit int
}

// NewCompleter creates a completer over the store. A non-positive limit
// means unbounded suggestions.
func NewCompleter(store *Store, limit int) *Completer {
	return &Completer{store: store, limit: limit}
}

// Complete returns command lines containing term, newest first with
// duplicates removed.
func (c *Completer) Complete(term string) []string {
	matches := c.store.Search(term, c.limit)
	out := make([]string, len(matches))
	for i, e := range matches {
		out[i] = e.CommandLine
	}
	return out
}
