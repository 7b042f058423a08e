package diagnostics

// Bag accumulates diagnostics in discovery order (spec.md §5 "Ordering":
// a FIFO list). Every compiler stage is handed a *Bag instead of returning
// an error on first fault, so parsing, macro expansion, and validation can
// each continue past individual faults within the same compilation.
type Bag struct {
	items []Diagnostic
}

// NewBag returns an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add appends a diagnostic.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// HasErrors reports whether any accumulated diagnostic is SeverityError.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// All returns the accumulated diagnostics in discovery order.
func (b *Bag) All() []Diagnostic {
	return b.items
}

// Len returns the number of accumulated diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}
