package model

// Revision is one appended value of an audited field.
type Revision[T any] struct {
	At    string `json:"at"`
	By    string `json:"by,omitempty"`
	Value T      `json:"value"`
}

// AuditTrail is an append-only history whose current value is derived
// from the last revision. There is no setter for the current value.
type AuditTrail[T any] struct {
	base    T
	history []Revision[T]
}

// NewAuditTrail creates a trail falling back to base while empty.
func NewAuditTrail[T any](base T) AuditTrail[T] {
	return AuditTrail[T]{base: base}
}

// Append records a new revision.
func (a *AuditTrail[T]) Append(rev Revision[T]) {
	a.history = append(a.history, rev)
}

// Current returns the value of the last revision, or the base value.
func (a AuditTrail[T]) Current() T {
	if len(a.history) == 0 {
		return a.base
	}
	return a.history[len(a.history)-1].Value
}

// Last returns the last revision if any.
func (a AuditTrail[T]) Last() (Revision[T], bool) {
	if len(a.history) == 0 {
		return Revision[T]{}, false
	}
	return a.history[len(a.history)-1], true
}

// History returns a copy of all revisions in append order.
func (a AuditTrail[T]) History() []Revision[T] {
	return append([]Revision[T](nil), a.history...)
}

// Len reports the number of revisions.
func (a AuditTrail[T]) Len() int {
	return len(a.history)
}
