package sets

// Ordered is a generic set that remembers first-insertion order.
// Usage: s := sets.NewOrdered[string](); s.Add("b"); s.Add("a"); s.Values() // [b a]
type Ordered[T comparable] struct {
	index map[T]struct{}
	order []T
}

// NewOrdered creates an ordered set pre-populated with the provided values.
func NewOrdered[T comparable](vals ...T) *Ordered[T] {
	s := &Ordered[T]{index: make(map[T]struct{}, len(vals))}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Ordered[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Has returns true if v is present.
func (s *Ordered[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of distinct values.
func (s *Ordered[T]) Len() int { return len(s.order) }

// Values returns a copy of the values in first-seen order.
func (s *Ordered[T]) Values() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}
