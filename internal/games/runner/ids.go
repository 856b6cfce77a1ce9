package runner

// IDSource hands out monotonically increasing entity ids.
// One source is owned per engine and shared by its spawners, so ids are never
// reused within that engine, including across restarts.
type IDSource struct {
	next int
}

// NewIDSource creates a source whose first id is 1.
func NewIDSource() *IDSource {
	return &IDSource{next: 1}
}

// Next returns a fresh id.
func (s *IDSource) Next() int {
	id := s.next
	s.next++
	return id
}

// Peek returns the id the next call to Next will return.
func (s *IDSource) Peek() int {
	return s.next
}
