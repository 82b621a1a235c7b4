package textimage

// LineStore is an ordered collection of text lines.
// Insertion order is rendering order.
type LineStore struct {
	lines []string
}

// Add appends a single line.
func (s *LineStore) Add(line string) {
	s.lines = append(s.lines, line)
}

// AddAll appends every string entry of values, in order, and silently drops
// entries of any other type.
func (s *LineStore) AddAll(values []any) {
	for _, v := range values {
		if line, ok := v.(string); ok {
			s.lines = append(s.lines, line)
		}
	}
}

// Reset removes all lines.
func (s *LineStore) Reset() {
	s.lines = nil
}

// Len returns the number of stored lines.
func (s *LineStore) Len() int {
	return len(s.lines)
}

// All returns a copy of the stored lines.
func (s *LineStore) All() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}
