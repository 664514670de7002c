package links

// Session is the hit log accumulated across searches. Repeated searches append,
// so a file matched by two searches appears twice unless the search is run in
// Replace mode.
type Session struct {
	hits  []Hit
	count int
}

func NewSession() *Session {
	return &Session{
		hits: []Hit{},
	}
}

func (s *Session) Append(hits []Hit) {
	s.hits = append(s.hits, hits...)
	s.count = len(hits)
}

func (s *Session) Replace(hits []Hit) {
	s.hits = append([]Hit{}, hits...)
	s.count = len(hits)
}

// Hits returns a copy of the hit log.
func (s *Session) Hits() []Hit {
	return append([]Hit{}, s.hits...)
}

// Count returns the number of hits found by the most recent search.
func (s *Session) Count() int {
	return s.count
}

func (s *Session) Len() int {
	return len(s.hits)
}

func (s *Session) MarkLinked() {
	for i := range s.hits {
		s.hits[i].Linked = true
	}
}

func (s *Session) Clear() {
	s.hits = []Hit{}
	s.count = 0
}
