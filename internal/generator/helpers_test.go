package generator

import "fmt"

// scriptedSource replays a fixed sequence of draws. Each value must be in
// range for the IntN call that consumes it.
type scriptedSource struct {
	ints   []int
	next   int
	street string
	state  string
	zip    string
}

func (s *scriptedSource) IntN(n int) int {
	if s.next >= len(s.ints) {
		panic(fmt.Sprintf("scriptedSource: draw %d requested but only %d scripted", s.next+1, len(s.ints)))
	}
	v := s.ints[s.next]
	s.next++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scriptedSource: value %d out of range [0, %d)", v, n))
	}
	return v
}

func (s *scriptedSource) Street() string { return s.street }
func (s *scriptedSource) State() string  { return s.state }
func (s *scriptedSource) Zip() string    { return s.zip }
