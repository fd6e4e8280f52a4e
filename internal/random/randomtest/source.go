// Package randomtest provides scripted random sources for deterministic tests.
package randomtest

// Zero is a source whose every draw is the lowest possible value.
type Zero struct{}

// Intn always returns 0.
func (Zero) Intn(int) int { return 0 }

// Float64 always returns 0.
func (Zero) Float64() float64 { return 0 }

// Scripted replays queued values and falls back to zero once a queue is
// drained. Int values are reduced modulo n so they always satisfy the
// Intn contract.
type Scripted struct {
	Ints   []int
	Floats []float64

	IntCalls   int
	FloatCalls int
}

// Intn returns the next queued int modulo n.
func (s *Scripted) Intn(n int) int {
	s.IntCalls++
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Float64 returns the next queued float.
func (s *Scripted) Float64() float64 {
	s.FloatCalls++
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
