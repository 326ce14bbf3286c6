package control

import "fmt"

// Segment holds one input for a fixed number of seconds.
type Segment struct {
	Duration float64 `yaml:"duration"`
	Input    `yaml:",inline"`
}

// Script replays a sequence of segments in place of a keyboard, for
// headless runs.
type Script struct {
	segments []Segment
	loop     bool
	total    float64
	elapsed  float64
}

// NewScript returns a script over segs. With loop set it restarts from the
// first segment once the last one ends.
func NewScript(segs []Segment, loop bool) (*Script, error) {
	var total float64
	for i, s := range segs {
		if !(s.Duration > 0) {
			return nil, fmt.Errorf("script segment %d: duration must be positive, got %v", i, s.Duration)
		}
		total += s.Duration
	}
	if loop && total == 0 {
		return nil, fmt.Errorf("looping script needs at least one segment")
	}
	return &Script{
		segments: append([]Segment(nil), segs...),
		loop:     loop,
		total:    total,
	}, nil
}

// Next returns the input active at the current script time, then advances
// the clock by dt.
func (s *Script) Next(dt float64) Input {
	in := s.At(s.elapsed)
	s.elapsed += dt
	if s.loop && s.elapsed >= s.total {
		s.elapsed -= s.total
	}
	return in
}

// At returns the input active at script time t. Past the end of a
// non-looping script it is the zero Input.
func (s *Script) At(t float64) Input {
	for _, seg := range s.segments {
		if t < seg.Duration {
			return seg.Input
		}
		t -= seg.Duration
	}
	return Input{}
}

// Done reports whether a non-looping script has run out.
func (s *Script) Done() bool {
	return !s.loop && s.elapsed >= s.total
}

// Duration returns the length of one pass through the script.
func (s *Script) Duration() float64 {
	return s.total
}
