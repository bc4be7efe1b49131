package playback

import (
	"time"

	"github.com/san-kum/leaflet/internal/trace"
)

// DefaultSpeed is the delay between automatic steps.
const DefaultSpeed = 1000 * time.Millisecond

type Status int

const (
	Idle Status = iota
	Ready
	Playing
	Paused
	Finished
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// State is the complete playback state. Cursor is the index of the next step
// to render, which equals the number of steps rendered since the last load
// or reset.
type State struct {
	Trace   *trace.Trace
	Cursor  int
	Playing bool
	Speed   time.Duration
	Status  Status
}

// NewState returns an idle state with the default speed.
func NewState() State {
	return State{Speed: DefaultSpeed, Status: Idle}
}

// Effect tells the owner of a State which step to render after a transition.
type Effect struct {
	Render bool
	Index  int
}

var none = Effect{Index: -1}

func render(i int) Effect { return Effect{Render: true, Index: i} }

// Load replaces the trace and renders its first step.
func Load(s State, t *trace.Trace) (State, Effect) {
	s.Trace = t
	s.Cursor = 0
	s.Playing = false
	s.Status = Ready
	if t.Len() == 0 {
		return s, none
	}
	s.Cursor = 1
	return s, render(0)
}

func Play(s State) State {
	if s.Trace.Len() == 0 {
		return s
	}
	if s.Status != Ready && s.Status != Paused {
		return s
	}
	s.Playing = true
	s.Status = Playing
	return s
}

func Pause(s State) State {
	if s.Status != Playing {
		return s
	}
	s.Playing = false
	s.Status = Paused
	return s
}

// Step renders the next step regardless of whether playback is running. At
// the end of the trace it moves to Finished and renders nothing.
func Step(s State) (State, Effect) {
	if s.Status == Idle || s.Trace.Len() == 0 {
		return s, none
	}
	return advance(s)
}

// Reset rewinds to the first step and stops automatic playback. An idle
// state has nothing to rewind and is returned unchanged.
func Reset(s State) (State, Effect) {
	if s.Status == Idle {
		return s, none
	}
	return Load(s, s.Trace)
}

// Tick is the automatic counterpart of Step; it only acts while playing.
func Tick(s State) (State, Effect) {
	if s.Status != Playing {
		return s, none
	}
	return advance(s)
}

// SetSpeed changes the interval used from the next tick on.
func SetSpeed(s State, ms int) (State, error) {
	if ms <= 0 {
		return s, &ContractError{Op: "set_speed", Value: ms, Wrapped: ErrInvalidSpeed}
	}
	s.Speed = time.Duration(ms) * time.Millisecond
	return s, nil
}

// Seek renders step i and continues from there. Playback keeps running if
// it was; otherwise the state becomes Paused.
func Seek(s State, i int) (State, Effect, error) {
	if i < 0 || i >= s.Trace.Len() {
		return s, none, &ContractError{Op: "seek", Value: i, Wrapped: ErrCursorRange}
	}
	s.Cursor = i + 1
	if s.Status != Playing {
		s.Status = Paused
	}
	return s, render(i), nil
}

func advance(s State) (State, Effect) {
	if s.Cursor >= s.Trace.Len() {
		s.Cursor = s.Trace.Len()
		s.Playing = false
		s.Status = Finished
		return s, none
	}
	i := s.Cursor
	s.Cursor++
	return s, render(i)
}
