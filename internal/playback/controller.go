package playback

import (
	"sync"
	"time"

	"github.com/san-kum/leaflet/internal/trace"
)

// RenderSink consumes steps. It must not fail for any well-formed step.
// Render runs outside the controller lock, so a sink may read the
// controller (State, Current, Status) but must not call a transport method.
type RenderSink interface {
	Render(step trace.Step, cursor int)
}

// RenderFunc adapts a function to RenderSink.
type RenderFunc func(step trace.Step, cursor int)

func (f RenderFunc) Render(step trace.Step, cursor int) { f(step, cursor) }

// Controller applies transport calls to its State and renders the results.
type Controller struct {
	mu    sync.Mutex
	state State

	// Renders run after mu is released. Tickets issued under mu keep them
	// in transition order.
	renderMu   sync.Mutex
	renderCond *sync.Cond
	issued     uint64
	served     uint64
	sink       RenderSink
}

func NewController(sink RenderSink) *Controller {
	if sink == nil {
		sink = RenderFunc(func(trace.Step, int) {})
	}
	c := &Controller{state: NewState(), sink: sink}
	c.renderCond = sync.NewCond(&c.renderMu)
	return c
}

// Load takes ownership of a copy of t and renders its first step.
func (c *Controller) Load(t trace.Trace) {
	c.mu.Lock()
	c.commit(Load(c.state, &t))
}

func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Play(c.state)
}

func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Pause(c.state)
}

// Toggle pauses a playing controller and plays any other one.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Status == Playing {
		c.state = Pause(c.state)
		return
	}
	c.state = Play(c.state)
}

func (c *Controller) Step() {
	c.mu.Lock()
	c.commit(Step(c.state))
}

func (c *Controller) Reset() {
	c.mu.Lock()
	c.commit(Reset(c.state))
}

// Tick advances one step when playing and reports whether playback is
// still running afterwards.
func (c *Controller) Tick() bool {
	c.mu.Lock()
	s, eff := Tick(c.state)
	playing := s.Status == Playing
	c.commit(s, eff)
	return playing
}

func (c *Controller) SetSpeed(ms int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := SetSpeed(c.state, ms)
	if err != nil {
		return err
	}
	c.state = s
	return nil
}

func (c *Controller) Seek(i int) error {
	c.mu.Lock()
	s, eff, err := Seek(c.state, i)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.commit(s, eff)
	return nil
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Status() Status { return c.State().Status }

func (c *Controller) Speed() time.Duration { return c.State().Speed }

// Current returns the most recently rendered step, if any.
func (c *Controller) Current() (trace.Step, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.state.Cursor - 1
	if i < 0 || i >= c.state.Trace.Len() {
		return trace.Step{}, -1, false
	}
	return c.state.Trace.At(i), i, true
}

// commit stores s, releases mu and renders eff. The caller must hold mu.
func (c *Controller) commit(s State, eff Effect) {
	c.state = s
	if !eff.Render {
		c.mu.Unlock()
		return
	}
	step := s.Trace.At(eff.Index)
	ticket := c.issued
	c.issued++
	c.mu.Unlock()

	c.renderMu.Lock()
	defer c.renderMu.Unlock()
	for c.served != ticket {
		c.renderCond.Wait()
	}
	c.sink.Render(step, eff.Index)
	c.served++
	c.renderCond.Broadcast()
}
