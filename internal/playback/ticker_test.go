package playback

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/san-kum/leaflet/internal/trace"
)

type safeSink struct {
	mu      sync.Mutex
	cursors []int
}

func (s *safeSink) Render(_ trace.Step, cursor int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursors = append(s.cursors, cursor)
}

func (s *safeSink) snapshot() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.cursors...)
}

func TestTickerPlaysToEnd(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sink := &safeSink{}
	c := NewController(sink)
	c.Load(*makeTrace(5))
	require.NoError(t, c.SetSpeed(1))
	c.Play()

	err := NewTicker(c).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Finished, c.Status())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, sink.snapshot())
}

func TestTickerStopsOnPause(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c := NewController(nil)
	c.Load(*makeTrace(1000))
	require.NoError(t, c.SetSpeed(1))
	c.Play()

	tk := NewTicker(c)
	require.NoError(t, tk.Start(context.Background()))
	time.Sleep(10 * time.Millisecond)
	c.Pause()

	select {
	case <-tk.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("ticker did not exit after pause")
	}
	assert.Equal(t, Paused, c.Status())
}

func TestTickerContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c := NewController(nil)
	c.Load(*makeTrace(10))
	c.Play()

	ctx, cancel := context.WithCancel(context.Background())
	tk := NewTicker(c)
	require.NoError(t, tk.Start(ctx))
	cancel()
	tk.Stop()

	assert.Equal(t, Playing, c.Status(), "cancelling the tick source does not pause playback")
}

func TestTickerStopIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c := NewController(nil)
	c.Load(*makeTrace(10))
	c.Play()

	tk := NewTicker(c)
	tk.Stop()
	tk.Stop()

	require.NoError(t, tk.Start(context.Background()))
	<-tk.Done()
	tk.Stop()
}

func TestTickerSingleUse(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c := NewController(nil)
	tk := NewTicker(c)
	require.NoError(t, tk.Run(context.Background()))
	assert.True(t, errors.Is(tk.Run(context.Background()), ErrTickerReused))
	assert.True(t, errors.Is(tk.Start(context.Background()), ErrTickerReused))
}

func TestTickerStopRacingStart(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	for i := 0; i < 100; i++ {
		c := NewController(nil)
		c.Load(*makeTrace(1000))
		require.NoError(t, c.SetSpeed(1))
		c.Play()

		tk := NewTicker(c)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, tk.Start(context.Background()))
		}()
		go func() {
			defer wg.Done()
			tk.Stop()
		}()
		wg.Wait()

		// Whichever ran first, no loop may outlive Stop.
		tk.Stop()
		select {
		case <-tk.Done():
		default:
			t.Fatalf("iteration %d: ticker loop still running after Stop", i)
		}
	}
}

func TestTickerStoppedBeforeRun(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c := NewController(nil)
	c.Load(*makeTrace(10))
	c.Play()

	tk := NewTicker(c)
	tk.Stop()
	require.NoError(t, tk.Run(context.Background()))
	assert.Equal(t, 1, c.State().Cursor, "a stopped ticker must not tick")
}
