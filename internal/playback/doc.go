// Package playback walks a precomputed trace forward one step at a time.
//
// Transport logic lives in pure transition functions over a [State] value
// ([Load], [Play], [Pause], [Step], [Reset], [Tick], [SetSpeed], [Seek]).
// Each returns the next state and an [Effect] naming the step to render, if
// any. [Controller] owns one State and forwards effects to a [RenderSink],
// which is the only side effect in the package.
//
// # Ticks
//
// The controller does not own a timer. The environment calls
// [Controller.Tick] roughly every [State.Speed] while playing; [Ticker] is a
// goroutine-based tick source for callers without an event loop of their
// own (the terminal player uses tea.Tick instead).
//
// # Thread Safety
//
// Controller methods are safe for concurrent use. Render sinks run outside
// the state lock, in transition order; they may read the controller but must
// not drive it.
package playback
