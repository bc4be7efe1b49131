// Package viz renders playback steps in the terminal.
//
//   - [TextSink]: plain text, one block per rendered step
//   - [Player]: interactive Bubble Tea model around a playback controller
//   - Theme selection with 3 built-in colour schemes
//
// # Key Bindings
//
//	Space   - Play/Pause
//	N/Right - Step forward
//	R       - Reset to the first step
//	+/-     - Faster/slower by 100ms
//	T       - Cycle colour themes
//	?       - Toggle full help
//	Q       - Quit
package viz
