// Package viz renders comparison reports in the terminal.
//
// Static output is built from lipgloss metric cards and tables plus
// asciigraph line charts. [Tuner] is a Bubble Tea model that re-runs the
// comparison on every slider change.
//
// # Key Bindings
//
//	j/k - Select parameter
//	h/l - Decrease/increase by one step
//	H/L - Decrease/increase by ten steps
//	0   - Reset to defaults
//	T   - Cycle color themes
//	Tab - Toggle chart and table
//	q   - Quit
package viz
