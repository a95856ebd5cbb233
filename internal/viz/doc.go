// Package viz renders series sets in the terminal and hosts the interactive
// explorer.
//
//   - [Chart]: line charts through asciigraph, markers listed in the caption
//   - [Scatter]: braille canvas for planar traces (twist spiral, prime grid)
//   - [Heatmap]: shaded |ζ| over the critical strip
//   - [RenderSurface]: rotatable wireframe of the same strip
//   - [RunExplorer]: Bubble Tea explorer with live parameter sliders
//
// # Key Bindings
//
//	j/k   - Move selection
//	h/l   - Nudge the selected parameter and recompute
//	enter - Open a view / edit a value
//	t     - Cycle color themes
//	esc   - Back
//	q     - Quit
package viz
