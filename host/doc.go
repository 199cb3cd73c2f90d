// Package host declares the collaborators a cursor overlay needs from the
// chart it is attached to.
//
// The overlay never owns axes, series or the drawing surface. It reaches them
// through the interfaces in this package:
//
//   - [Axis]: data <-> canvas pixel conversion along one direction
//   - [Chart]: plot box geometry, numbered axes, series, redraw requests
//   - [EventSource]: pointer events on the overlay element and the pointer icon
//   - [Hooks]: lifecycle hooks driven by the chart
//
// Package chart provides a small implementation of all of them on top of gg.
//
// # Coordinates
//
// Canvas-relative coordinates have their origin at the top-left corner of the
// plot box, X increasing right and Y increasing down, like gg. Pointer events
// carry absolute (page) coordinates; [Chart.Offset] is the absolute position
// of the plot box, so subtracting it yields canvas-relative coordinates.
package host
