// Package chart is a small line chart that implements the host interfaces
// a cursor overlay needs.
//
// It has numbered linear axes (x, x2, ... and y, y2, ...), a plot box
// inside padding, line series, a hook registry for plugins, pointer event
// dispatch and a redraw flag. Drawing goes through gg.
//
// A Chart does not run an event loop. The embedding program feeds pointer
// events with Dispatch and calls Draw when RedrawPending reports true.
package chart
