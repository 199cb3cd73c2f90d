// Package legend keeps a table of cursor values and draws it as a panel.
//
// A Legend subscribes to a plot's change notifications. After every overlay
// redraw it holds one row per visible cursor with the cursor's data
// position and its value on each series.
package legend
