// Package thumb provides a shared layer of drag handles ("thumbs").
//
// A Layer is identified by a container key and shared by every chart drawn
// in that container. Acquire creates it on first use and hands the same
// layer to later callers; each Acquire is paired with a Release, and the
// last Release drops the layer.
//
// # Dragging
//
// Press starts a drag when the point lies inside a thumb. Drag moves the
// active thumb, passing the new point through the thumb's Constraint, and
// End finishes the drag. Subscribers receive MoveStart, Move and MoveEnd
// events and identify their thumbs through Thumb.Owner.
//
// # Coordinates
//
// The layer does not interpret coordinates. Charts sharing a layer must use
// the same space, usually page coordinates.
package thumb
