package alchemy

import "errors"

// DragController turns pointer gestures into store moves.
type DragController struct {
	store *Store

	active  bool
	id      ElementID
	offsetX float64
	offsetY float64

	// pointer position of the last StartDrag or applied Drag
	lastX, lastY float64
}

// NewDragController binds a controller to store.
func NewDragController(store *Store) *DragController {
	return &DragController{store: store}
}

// StartDrag grabs the top-most tile under (x, y).
func (d *DragController) StartDrag(x, y float64) bool {
	e, ok := d.store.ElementAt(x, y)
	if !ok {
		d.active = false
		return false
	}
	d.active = true
	d.id = e.ID
	d.offsetX = x - e.Left
	d.offsetY = y - e.Top
	d.lastX, d.lastY = x, y
	return true
}

// Drag moves the grabbed tile so the pointer keeps its grip offset. Moves that
// would leave the board are rejected and the tile stays where it was. When
// the tile is consumed by a combination the drag ends. A pointer that has not
// moved since the last call leaves the tile alone.
func (d *DragController) Drag(x, y float64) (*Combination, error) {
	if !d.active || (x == d.lastX && y == d.lastY) {
		return nil, nil
	}
	d.lastX, d.lastY = x, y
	combo, err := d.store.SetNewPosition(d.id, x-d.offsetX, y-d.offsetY)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			d.active = false
		}
		return nil, err
	}
	if combo != nil {
		d.active = false
	}
	return combo, nil
}

// EndDrag releases the grabbed tile.
func (d *DragController) EndDrag() {
	d.active = false
}

// Dragging returns the grabbed tile id, if any.
func (d *DragController) Dragging() (ElementID, bool) {
	return d.id, d.active
}
