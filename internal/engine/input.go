package engine

import (
	"github.com/designspace/designspace/internal/geometry"
	"github.com/designspace/designspace/internal/interact"
)

// PointerDown starts a drag when pos, in chart-local coordinates at scale 1,
// is on a handle and button is the primary button.
func (e *Engine) PointerDown(pos geometry.Point, button interact.Button) (interact.Target, bool) {
	target, ok := e.controller.HandleAt(pos)
	if !ok {
		return interact.Target{}, false
	}
	return target, e.controller.DragStart(target, button)
}

// BeginDrag starts a drag on a handle the presentation layer identified itself.
func (e *Engine) BeginDrag(target interact.Target, button interact.Button) bool {
	return e.controller.DragStart(target, button)
}

// PointerMove applies the level under pos to the dragged handle. It reports
// whether the chart changed and needs re-rendering. Nothing is recorded
// until PointerUp.
func (e *Engine) PointerMove(pos geometry.Point) bool {
	return e.controller.DragMove(pos)
}

// PointerUp ends the drag and records it as one history entry.
func (e *Engine) PointerUp() bool {
	return e.controller.DragEnd()
}

// Dragging reports the handle being dragged, if any.
func (e *Engine) Dragging() (interact.Target, bool) {
	return e.controller.Dragging()
}

// KeyDown handles a key press on a focused handle. Arrow keys move the
// handle one level and record the change immediately.
func (e *Engine) KeyDown(target interact.Target, key string) bool {
	step, ok := interact.StepForKey(key)
	if !ok {
		return false
	}
	return e.controller.KeyStep(target, step)
}

// Shortcut handles a global key combination. It reports whether the key
// was an undo or redo shortcut, whether or not there was anything to undo.
func (e *Engine) Shortcut(key string, mod, shift bool) bool {
	switch interact.ShortcutFor(key, mod, shift) {
	case interact.Undo:
		e.Undo()
		return true
	case interact.Redo:
		e.Redo()
		return true
	}
	return false
}
