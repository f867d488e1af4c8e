package effect

import (
	"maps"
	"slices"
)

// FrameQueue is a Scheduler for hosts that own their refresh loop: frames
// requested during one refresh run on the next call to Dispatch.
type FrameQueue struct {
	next    FrameID
	pending map[FrameID]func()
	due     map[FrameID]func()
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: map[FrameID]func(){}}
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending[q.next] = fn
	return q.next
}

// CancelFrame drops a request, including one due in the running Dispatch.
func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
	delete(q.due, id)
}

// Pending is the number of frames waiting for the next Dispatch.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Dispatch runs every frame requested before the call, in request order.
// Frames requested by those callbacks wait for the next Dispatch.
func (q *FrameQueue) Dispatch() {
	if len(q.pending) == 0 {
		return
	}
	ids := slices.Sorted(maps.Keys(q.pending))
	q.due, q.pending = q.pending, map[FrameID]func(){}
	for _, id := range ids {
		if fn, ok := q.due[id]; ok {
			delete(q.due, id)
			fn()
		}
	}
	q.due = nil
}

// Window is a Viewport whose size is pushed in by the host.
type Window struct {
	w, h int
	next int
	subs map[int]func(w, h int)
}

func NewWindow(w, h int) *Window {
	return &Window{w: w, h: h, subs: map[int]func(int, int){}}
}

func (win *Window) Size() (int, int) { return win.w, win.h }

func (win *Window) OnResize(fn func(w, h int)) func() {
	win.next++
	id := win.next
	win.subs[id] = fn
	return func() { delete(win.subs, id) }
}

// Subscribers is the number of live resize listeners.
func (win *Window) Subscribers() int {
	return len(win.subs)
}

// Set records a new size and notifies listeners if it changed.
func (win *Window) Set(w, h int) bool {
	if w == win.w && h == win.h {
		return false
	}
	win.w, win.h = w, h
	for _, id := range slices.Sorted(maps.Keys(win.subs)) {
		if fn, ok := win.subs[id]; ok {
			fn(w, h)
		}
	}
	return true
}
