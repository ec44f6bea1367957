package controller

import "container/heap"

// TimerID identifies what a scheduled timer is for. At most one timer per id
// is pending at a time.
type TimerID int

const (
	TimerPlatformRestore TimerID = iota
	TimerAttackCooldown
)

func (id TimerID) String() string {
	switch id {
	case TimerPlatformRestore:
		return "platform_restore"
	case TimerAttackCooldown:
		return "attack_cooldown"
	}
	return "unknown"
}

type timer struct {
	id       TimerID
	deadline float64
	seq      uint64
	fn       func()
	index    int
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline == h[j].deadline {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline < h[j].deadline
}
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Timers runs one-shot callbacks on simulated time. Callbacks only fire from
// Advance, which the driver calls before any state machine runs, so they never
// interleave with a tick.
type Timers struct {
	now     float64
	seq     uint64
	queue   timerHeap
	pending map[TimerID]*timer
}

func NewTimers() *Timers {
	return &Timers{pending: make(map[TimerID]*timer)}
}

// Now returns the simulated time in seconds.
func (t *Timers) Now() float64 {
	if t == nil {
		return 0
	}
	return t.now
}

// After schedules fn to run delay seconds from now. A pending timer with the
// same id is replaced, so the last call wins and fn runs once.
func (t *Timers) After(id TimerID, delay float64, fn func()) {
	if t == nil || fn == nil {
		return
	}
	if t.pending == nil {
		t.pending = make(map[TimerID]*timer)
	}
	if old, ok := t.pending[id]; ok {
		heap.Remove(&t.queue, old.index)
	}
	t.seq++
	tm := &timer{id: id, deadline: t.now + delay, seq: t.seq, fn: fn}
	heap.Push(&t.queue, tm)
	t.pending[id] = tm
}

// Pending reports whether a timer with id is scheduled and the time left on it.
func (t *Timers) Pending(id TimerID) (float64, bool) {
	if t == nil {
		return 0, false
	}
	tm, ok := t.pending[id]
	if !ok {
		return 0, false
	}
	return tm.deadline - t.now, true
}

// Advance moves simulated time forward by dt and fires every due timer in
// deadline order.
func (t *Timers) Advance(dt float64) {
	if t == nil {
		return
	}
	t.now += dt
	for len(t.queue) > 0 {
		next := t.queue[0]
		if next.deadline > t.now+timeEpsilon {
			return
		}
		heap.Pop(&t.queue)
		delete(t.pending, next.id)
		next.fn()
	}
}
