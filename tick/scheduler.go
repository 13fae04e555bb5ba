// Package tick implements the priority ring-buffer used to order delayed
// block updates. It mirrors the queue structure of the backend this
// simulation core was distilled from (see DESIGN.md): a fixed ring of
// NumQueues slots, each slot holding one FIFO per Priority, with the
// current slot advanced one step per half tick.
package tick

// NumQueues is the size of the ring buffer. A delay must satisfy
// 0 <= delay < NumQueues; anything scheduled further out than that is a
// programming error in the caller, not a runtime condition to recover
// from.
const NumQueues = 32

// queues holds the per-priority FIFOs for a single ring slot.
type queues[T any] struct {
	buckets [numPriorities][]T
}

func (q *queues[T]) push(v T, p Priority) {
	q.buckets[p] = append(q.buckets[p], v)
}

// popFirst removes and returns the oldest entry from the highest-priority
// non-empty bucket, in Highest, Higher, High, Normal, NanoTick order.
func (q *queues[T]) popFirst() (T, bool) {
	for p := 0; p < numPriorities; p++ {
		if b := q.buckets[p]; len(b) > 0 {
			v := b[0]
			q.buckets[p] = b[1:]
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (q *queues[T]) empty() bool {
	for p := 0; p < numPriorities; p++ {
		if len(q.buckets[p]) > 0 {
			return false
		}
	}
	return true
}

func (q *queues[T]) clear() {
	for p := range q.buckets {
		q.buckets[p] = nil
	}
}

func (q *queues[T]) len() int {
	n := 0
	for p := range q.buckets {
		n += len(q.buckets[p])
	}
	return n
}

// Entry is one scheduled event, returned by Iter.
type Entry[T any] struct {
	Value    T
	Priority Priority
	// Delay is the number of half ticks from now until Value fires. A
	// Delay of 0 means Value is due in the slot currently being drained.
	Delay int
}

// Scheduler is a fixed-size ring of priority queues. The zero value is not
// usable; construct with NewScheduler.
//
// Scheduler is safe only for single-threaded use, matching the
// cooperative, non-concurrent tick loop it is designed to sit inside.
type Scheduler[T any] struct {
	slots [NumQueues]queues[T]
	// cur is the index of the slot representing "this tick" - the slot
	// that ScheduleHalfTick with delay 0 resolves to.
	cur int
}

// NewScheduler returns an empty Scheduler.
func NewScheduler[T any]() *Scheduler[T] {
	return &Scheduler[T]{}
}

// ScheduleTick schedules v to fire delayTicks whole game ticks from now,
// i.e. 2*delayTicks half ticks, at the given priority.
func (s *Scheduler[T]) ScheduleTick(v T, delayTicks int, p Priority) {
	s.ScheduleHalfTick(v, delayTicks*2, p)
}

// ScheduleHalfTick schedules v to fire delay half ticks from now, at the
// given priority. A delay of 0 is only valid with NanoTick priority: it
// means v fires later in the same slot currently being drained, after
// the event that scheduled it. Scheduling delay 0 at any other priority
// is a programming error and panics, since it would silently reorder
// same-tick causality.
//
// delay must be in [0, NumQueues). Larger delays are a programming error
// in the caller (no single block update in this simulation is ever
// delayed that far) and panic rather than silently wrapping.
func (s *Scheduler[T]) ScheduleHalfTick(v T, delay int, p Priority) {
	if delay == 0 && p != NanoTick {
		panic("tick: delay 0 can only be scheduled with NanoTick priority")
	}
	if delay < 0 || delay >= NumQueues {
		panic("tick: delay out of range")
	}
	idx := (s.cur + delay) % NumQueues
	s.slots[idx].push(v, p)
}

// QueuesThisTickMoveNext advances the ring by one half tick. It must be
// called once per half tick, after the slot for the tick just finished
// has been fully drained via PopOneThisTick.
func (s *Scheduler[T]) QueuesThisTickMoveNext() {
	s.slots[s.cur].clear()
	s.cur = (s.cur + 1) % NumQueues
}

// PopOneThisTick removes and returns the next due entry for the current
// half tick, in priority order. Entries scheduled with NanoTick priority
// during a prior call in the same half tick are visible to later calls,
// since they are pushed into the very slot being drained.
func (s *Scheduler[T]) PopOneThisTick() (T, bool) {
	return s.slots[s.cur].popFirst()
}

// ThisTickEmpty reports whether the current slot has nothing left to pop.
// Callers should keep calling PopOneThisTick (which may enqueue more
// NanoTick work into the same slot) until this returns true before
// advancing.
func (s *Scheduler[T]) ThisTickEmpty() bool {
	return s.slots[s.cur].empty()
}

// Contains reports whether v is anywhere in the scheduler, scanning every
// slot and bucket. This is O(total queued entries); the simulation calls
// it rarely enough (duplicate-schedule checks) that a full scan is
// preferable to keeping a second derived index in sync by hand. Callers
// needing a fast presence check for a high-volume key space (e.g. world
// positions) should maintain their own index alongside the scheduler
// instead of relying on this method in a hot path.
func (s *Scheduler[T]) Contains(v T, eq func(a, b T) bool) bool {
	for i := range s.slots {
		for p := range s.slots[i].buckets {
			for _, e := range s.slots[i].buckets[p] {
				if eq(e, v) {
					return true
				}
			}
		}
	}
	return false
}

// Clear empties every slot in the scheduler.
func (s *Scheduler[T]) Clear() {
	for i := range s.slots {
		s.slots[i].clear()
	}
}

// Len returns the total number of entries currently scheduled.
func (s *Scheduler[T]) Len() int {
	n := 0
	for i := range s.slots {
		n += s.slots[i].len()
	}
	return n
}

// Iter calls fn for every scheduled entry, in slot order starting from the
// current slot (delay 0) outward to delay NumQueues-1, and within a slot
// in priority order. Iteration order is meant for deterministic snapshotting
// and debugging, not for draining; use PopOneThisTick for that.
func (s *Scheduler[T]) Iter(fn func(Entry[T])) {
	for delay := 0; delay < NumQueues; delay++ {
		idx := (s.cur + delay) % NumQueues
		for p := 0; p < numPriorities; p++ {
			for _, v := range s.slots[idx].buckets[p] {
				fn(Entry[T]{Value: v, Priority: Priority(p), Delay: delay})
			}
		}
	}
}
