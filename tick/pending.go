package tick

import "github.com/brentp/intintmap"

// PendingSet is a dense presence counter keyed by a packed int64 (such as
// cube.Pos.Pack()). It backs PendingTickAt-style queries, where the
// scheduler's own Contains is deliberately O(total queued) and too slow
// to call once per neighbour update.
//
// Deletion from intintmap's open-addressing table isn't cheap, so
// PendingSet keeps the key resident and tracks a refcount instead:
// repeated schedules at the same key increment it, and firing decrements
// it back towards zero. A key is "pending" exactly while its count is
// positive.
type PendingSet struct {
	counts *intintmap.Map
}

// NewPendingSet returns an empty PendingSet sized for roughly capacity
// distinct keys.
func NewPendingSet(capacity int) *PendingSet {
	return &PendingSet{counts: intintmap.New(capacity, 0.75)}
}

// Add records one more pending schedule for key.
func (p *PendingSet) Add(key int64) {
	cur, _ := p.counts.Get(key)
	p.counts.Put(key, cur+1)
}

// Remove records that one pending schedule for key has fired. It is a
// no-op if key was never added.
func (p *PendingSet) Remove(key int64) {
	cur, ok := p.counts.Get(key)
	if !ok || cur <= 0 {
		return
	}
	p.counts.Put(key, cur-1)
}

// Contains reports whether key currently has at least one pending
// schedule.
func (p *PendingSet) Contains(key int64) bool {
	cur, ok := p.counts.Get(key)
	return ok && cur > 0
}
