package listing

import (
	"context"
	"time"
)

// Eager auto-advance: after a page settles with more raw pages available and
// fewer visible items than the threshold, the engine schedules one delayed
// follow-up load. Heavy server-side filtering can otherwise leave a nearly
// empty first screen even though matching items exist on later pages. The
// chain re-arms after each settled page until the threshold is met, the raw
// stream is exhausted, or the query changes.

func (e *Engine) scheduleEagerLocked() {
	if e.eagerTimer != nil {
		e.eagerTimer.Stop()
		e.eagerTimer = nil
	}
	st := e.state
	if st == nil || e.inFlight || !st.moreAvailable {
		return
	}
	if len(st.display) >= e.cfg.EagerMinVisible {
		return
	}
	gen := e.generation
	e.eagerTimer = time.AfterFunc(e.cfg.EagerDelay, func() {
		e.eagerAdvance(gen)
	})
}

// eagerAdvance fires from the timer. Every precondition is re-checked under
// the lock because the world may have moved on during the delay; the
// generation check also kills timers orphaned by a query change.
func (e *Engine) eagerAdvance(gen uint64) {
	e.mu.Lock()
	st := e.state
	if st == nil || gen != e.generation || e.inFlight ||
		!st.moreAvailable || len(st.display) >= e.cfg.EagerMinVisible {
		e.mu.Unlock()
		return
	}
	q := st.query
	page := st.lastPage + 1
	e.mu.Unlock()

	if _, err := e.load(context.Background(), q, page, ModeAppend, gen, true); err != nil {
		e.logger.Debug("eager advance skipped", "page", page, "reason", err)
	}
}
