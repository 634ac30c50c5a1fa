package pool

import "sync/atomic"

// Lease is a scoped, exclusive handle on one pooled session. The holder must
// call Release on every exit path; deferring it immediately after Acquire
// guarantees the session is returned exactly once even on panic. Release is
// idempotent, so a double release is harmless rather than corrupting the
// idle queue.
type Lease struct {
	pool    *Pool
	session *session
	done    atomic.Bool
	invalid bool
}

// Conn exposes the leased backend connection. Valid until Release.
func (l *Lease) Conn() Conn {
	return l.session.conn
}

// Release returns the session to the pool, waking at most one waiter.
// Subsequent calls are no-ops. If the lease was invalidated, the session is
// closed and permanently removed from the pool instead.
func (l *Lease) Release() {
	if !l.done.CompareAndSwap(false, true) {
		return
	}
	if l.invalid {
		l.pool.discard(l.session)
		return
	}
	l.pool.release(l.session)
}

// Invalidate marks the leased session as permanently failed, for use after
// observing corruption the repair probe cannot detect. The session will not
// return to the pool on Release. Must be called by the lease holder before
// Release; the lease's single-owner discipline makes this safe without
// additional locking.
func (l *Lease) Invalidate() {
	l.invalid = true
}
