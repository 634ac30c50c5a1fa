// Package pool maintains a fixed set of reusable backend sessions shared by
// all request workers. Borrowers block until an idle session is available,
// hold it exclusively for the duration of a lease, and return it on release.
// Sessions whose underlying connection has dropped are repaired on acquire.
package pool

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Conn is the subset of *pgx.Conn the pool manages and hands out to
// borrowers. It is an interface so tests can substitute an in-memory fake.
type Conn interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close(ctx context.Context) error
}

// Dialer establishes one backend connection. It is called Config.Size times
// at boot and once per repair attempt.
type Dialer func(ctx context.Context) (Conn, error)

// session is one reusable backend handle. It is owned either by the pool
// (idle, sitting in the channel) or by exactly one borrower (in-use).
type session struct {
	conn Conn
}

// Stats is a point-in-time view of pool accounting. Established counts
// sessions currently owned by the pool or a borrower; Failed counts sessions
// permanently lost to invalidation.
type Stats struct {
	Established int
	Idle        int
	Failed      int
}

// Pool is a bounded set of reusable backend sessions with blocking acquire.
//
// The idle queue is a buffered channel: a blocking receive is the wait
// discipline, and a buffered send on release wakes exactly one waiter when
// any exist. Wake order follows the runtime's receiver scheduling, which is
// starvation-free under continuous release traffic.
type Pool struct {
	idle        chan *session
	dial        Dialer
	log         *slog.Logger
	pingTimeout time.Duration

	mu          sync.Mutex
	established int
	failed      int
	closed      bool
}

// Option configures the pool.
type Option func(*Pool)

// WithLogger sets the logger used for repair and boot diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.log = l
		}
	}
}

// New establishes cfg.Size sessions and retains only the successful ones.
// Failed dials are logged and skipped; the pool is usable iff at least one
// session was established, which callers must check via IsConnected before
// serving traffic.
func New(ctx context.Context, cfg Config, dial Dialer, opts ...Option) (*Pool, error) {
	if cfg.Size <= 0 {
		return nil, ErrInvalidSize
	}
	if dial == nil {
		return nil, ErrNilDialer
	}

	p := &Pool{
		idle:        make(chan *session, cfg.Size),
		dial:        dial,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		pingTimeout: cfg.PingTimeout,
	}
	if p.pingTimeout <= 0 {
		p.pingTimeout = 2 * time.Second
	}
	for _, opt := range opts {
		opt(p)
	}

	for i := 0; i < cfg.Size; i++ {
		conn, err := dial(ctx)
		if err != nil {
			p.log.Warn("failed to establish backend session",
				slog.Int("session", i),
				slog.String("error", err.Error()),
			)
			continue
		}
		p.idle <- &session{conn: conn}
		p.established++
	}

	p.log.Info("session pool ready",
		slog.Int("established", p.established),
		slog.Int("requested", cfg.Size),
	)
	return p, nil
}

// IsConnected reports whether at least one session was established at boot.
func (p *Pool) IsConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.established+p.failed > 0
}

// Acquire blocks until an idle session is available and returns a lease on
// it. The session's liveness is probed first; a dead connection gets one
// repair attempt, and the lease is returned even if repair failed so the
// caller surfaces the subsequent operation failure instead of blocking here.
//
// Acquire is uninterruptible; use AcquireWithDeadline to bound the wait.
func (p *Pool) Acquire() *Lease {
	s := <-p.idle
	p.restore(s)
	return &Lease{pool: p, session: s}
}

// AcquireWithDeadline is Acquire with a bounded wait. It returns
// ErrAcquireTimeout if no session becomes idle within d.
func (p *Pool) AcquireWithDeadline(d time.Duration) (*Lease, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case s := <-p.idle:
		p.restore(s)
		return &Lease{pool: p, session: s}, nil
	case <-timer.C:
		return nil, ErrAcquireTimeout
	}
}

// restore probes the session and issues one repair if the probe fails. The
// repair result is intentionally unchecked: a still-dead connection fails
// cleanly on the next operation.
func (p *Pool) restore(s *session) {
	ctx, cancel := context.WithTimeout(context.Background(), p.pingTimeout)
	defer cancel()

	if err := s.conn.Ping(ctx); err == nil {
		return
	}

	p.log.Warn("backend session unhealthy, attempting repair")
	_ = s.conn.Close(ctx)

	conn, err := p.dial(ctx)
	if err != nil {
		p.log.Warn("session repair failed", slog.String("error", err.Error()))
		return
	}
	s.conn = conn
}

// release returns a session to the idle queue, waking at most one waiter.
func (p *Pool) release(s *session) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()

	if closed {
		ctx, cancel := context.WithTimeout(context.Background(), p.pingTimeout)
		defer cancel()
		_ = s.conn.Close(ctx)
		return
	}
	p.idle <- s
}

// discard permanently removes an invalidated session from the pool.
func (p *Pool) discard(s *session) {
	ctx, cancel := context.WithTimeout(context.Background(), p.pingTimeout)
	defer cancel()
	_ = s.conn.Close(ctx)

	p.mu.Lock()
	p.established--
	p.failed++
	p.mu.Unlock()

	p.log.Warn("backend session invalidated and discarded")
}

// Stats returns current pool accounting. At quiescent moments
// Idle + in-use leases = Established.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Established: p.established,
		Idle:        len(p.idle),
		Failed:      p.failed,
	}
}

// Healthcheck verifies the pool can serve a backend round trip. Intended for
// readiness probes; it borrows a session under a deadline so a saturated
// pool reports unhealthy instead of hanging the probe.
func (p *Pool) Healthcheck(ctx context.Context) error {
	if !p.IsConnected() {
		return ErrNotConnected
	}
	lease, err := p.AcquireWithDeadline(p.pingTimeout)
	if err != nil {
		return err
	}
	defer lease.Release()
	return lease.Conn().Ping(ctx)
}

// Close drains the idle queue and closes every idle session. It must be
// called after all borrowers have released their leases, which the server
// guarantees by shutting down the HTTP listener first. Sessions released
// after Close are closed instead of re-queued.
func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	for {
		select {
		case s := <-p.idle:
			_ = s.conn.Close(ctx)
		default:
			return nil
		}
	}
}
