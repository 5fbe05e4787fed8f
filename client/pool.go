package client

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/indigo-web/gurt/config"
	"github.com/indigo-web/utils/pool"
)

type Logger interface {
	Printf(fmt string, v ...any)
}

// DialFunc establishes a new session, which must already be handshaken.
type DialFunc func(ctx context.Context) (*Session, error)

// Pool keeps idle sessions to a single server for reuse. It is safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	idle    pool.ObjectPool[*Session]
	size    int
	dial    DialFunc
	cfg     config.Pool
	loggers []Logger
	now     func() time.Time
}

func NewPool(cfg *config.Config, dial DialFunc, loggers ...Logger) *Pool {
	if len(loggers) == 0 {
		loggers = append(loggers, log.Default())
	}

	return &Pool{
		idle:    pool.NewObjectPool[*Session](cfg.Pool.MaxSize),
		dial:    dial,
		cfg:     cfg.Pool,
		loggers: loggers,
		now:     time.Now,
	}
}

// Acquire returns an idle session if any is fresh enough, otherwise dials a new one.
// Sessions idling longer than the idle timeout are closed on the way, after the pool
// is unlocked.
func (p *Pool) Acquire(ctx context.Context) (*Session, error) {
	var (
		session *Session
		stale   []*Session
	)

	p.mu.Lock()
	for p.size > 0 {
		candidate := p.idle.Acquire()
		p.size--

		if p.now().Sub(candidate.releasedAt) > p.cfg.IdleTimeout {
			stale = append(stale, candidate)
			continue
		}

		session = candidate
		break
	}
	p.mu.Unlock()

	for _, s := range stale {
		p.drop(s, "idle timeout exceeded")
	}

	if session != nil {
		return session, nil
	}

	return p.dial(ctx)
}

// Release returns the session back. Broken sessions and sessions exceeding the pool
// capacity are closed.
func (p *Pool) Release(session *Session) {
	if !session.Alive() {
		p.drop(session, "broken")
		return
	}

	p.mu.Lock()
	if p.size >= p.cfg.MaxSize {
		p.mu.Unlock()
		p.drop(session, "pool is full")
		return
	}

	session.releasedAt = p.now()
	p.idle.Release(session)
	p.size++
	p.mu.Unlock()
}

// Idle returns the number of sessions currently kept.
func (p *Pool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.size
}

// Close closes all the idle sessions.
func (p *Pool) Close() {
	p.mu.Lock()
	sessions := make([]*Session, 0, p.size)
	for ; p.size > 0; p.size-- {
		sessions = append(sessions, p.idle.Acquire())
	}
	p.mu.Unlock()

	for _, session := range sessions {
		_ = session.Close()
	}
}

func (p *Pool) drop(session *Session, reason string) {
	_ = session.Close()

	for _, logger := range p.loggers {
		logger.Printf("gurt: pool: closing connection to %s: %s", session.Host(), reason)
	}
}
