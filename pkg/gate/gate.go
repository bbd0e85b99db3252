package gate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/periodgate/pkg/rop"
	"github.com/ib-77/periodgate/pkg/rop/core"
)

// Gate admits one unit of work at a time.
//
// The zero Gate is ready to use. A Gate must not be copied after first use.
type Gate struct {
	name   string
	logger *slog.Logger

	mu sync.Mutex
	// current is closed when the occupant finishes; nil while the slot is free.
	current chan struct{}
}

type Option func(*Gate)

// WithLogger sets the logger used when the context passed to Run carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) {
		g.logger = logger
	}
}

// WithName labels the gate in log records.
func WithName(name string) Option {
	return func(g *Gate) {
		g.name = name
	}
}

func New(opts ...Option) *Gate {
	g := &Gate{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Busy reports whether work is currently running under the gate. The answer
// may be stale by the time the caller looks at it.
func (g *Gate) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current != nil
}

// acquire blocks until the caller owns the slot and returns the channel to
// close on release.
func (g *Gate) acquire() chan struct{} {
	for {
		g.mu.Lock()
		occupant := g.current
		if occupant == nil {
			done := make(chan struct{})
			g.current = done
			g.mu.Unlock()
			return done
		}
		g.mu.Unlock()

		<-occupant
	}
}

func (g *Gate) release(done chan struct{}) {
	g.mu.Lock()
	g.current = nil
	g.mu.Unlock()
	close(done)
}

// Run waits for the gate to be free, then calls work while holding it.
//
// The returned Result carries the value of work on success. A non-nil error
// from work is carried as is: context.Canceled and context.DeadlineExceeded
// produce a cancel Result, any other error a failure Result. If work panics,
// the gate is released before the panic continues up the caller's stack.
func Run[T any](ctx context.Context, g *Gate, work func(ctx context.Context) (T, error)) rop.Result[T] {
	log := core.Logger(ctx, g.logger)
	ticket := uuid.New()

	requested := time.Now()
	done := g.acquire()
	acquired := time.Now()
	log.Debug("gate.acquired", "gate", g.name, "ticket", ticket, "waited", acquired.Sub(requested))

	defer func() {
		g.release(done)
		log.Debug("gate.released", "gate", g.name, "ticket", ticket, "held", time.Since(acquired))
	}()

	out, err := work(ctx)
	if err != nil {
		log.Debug("gate.work_failed", "gate", g.name, "ticket", ticket, "err", err)
	}
	return rop.FromError(out, err)
}

// Do is Run for work that produces no value.
func Do(ctx context.Context, g *Gate, work func(ctx context.Context) error) error {
	return Run(ctx, g, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, work(ctx)
	}).Err()
}
