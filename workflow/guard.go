package workflow

import "go.uber.org/atomic"

// submitGuard allows one outstanding submission at a time.
type submitGuard struct {
	busy atomic.Bool
}

func (g *submitGuard) acquire() error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	return nil
}

func (g *submitGuard) release() {
	g.busy.Store(false)
}

func (g *submitGuard) submitting() bool {
	return g.busy.Load()
}
