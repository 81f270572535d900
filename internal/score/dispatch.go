package score

import (
	"context"
	"sync"
	"time"

	"gamejay/internal/scoreboard"
	"gamejay/internal/session"

	"github.com/rs/zerolog/log"
)

type op string

const (
	opIncrement op = "increment"
	opDecrement op = "decrement"
)

type command struct {
	op       op
	ref      session.ChatRef
	playerID string
}

const (
	dispatchBuffer  = 256
	dispatchTimeout = 10 * time.Second
)

// dispatcher drains scoreboard commands on a single worker, so external
// mutations apply in the order results were admitted. Calls are
// at-most-once: failures are logged and dropped, never retried.
type dispatcher struct {
	adapter scoreboard.Adapter
	cmds    chan command

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

func newDispatcher(adapter scoreboard.Adapter) *dispatcher {
	return &dispatcher{
		adapter: adapter,
		cmds:    make(chan command, dispatchBuffer),
		done:    make(chan struct{}),
	}
}

func (d *dispatcher) start() {
	d.startOnce.Do(func() {
		d.wg.Add(1)
		go d.worker()
	})
}

func (d *dispatcher) stop() {
	d.stopOnce.Do(func() {
		close(d.done)
		d.wg.Wait()
	})
}

// enqueue never blocks the caller; a full buffer drops the command with an
// error log instead of stalling session mutations.
func (d *dispatcher) enqueue(cmd command) {
	select {
	case d.cmds <- cmd:
	default:
		log.Error().Str("op", string(cmd.op)).Str("player", cmd.playerID).Msg("scoreboard queue full, command dropped")
	}
}

func (d *dispatcher) worker() {
	defer d.wg.Done()
	for {
		select {
		case <-d.done:
			return
		case cmd := <-d.cmds:
			d.run(cmd)
		}
	}
}

func (d *dispatcher) run(cmd command) {
	if d.adapter == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	var err error
	switch cmd.op {
	case opIncrement:
		err = scoreboard.Increment(ctx, d.adapter, cmd.ref, cmd.playerID)
	case opDecrement:
		err = scoreboard.Decrement(ctx, d.adapter, cmd.ref, cmd.playerID)
	}
	if err == nil {
		return
	}
	if scoreboard.IsNotModified(err) {
		log.Warn().Str("player", cmd.playerID).Msg("score not modified")
		return
	}
	log.Error().Err(err).Str("op", string(cmd.op)).Str("player", cmd.playerID).Msg("scoreboard update failed")
}
