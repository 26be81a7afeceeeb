package sim

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"suborbital-sim/internal/env"
)

type stateReq struct {
	reply chan Snapshot
}

type subscribeReq struct {
	ch chan Snapshot
}

// Engine is the frame driver around a Simulator. Run owns the simulator;
// every other method talks to it over channels.
type Engine struct {
	// Actor channels
	cmdCh       chan Command
	stateReqCh  chan stateReq
	subscribeCh chan subscribeReq
	unsubCh     chan chan Snapshot

	tickHz    float64
	maxDelta  float64
	constants Constants
	medium    env.Medium
	logger    *slog.Logger
	metrics   *engineMetrics
}

type Config struct {
	TickHz float64
	// MaxDelta caps the wall-clock seconds fed into one step, so a stalled
	// process does not hand the integrator a huge time step.
	MaxDelta float64

	Constants Constants
	Medium    env.Medium
	Logger    *slog.Logger
}

func New(cfg Config) (*Engine, error) {
	if cfg.TickHz <= 0 {
		cfg.TickHz = 60
	}
	if cfg.MaxDelta <= 0 {
		cfg.MaxDelta = 0.1
	}
	if cfg.Medium == nil {
		cfg.Medium = env.DefaultAtmosphere()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if err := cfg.Constants.Validate(); err != nil {
		return nil, err
	}
	em, err := newEngineMetrics()
	if err != nil {
		return nil, err
	}
	return &Engine{
		cmdCh:       make(chan Command, 128),
		stateReqCh:  make(chan stateReq, 32),
		subscribeCh: make(chan subscribeReq, 32),
		unsubCh:     make(chan chan Snapshot, 32),
		tickHz:      cfg.TickHz,
		maxDelta:    cfg.MaxDelta,
		constants:   cfg.Constants,
		medium:      cfg.Medium,
		logger:      cfg.Logger,
		metrics:     em,
	}, nil
}

// Constants returns the flight configuration.
func (e *Engine) Constants() Constants { return e.constants }

func (e *Engine) Submit(cmd Command) {
	select {
	case e.cmdCh <- cmd:
	default:
		e.logger.Warn("command dropped, queue full", "command", cmd.Type())
	}
}

func (e *Engine) GetState(ctx context.Context) (Snapshot, error) {
	req := stateReq{reply: make(chan Snapshot, 1)}
	select {
	case e.stateReqCh <- req:
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}

	select {
	case st := <-req.reply:
		return st, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

func (e *Engine) Subscribe(ctx context.Context) (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 32)

	select {
	case e.subscribeCh <- subscribeReq{ch: ch}:
	case <-ctx.Done():
		close(ch)
		return ch, func() {}
	}

	unsub := func() {
		select {
		case e.unsubCh <- ch:
		default:
		}
	}
	return ch, unsub
}

func (e *Engine) Run(ctx context.Context) error {
	// Actor-owned state
	now := time.Now()
	sim := NewSimulator(e.constants, e.medium)
	runID := ""

	subs := map[chan Snapshot]struct{}{}

	sim.OnTransition(func(tr Transition) {
		if tr.To == Launch {
			runID = uuid.NewString()
		}
		e.logger.Info("phase transition",
			"run", runID,
			"from", tr.From,
			"to", tr.To,
			"reason", tr.Reason,
			"altitude", tr.State.Altitude,
			"velocity", tr.State.VerticalVelocity,
			"t", tr.State.TotalTime,
		)
		e.metrics.recordTransition(ctx, tr)
	})

	buildSnapshot := func(ts time.Time) Snapshot {
		st := sim.Snapshot()
		st.RunID = runID
		st.TS = ts
		return st
	}

	publish := func(st Snapshot) {
		for ch := range subs {
			select {
			case ch <- st:
			default:
				// slow subscriber -> drop frame
			}
		}
	}

	tick := time.NewTicker(time.Duration(float64(time.Second) / e.tickHz))
	defer tick.Stop()

	e.logger.Info("flight engine started", "tickHz", e.tickHz, "timeFactor", e.constants.TimeFactor)

	for {
		select {
		case <-ctx.Done():
			for ch := range subs {
				close(ch)
			}
			e.logger.Info("flight engine stopped", "phase", sim.State().Phase)
			return nil

		case req := <-e.subscribeCh:
			subs[req.ch] = struct{}{}
			req.ch <- buildSnapshot(now)

		case ch := <-e.unsubCh:
			if _, ok := subs[ch]; ok {
				delete(subs, ch)
				close(ch)
			}

		case req := <-e.stateReqCh:
			req.reply <- buildSnapshot(now)

		case cmd := <-e.cmdCh:
			phase := sim.State().Phase
			switch cmd.Type() {
			case CmdStart:
				if !sim.Start() {
					e.logger.Warn("start ignored", "phase", phase)
				}

			case CmdReset:
				sim.Reset()

			case CmdTrigger:
				if !sim.Trigger() {
					e.logger.Debug("trigger ignored in flight", "phase", phase)
				}
			}
			publish(buildSnapshot(now))

		case t := <-tick.C:
			dt := t.Sub(now).Seconds()
			if dt <= 0 {
				dt = 1.0 / e.tickHz
			}
			if dt > e.maxDelta {
				e.logger.Debug("frame delta clamped", "dt", dt, "max", e.maxDelta)
				dt = e.maxDelta
			}
			now = t

			if sim.State().Phase.Active() {
				e.metrics.ticks.Add(ctx, 1)
			}
			sim.Step(dt)

			publish(buildSnapshot(now))
		}
	}
}
