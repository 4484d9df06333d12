package tracker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/realtime"
	"github.com/Bloodcipher/Amara/internal/realtime/bus"
	"github.com/Bloodcipher/Amara/internal/types"
)

// DefaultPollInterval matches the floor display refresh cadence.
const DefaultPollInterval = 15 * time.Second

// Store is the read side the merger refreshes from.
type Store interface {
	ReadJobCards(ctx context.Context) ([]*types.JobCardView, error)
	ReadUsers(ctx context.Context) ([]*types.User, error)
}

// Broadcaster receives the merger's outbound messages; *realtime.SSEHub
// satisfies it.
type Broadcaster interface {
	Broadcast(msg realtime.SSEMessage)
}

// Merger fuses two change sources into one consistent view: push events from
// the change bus and a periodic poll of storage. Push gives latency, poll
// gives convergence; either alone is incomplete. Every cycle ends with a
// fresh read of storage, so the summary never depends on event payloads.
type Merger struct {
	log      *logger.Logger
	store    Store
	bus      bus.Bus
	hub      Broadcaster
	feed     *Feed
	interval time.Duration

	live   atomic.Bool
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.RWMutex
	summary Summary
}

type MergerOption func(*Merger)

func WithPollInterval(d time.Duration) MergerOption {
	return func(m *Merger) {
		if d > 0 {
			m.interval = d
		}
	}
}

func NewMerger(baseLog *logger.Logger, store Store, b bus.Bus, hub Broadcaster, opts ...MergerOption) *Merger {
	m := &Merger{
		log:      baseLog.With("component", "TrackerMerger"),
		store:    store,
		bus:      b,
		hub:      hub,
		feed:     NewFeed(FeedCapacity),
		interval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start subscribes to the bus and launches the poll loop. Both halves share
// one context: Stop tears them down as a unit.
func (m *Merger) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	if m.bus != nil {
		err := m.bus.Subscribe(runCtx,
			func(ev realtime.ChangeEvent) { m.onPush(runCtx, ev) },
			func(s bus.Status) { m.onStatus(s) },
		)
		if err != nil {
			cancel()
			close(m.done)
			return err
		}
	}

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		m.pollLoop(gctx)
		return nil
	})
	go func() {
		_ = g.Wait()
		close(m.done)
	}()

	// Seed the snapshot so the first subscriber never sees an empty view.
	m.refresh(runCtx)
	return nil
}

// Stop cancels the subscription and poll loop together and waits for the
// poll loop to exit.
func (m *Merger) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	m.live.Store(false)
}

// Live reports whether the push channel is currently connected. The poll
// loop keeps the view converging either way.
func (m *Merger) Live() bool {
	return m.live.Load()
}

// Summary returns the latest aggregated view.
func (m *Merger) Summary() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.summary
}

// Activity returns the bounded feed, newest first.
func (m *Merger) Activity() []realtime.ChangeEvent {
	return m.feed.Snapshot()
}

func (m *Merger) onStatus(s bus.Status) {
	switch s {
	case bus.StatusSubscribed:
		m.live.Store(true)
		m.log.Info("Change bus connected")
	case bus.StatusDisconnected:
		m.live.Store(false)
		m.log.Warn("Change bus disconnected; poll continues")
	}
}

// onPush records the event and refreshes unconditionally. The payload is
// advisory: the refreshed storage read is what the summary is built from.
func (m *Merger) onPush(ctx context.Context, ev realtime.ChangeEvent) {
	m.feed.Prepend(ev)
	if m.hub != nil {
		m.hub.Broadcast(realtime.SSEMessage{
			Channel: realtime.ChannelTracker,
			Event:   realtime.SSEEventTrackerActivity,
			Data:    ev,
		})
	}
	m.refresh(ctx)
}

func (m *Merger) pollLoop(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.refresh(ctx)
		}
	}
}

// refresh rebuilds the summary from storage. Failures are logged and
// swallowed here so one bad read never kills the loop; the stale summary
// stands until the next cycle succeeds.
func (m *Merger) refresh(ctx context.Context) {
	cards, err := m.store.ReadJobCards(ctx)
	if err != nil {
		if ctx.Err() == nil {
			m.log.Warn("Tracker refresh failed reading job cards", "error", err)
		}
		return
	}
	users, err := m.store.ReadUsers(ctx)
	if err != nil {
		if ctx.Err() == nil {
			m.log.Warn("Tracker refresh failed reading users", "error", err)
		}
		return
	}

	summary := Aggregate(cards, users, time.Now())
	m.mu.Lock()
	m.summary = summary
	m.mu.Unlock()

	if m.hub != nil {
		m.hub.Broadcast(realtime.SSEMessage{
			Channel: realtime.ChannelTracker,
			Event:   realtime.SSEEventTrackerSnapshot,
			Data:    summary,
		})
	}
}
