// Package ingest drives the audience input pipeline: drain the transport,
// decode packets, fan out notifications, and (when enabled) synthesize
// local pointer events.
package ingest

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Venorrak/greenheatgd/internal/cursor"
	"github.com/Venorrak/greenheatgd/internal/log"
	"github.com/Venorrak/greenheatgd/internal/mapping"
	"github.com/Venorrak/greenheatgd/internal/packet"
	"github.com/Venorrak/greenheatgd/internal/synth"
	"github.com/Venorrak/greenheatgd/internal/transport"
)

// Sink receives synthesized pointer events. Delivery into the host's input
// system happens behind this boundary.
type Sink interface {
	Dispatch(*synth.Event) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(*synth.Event) error

// Dispatch calls f(ev).
func (f SinkFunc) Dispatch(ev *synth.Event) error { return f(ev) }

// Handler holds callbacks fired for each decoded packet, whether or not
// local synthesis is enabled. Release packets fire OnRelease and then
// OnReleaseLegacy with the identical packet; the legacy callback predates
// the split between press and release signals and is kept for consumers
// that still listen on it.
type Handler struct {
	OnClick         func(*packet.Packet)
	OnHover         func(*packet.Packet)
	OnDrag          func(*packet.Packet)
	OnRelease       func(*packet.Packet)
	OnReleaseLegacy func(*packet.Packet)
}

// Options configures an Ingestor.
type Options struct {
	Transport transport.Transport
	Mapper    mapping.Mapper
	Tracker   *cursor.Tracker
	Sink      Sink
	Handler   Handler

	// Detecting is the master enable; nothing is read off the transport
	// while it is false.
	Detecting bool
	// Simulating gates local pointer-event synthesis. Notifications fire
	// regardless.
	Simulating bool
}

// Ingestor owns one channel's ingestion pipeline. Tick is single-threaded;
// the flags may be flipped from other goroutines.
type Ingestor struct {
	transport transport.Transport
	mapper    mapping.Mapper
	tracker   *cursor.Tracker
	sink      Sink
	handler   Handler

	detecting  atomic.Bool
	simulating atomic.Bool
}

// New builds an Ingestor. A nil Tracker gets a default-capacity one.
func New(opts Options) *Ingestor {
	tracker := opts.Tracker
	if tracker == nil {
		tracker = cursor.NewTracker(0)
	}
	in := &Ingestor{
		transport: opts.Transport,
		mapper:    opts.Mapper,
		tracker:   tracker,
		sink:      opts.Sink,
		handler:   opts.Handler,
	}
	in.detecting.Store(opts.Detecting)
	in.simulating.Store(opts.Simulating)
	return in
}

// SetDetecting toggles the master enable.
func (in *Ingestor) SetDetecting(v bool) { in.detecting.Store(v) }

// Detecting reports the master enable.
func (in *Ingestor) Detecting() bool { return in.detecting.Load() }

// SetSimulating toggles local pointer-event synthesis.
func (in *Ingestor) SetSimulating(v bool) { in.simulating.Store(v) }

// Simulating reports whether local synthesis is enabled.
func (in *Ingestor) Simulating() bool { return in.simulating.Load() }

// SetMapper replaces the coordinate mapper, e.g. after a viewport resize.
func (in *Ingestor) SetMapper(m mapping.Mapper) { in.mapper = m }

// Tick runs one scheduler pass: drain the frames already buffered at
// entry, decode each, notify, and synthesize when enabled. Frames arriving
// mid-drain wait for the next tick. A disconnected or absent transport
// makes the tick a no-op.
func (in *Ingestor) Tick() {
	if !in.detecting.Load() {
		return
	}
	t := in.transport
	if t == nil || !t.Connected() {
		return
	}

	for n := t.Available(); n > 0; n-- {
		raw, ok := t.Next()
		if !ok {
			return
		}
		in.handleFrame(raw)
	}
}

// Run ticks the ingestor on interval until ctx is done.
func (in *Ingestor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			in.Tick()
		}
	}
}

func (in *Ingestor) handleFrame(raw []byte) {
	pkt, err := packet.Decode(raw)
	if err != nil {
		// Malformed audience traffic is routine; drop and keep draining.
		log.Debugf("dropping frame: %v", err)
		return
	}

	for _, notify := range in.notifications(pkt.Kind) {
		if notify != nil {
			notify(pkt)
		}
	}

	if !in.simulating.Load() {
		return
	}

	pos := in.mapper.Map(pkt.X, pkt.Y)
	pos, delta := in.tracker.Update(pkt.ID, pos)
	ev := synth.Synthesize(pkt, pos, delta)

	if in.sink == nil {
		return
	}
	if err := in.sink.Dispatch(ev); err != nil {
		log.Warningf("dispatch %s event: %v", ev.Kind, err)
	}
}

// notifications returns the 1–2 callbacks to fire for a packet kind.
// Release produces two entries so the legacy duplicate can never drift
// from the current one.
func (in *Ingestor) notifications(kind packet.Kind) []func(*packet.Packet) {
	h := in.handler
	switch kind {
	case packet.KindClick:
		return []func(*packet.Packet){h.OnClick}
	case packet.KindHover:
		return []func(*packet.Packet){h.OnHover}
	case packet.KindDrag:
		return []func(*packet.Packet){h.OnDrag}
	case packet.KindRelease:
		return []func(*packet.Packet){h.OnRelease, h.OnReleaseLegacy}
	}
	return nil
}
