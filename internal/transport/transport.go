// Package transport provides the inbound frame sources the ingestion loop
// polls. A transport buffers frames as they arrive; the loop drains what
// is already buffered and never blocks.
package transport

import (
	"sync/atomic"

	"github.com/Venorrak/greenheatgd/internal/log"
)

// Transport is a non-blocking source of inbound UTF-8 frames.
type Transport interface {
	// Connected reports whether the underlying connection is live.
	Connected() bool
	// Available reports how many frames are buffered right now.
	Available() int
	// Next takes one buffered frame, or returns false without blocking.
	Next() ([]byte, bool)
}

// DefaultBufferSize is the per-connection inbound frame buffer.
const DefaultBufferSize = 256

// frameBuffer is the bounded buffer shared by transport implementations.
// Frames past capacity are dropped newest-first; the audience relay has no
// replay, so blocking the reader would only grow latency.
type frameBuffer struct {
	frames  chan []byte
	dropped atomic.Uint64
}

func newFrameBuffer(size int) frameBuffer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return frameBuffer{frames: make(chan []byte, size)}
}

func (b *frameBuffer) push(data []byte) {
	select {
	case b.frames <- data:
	default:
		b.dropped.Add(1)
		log.Debugf("frame buffer full, dropped frame (%d total)", b.dropped.Load())
	}
}

// Available reports the number of buffered frames.
func (b *frameBuffer) Available() int { return len(b.frames) }

// Next takes one buffered frame without blocking.
func (b *frameBuffer) Next() ([]byte, bool) {
	select {
	case data := <-b.frames:
		return data, true
	default:
		return nil, false
	}
}

// Dropped reports how many frames were discarded because the buffer was
// full.
func (b *frameBuffer) Dropped() uint64 { return b.dropped.Load() }
