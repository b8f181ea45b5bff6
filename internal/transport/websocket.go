package transport

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/Venorrak/greenheatgd/internal/log"
)

// DefaultEndpoint is the public audience relay.
const DefaultEndpoint = "wss://relay.greenheat.app/channels"

// WebSocket receives audience frames from the relay over a persistent
// websocket. The connection is addressed by channel name as a sub-path of
// the relay endpoint and is receive-only; nothing is ever written back.
type WebSocket struct {
	frameBuffer

	url string

	conn      *websocket.Conn
	connected atomic.Bool

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// NewWebSocket creates a websocket transport for the given channel.
// bufferSize <= 0 uses DefaultBufferSize. Call Connect to dial.
func NewWebSocket(endpoint, channel string, bufferSize int) *WebSocket {
	return &WebSocket{
		frameBuffer: newFrameBuffer(bufferSize),
		url:         joinChannelURL(endpoint, channel),
		done:        make(chan struct{}),
	}
}

// URL returns the resolved channel URL.
func (w *WebSocket) URL() string { return w.url }

// Connect dials the relay and starts buffering inbound frames. It is
// called once; there is no reconnection, the host owns that policy.
func (w *WebSocket) Connect() error {
	conn, _, err := websocket.DefaultDialer.Dial(w.url, nil)
	if err != nil {
		return fmt.Errorf("relay dial: %w", err)
	}
	w.conn = conn
	w.connected.Store(true)

	go w.readLoop()
	return nil
}

// Connected reports whether the relay connection is live.
func (w *WebSocket) Connected() bool { return w.connected.Load() }

// Close shuts down the connection.
func (w *WebSocket) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	w.connected.Store(false)
	close(w.done)
	if w.conn != nil {
		w.conn.Close()
	}
}

func (w *WebSocket) readLoop() {
	defer func() {
		w.connected.Store(false)
		w.Close()
	}()
	for {
		msgType, data, err := w.conn.ReadMessage()
		if err != nil {
			select {
			case <-w.done:
			default:
				log.Warningf("relay read error: %v", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			log.Debug("ignoring non-text relay message")
			continue
		}
		w.push(data)
	}
}

func joinChannelURL(endpoint, channel string) string {
	base := strings.TrimSuffix(endpoint, "/")
	return base + "/" + url.PathEscape(channel)
}
