package transport

import (
	"github.com/pion/webrtc/v4"
)

// DataChannel adapts a negotiated WebRTC data channel to the Transport
// interface, for hosts that relay audience input peer-to-peer instead of
// through the websocket relay. Channel negotiation belongs to the host;
// this adapter only buffers what arrives.
type DataChannel struct {
	frameBuffer

	dc *webrtc.DataChannel
}

// NewDataChannel wraps an already-negotiated data channel. bufferSize <= 0
// uses DefaultBufferSize.
func NewDataChannel(dc *webrtc.DataChannel, bufferSize int) *DataChannel {
	d := &DataChannel{
		frameBuffer: newFrameBuffer(bufferSize),
		dc:          dc,
	}
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		d.push(msg.Data)
	})
	return d
}

// Connected reports whether the data channel is open.
func (d *DataChannel) Connected() bool {
	return d.dc.ReadyState() == webrtc.DataChannelStateOpen
}
