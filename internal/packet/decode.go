package packet

import (
	"encoding/json"
	"fmt"
)

// Decode errors. Callers drop the offending frame and keep draining.
var (
	ErrMalformed    = fmt.Errorf("packet: malformed frame")
	ErrUnknownType  = fmt.Errorf("packet: unknown type")
	ErrMissingField = fmt.Errorf("packet: missing field")
)

// requiredNumbers and requiredBools are present on every packet kind.
var (
	requiredNumbers = []string{"x", "y", "time", "latency"}
	requiredBools   = []string{"alt", "ctrl", "shift"}
)

// Decode parses one UTF-8 JSON frame into a Packet. The payload is
// duck-typed on the wire, so it is read as a generic object first and
// validated field by field. An absent or unrecognized button is not an
// error; everything else missing is.
func Decode(data []byte) (*Packet, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	kind, err := decodeKind(raw)
	if err != nil {
		return nil, err
	}

	id, ok := stringField(raw, "id")
	if !ok {
		return nil, fmt.Errorf("%w: id", ErrMissingField)
	}

	pkt := &Packet{Kind: kind, ID: id}

	nums := make(map[string]float64, len(requiredNumbers))
	for _, name := range requiredNumbers {
		v, ok := numberField(raw, name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, name)
		}
		nums[name] = v
	}
	pkt.X = nums["x"]
	pkt.Y = nums["y"]
	pkt.Time = nums["time"]
	pkt.Latency = nums["latency"]

	bools := make(map[string]bool, len(requiredBools))
	for _, name := range requiredBools {
		v, ok := boolField(raw, name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, name)
		}
		bools[name] = v
	}
	pkt.Alt = bools["alt"]
	pkt.Ctrl = bools["ctrl"]
	pkt.Shift = bools["shift"]

	// Button is only meaningful for button-carrying kinds, and even then a
	// missing or unknown name just leaves the mask unset.
	if kind != KindHover {
		pkt.Button = decodeButton(raw)
	}

	return pkt, nil
}

func decodeKind(raw map[string]any) (Kind, error) {
	t, ok := stringField(raw, "type")
	if !ok {
		return "", fmt.Errorf("%w: type", ErrMissingField)
	}
	switch Kind(t) {
	case KindClick, KindHover, KindDrag, KindRelease:
		return Kind(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, t)
}

func decodeButton(raw map[string]any) Button {
	name, ok := stringField(raw, "button")
	if !ok {
		return ButtonNone
	}
	switch name {
	case "left":
		return ButtonLeft
	case "right":
		return ButtonRight
	case "middle":
		return ButtonMiddle
	}
	return ButtonNone
}

func stringField(raw map[string]any, name string) (string, bool) {
	v, ok := raw[name].(string)
	return v, ok
}

func numberField(raw map[string]any, name string) (float64, bool) {
	v, ok := raw[name].(float64)
	return v, ok
}

func boolField(raw map[string]any, name string) (bool, bool) {
	v, ok := raw[name].(bool)
	return v, ok
}
