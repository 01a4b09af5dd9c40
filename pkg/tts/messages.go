package tts

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedControl is reported when an inbound text frame is not valid
// JSON.
var ErrMalformedControl = errors.New("tts: malformed control message")

// ControlKind discriminates the closed set of inbound streaming control
// messages.
type ControlKind int

const (
	KindUnrecognized ControlKind = iota
	KindStream
	KindFlush
	KindStop
)

// Control is one parsed inbound control message.
type Control struct {
	Kind ControlKind
	Text string // populated when Kind == KindStream
}

// ParseControl decodes one inbound text frame into the control union.
// Unknown types parse as KindUnrecognized so the caller can surface them.
func ParseControl(data []byte) (Control, error) {
	var msg struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return Control{}, fmt.Errorf("%w: %v", ErrMalformedControl, err)
	}

	switch msg.Type {
	case "stream":
		return Control{Kind: KindStream, Text: msg.Text}, nil
	case "flush":
		return Control{Kind: KindFlush}, nil
	case "stop":
		return Control{Kind: KindStop}, nil
	default:
		return Control{Kind: KindUnrecognized}, nil
	}
}

// ConnectAck announces the stream's audio parameters. The peer sends no
// text until it arrives.
type ConnectAck struct {
	Type string      `json:"type"`
	Data ConnectData `json:"data"`
}

// ConnectData carries the negotiated audio format.
type ConnectData struct {
	SampleRate     int  `json:"sample_rate"`
	Base64Encoding bool `json:"base64_encoding"`
}

// NewConnectAck builds the handshake for the given PCM sample rate. Audio
// travels as raw binary frames, never base64 text.
func NewConnectAck(sampleRate int) ConnectAck {
	return ConnectAck{
		Type: "connect",
		Data: ConnectData{SampleRate: sampleRate, Base64Encoding: false},
	}
}

// ErrorEvent is the outbound error message.
type ErrorEvent struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// NewErrorEvent formats an error for the client.
func NewErrorEvent(msg string) ErrorEvent {
	return ErrorEvent{Type: "error", Error: msg}
}
