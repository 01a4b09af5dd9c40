package stt

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/voicegw/salute-bridge/pkg/salute"
)

// ErrMalformedControl is reported when an inbound text frame is not valid
// JSON.
var ErrMalformedControl = errors.New("stt: malformed control message")

// Session defaults applied when the start directive omits a field.
const (
	DefaultLanguage   = "ru-RU"
	DefaultSampleRate = 8000
)

// ControlKind discriminates the closed set of inbound control messages.
type ControlKind int

const (
	KindUnrecognized ControlKind = iota
	KindStart
	KindStop
)

// Control is one parsed inbound control message.
type Control struct {
	Kind  ControlKind
	Start StartDirective // populated when Kind == KindStart
}

// StartDirective carries the session parameters of a start message, with
// defaults already applied.
type StartDirective struct {
	Language       string
	SampleRate     int
	InterimResults bool
	Hints          []string
}

// RecognitionConfig translates the directive into provider options.
func (d StartDirective) RecognitionConfig() salute.RecognitionConfig {
	return salute.RecognitionConfig{
		Language:       d.Language,
		SampleRate:     d.SampleRate,
		PartialResults: d.InterimResults,
		Hints:          d.Hints,
	}
}

// controlMessage is the raw wire shape shared by every control message.
type controlMessage struct {
	Type           string `json:"type"`
	Language       string `json:"language"`
	SampleRateHz   int    `json:"sampleRateHz"`
	InterimResults *bool  `json:"interimResults"`
	Options        struct {
		Hints []string `json:"hints"`
	} `json:"options"`
}

// ParseControl decodes one inbound text frame into the control union.
// Unknown types parse as KindUnrecognized, never as an error silently
// dropped.
func ParseControl(data []byte) (Control, error) {
	var msg controlMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return Control{}, fmt.Errorf("%w: %v", ErrMalformedControl, err)
	}

	switch msg.Type {
	case "start":
		d := StartDirective{
			Language:       msg.Language,
			SampleRate:     msg.SampleRateHz,
			InterimResults: true,
			Hints:          msg.Options.Hints,
		}
		if d.Language == "" {
			d.Language = DefaultLanguage
		}
		if d.SampleRate == 0 {
			d.SampleRate = DefaultSampleRate
		}
		if msg.InterimResults != nil {
			d.InterimResults = *msg.InterimResults
		}
		return Control{Kind: KindStart, Start: d}, nil
	case "stop":
		return Control{Kind: KindStop}, nil
	default:
		return Control{Kind: KindUnrecognized}, nil
	}
}

// Alternative is one transcription hypothesis in the outbound event format.
type Alternative struct {
	Transcript string  `json:"transcript"`
	Confidence float32 `json:"confidence"`
}

// TranscriptionEvent is the outbound transcription message.
type TranscriptionEvent struct {
	Type         string        `json:"type"`
	IsFinal      bool          `json:"is_final"`
	Alternatives []Alternative `json:"alternatives"`
	Language     string        `json:"language"`
	Channel      int           `json:"channel"`
}

// NewTranscriptionEvent formats one provider result. is_final reflects the
// provider's end-of-utterance flag; several final results can occur within
// one session.
func NewTranscriptionEvent(res salute.RecognitionResult, language string) TranscriptionEvent {
	return TranscriptionEvent{
		Type:    "transcription",
		IsFinal: res.EndOfUtterance,
		Alternatives: []Alternative{
			{Transcript: res.Text, Confidence: res.Confidence},
		},
		Language: language,
		Channel:  1,
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
