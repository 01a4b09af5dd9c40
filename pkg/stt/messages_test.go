package stt

import (
	"errors"
	"testing"

	"github.com/voicegw/salute-bridge/pkg/salute"
)

func TestParseControl(t *testing.T) {
	t.Run("start with defaults", func(t *testing.T) {
		ctrl, err := ParseControl([]byte(`{"type":"start"}`))
		if err != nil {
			t.Fatalf("ParseControl: %v", err)
		}
		if ctrl.Kind != KindStart {
			t.Fatalf("Kind = %v, want KindStart", ctrl.Kind)
		}
		if ctrl.Start.Language != "ru-RU" {
			t.Errorf("Language = %q, want ru-RU", ctrl.Start.Language)
		}
		if ctrl.Start.SampleRate != 8000 {
			t.Errorf("SampleRate = %d, want 8000", ctrl.Start.SampleRate)
		}
		if !ctrl.Start.InterimResults {
			t.Error("InterimResults should default to true")
		}
		if len(ctrl.Start.Hints) != 0 {
			t.Errorf("Hints = %v, want empty", ctrl.Start.Hints)
		}
	})

	t.Run("start with explicit fields", func(t *testing.T) {
		raw := `{"type":"start","language":"en-US","sampleRateHz":16000,"interimResults":false,"options":{"hints":["alpha","bravo"]}}`
		ctrl, err := ParseControl([]byte(raw))
		if err != nil {
			t.Fatalf("ParseControl: %v", err)
		}
		if ctrl.Start.Language != "en-US" {
			t.Errorf("Language = %q, want en-US", ctrl.Start.Language)
		}
		if ctrl.Start.SampleRate != 16000 {
			t.Errorf("SampleRate = %d, want 16000", ctrl.Start.SampleRate)
		}
		if ctrl.Start.InterimResults {
			t.Error("InterimResults = true, want false")
		}
		if len(ctrl.Start.Hints) != 2 || ctrl.Start.Hints[0] != "alpha" {
			t.Errorf("Hints = %v, want [alpha bravo]", ctrl.Start.Hints)
		}
	})

	t.Run("stop", func(t *testing.T) {
		ctrl, err := ParseControl([]byte(`{"type":"stop"}`))
		if err != nil {
			t.Fatalf("ParseControl: %v", err)
		}
		if ctrl.Kind != KindStop {
			t.Errorf("Kind = %v, want KindStop", ctrl.Kind)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		ctrl, err := ParseControl([]byte(`{"type":"resume"}`))
		if err != nil {
			t.Fatalf("ParseControl: %v", err)
		}
		if ctrl.Kind != KindUnrecognized {
			t.Errorf("Kind = %v, want KindUnrecognized", ctrl.Kind)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseControl([]byte(`{not json`))
		if !errors.Is(err, ErrMalformedControl) {
			t.Errorf("err = %v, want ErrMalformedControl", err)
		}
	})
}

func TestNewTranscriptionEvent(t *testing.T) {
	t.Run("final follows end of utterance", func(t *testing.T) {
		evt := NewTranscriptionEvent(salute.RecognitionResult{
			Text:           "привет мир",
			Confidence:     0.87,
			EndOfUtterance: true,
		}, "ru-RU")

		if evt.Type != "transcription" {
			t.Errorf("Type = %q", evt.Type)
		}
		if !evt.IsFinal {
			t.Error("IsFinal = false for end-of-utterance result")
		}
		if len(evt.Alternatives) != 1 || evt.Alternatives[0].Transcript != "привет мир" {
			t.Errorf("Alternatives = %v", evt.Alternatives)
		}
		if evt.Alternatives[0].Confidence != 0.87 {
			t.Errorf("Confidence = %v, want 0.87", evt.Alternatives[0].Confidence)
		}
		if evt.Channel != 1 {
			t.Errorf("Channel = %d, want 1", evt.Channel)
		}
	})

	t.Run("partial result is not final", func(t *testing.T) {
		evt := NewTranscriptionEvent(salute.RecognitionResult{Text: "прив"}, "ru-RU")
		if evt.IsFinal {
			t.Error("IsFinal = true for partial result")
		}
	})
}

func TestStartDirectiveRecognitionConfig(t *testing.T) {
	d := StartDirective{
		Language:       "en-US",
		SampleRate:     16000,
		InterimResults: false,
		Hints:          []string{"jambonz"},
	}
	cfg := d.RecognitionConfig()
	if cfg.Language != "en-US" || cfg.SampleRate != 16000 || cfg.PartialResults || len(cfg.Hints) != 1 {
		t.Errorf("RecognitionConfig = %+v", cfg)
	}
}
