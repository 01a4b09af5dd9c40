package tts

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/voicegw/salute-bridge/internal/metrics"
	"github.com/voicegw/salute-bridge/pkg/salute"
)

func newTestService(synth Synthesizer) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(StaticTokens{Token: "tok"}, synth, metrics.NewForTest(), logger)
}

func TestSynthesizeConcatenatesChunks(t *testing.T) {
	synth := &MockSynthesizer{
		StreamSynthesizeFunc: func(ctx context.Context, token string, spec salute.SynthesisSpec) (salute.SynthesisStream, error) {
			return &ChunkStream{Chunks: [][]byte{[]byte("RIFF"), []byte("data"), []byte("tail")}}, nil
		},
	}
	svc := newTestService(synth)

	audio, err := svc.Synthesize(context.Background(), Request{Text: "привет"})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if string(audio) != "RIFFdatatail" {
		t.Errorf("audio = %q, want chunks concatenated in arrival order", audio)
	}
}

func TestSynthesizeDefaults(t *testing.T) {
	synth := &MockSynthesizer{}
	svc := newTestService(synth)

	_, err := svc.Synthesize(context.Background(), Request{Text: "привет"})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	specs := synth.Specs()
	if len(specs) != 1 {
		t.Fatalf("exchanges = %d, want 1", len(specs))
	}
	spec := specs[0]
	if spec.Voice != "Nec_24000" || spec.Language != "ru-RU" {
		t.Errorf("spec = %+v, want default voice and language", spec)
	}
	if spec.Encoding != salute.EncodingWAV {
		t.Error("single-shot synthesis must request containerized WAV")
	}
	if spec.SSML {
		t.Error("SSML requested for a plain text request")
	}
}

func TestSynthesizeSSML(t *testing.T) {
	synth := &MockSynthesizer{}
	svc := newTestService(synth)

	_, err := svc.Synthesize(context.Background(), Request{Text: "<speak>hi</speak>", Type: "ssml"})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if specs := synth.Specs(); !specs[0].SSML {
		t.Error("SSML flag not propagated")
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	synth := &MockSynthesizer{}
	svc := newTestService(synth)

	_, err := svc.Synthesize(context.Background(), Request{})
	if !errors.Is(err, ErrEmptyText) {
		t.Errorf("err = %v, want ErrEmptyText", err)
	}
	if len(synth.Specs()) != 0 {
		t.Error("provider contacted for an empty request")
	}
}

func TestSynthesizeNoPartialAudio(t *testing.T) {
	// The stream yields audio and then fails: the caller must get the
	// error, never the partial payload.
	synth := &MockSynthesizer{
		StreamSynthesizeFunc: func(ctx context.Context, token string, spec salute.SynthesisSpec) (salute.SynthesisStream, error) {
			return &ChunkStream{
				Chunks: [][]byte{[]byte("RIFF")},
				Err:    &salute.ProviderError{Op: "synthesize", Err: errors.New("stream reset")},
			}, nil
		},
	}
	svc := newTestService(synth)

	audio, err := svc.Synthesize(context.Background(), Request{Text: "привет"})
	if err == nil {
		t.Fatal("expected error from failed stream")
	}
	if audio != nil {
		t.Errorf("audio = %q, want nil on failure", audio)
	}
}

func TestSynthesizeTokenFailure(t *testing.T) {
	synth := &MockSynthesizer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(StaticTokens{Err: errors.New("credentials rejected")}, synth, metrics.NewForTest(), logger)

	_, err := svc.Synthesize(context.Background(), Request{Text: "привет"})
	if err == nil {
		t.Fatal("expected token error")
	}
	if len(synth.Specs()) != 0 {
		t.Error("provider contacted without a token")
	}
}

func TestSynthesizeOpenFailure(t *testing.T) {
	synth := &MockSynthesizer{
		StreamSynthesizeFunc: func(ctx context.Context, token string, spec salute.SynthesisSpec) (salute.SynthesisStream, error) {
			return nil, &salute.ProviderError{Op: "synthesize", Err: errors.New("unavailable")}
		},
	}
	svc := newTestService(synth)

	if _, err := svc.Synthesize(context.Background(), Request{Text: "привет"}); err == nil {
		t.Fatal("expected open error")
	}
}
