// Package tts turns text into SaluteSpeech audio for jambonz clients, in
// a single-shot request/response form and an incremental streaming form.
package tts

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/voicegw/salute-bridge/internal/metrics"
	"github.com/voicegw/salute-bridge/pkg/salute"
)

// ErrEmptyText is reported for a synthesis request with no text.
var ErrEmptyText = errors.New("tts: empty text")

// TokenSource supplies bearer credentials. *auth.TokenCache implements it.
type TokenSource interface {
	GetToken(ctx context.Context) (string, error)
}

// Synthesizer opens synthesis exchanges. *salute.Client implements it.
type Synthesizer interface {
	StreamSynthesize(ctx context.Context, token string, spec salute.SynthesisSpec) (salute.SynthesisStream, error)
}

// Request is the single-shot synthesis payload.
type Request struct {
	Text     string `json:"text"`
	Voice    string `json:"voice"`
	Language string `json:"language"`
	Type     string `json:"type"` // "text" or "ssml"
}

func (r *Request) applyDefaults() {
	if r.Voice == "" {
		r.Voice = DefaultVoice
	}
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
	if r.Type == "" {
		r.Type = "text"
	}
}

// Service runs single-shot synthesis requests.
type Service struct {
	tokens  TokenSource
	synth   Synthesizer
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewService creates a single-shot synthesis service.
func NewService(tokens TokenSource, synth Synthesizer, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		tokens:  tokens,
		synth:   synth,
		metrics: m,
		logger:  logger.With("component", "tts"),
	}
}

// Synthesize runs one full exchange and returns the complete WAV payload.
// Either the whole payload is returned or an error is; a failure mid-stream
// never yields partial audio.
func (s *Service) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	req.applyDefaults()
	if req.Text == "" {
		return nil, ErrEmptyText
	}

	s.logger.Info("synthesis request",
		"voice", req.Voice,
		"language", req.Language,
		"chars", len(req.Text),
	)

	token, err := s.tokens.GetToken(ctx)
	if err != nil {
		s.metrics.SynthRequests.WithLabelValues("single", "error").Inc()
		return nil, err
	}

	stream, err := s.synth.StreamSynthesize(ctx, token, salute.SynthesisSpec{
		Text:     req.Text,
		Voice:    req.Voice,
		Language: req.Language,
		SSML:     req.Type == "ssml",
		Encoding: salute.EncodingWAV,
	})
	if err != nil {
		s.metrics.SynthRequests.WithLabelValues("single", "error").Inc()
		return nil, err
	}

	var buf bytes.Buffer
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.metrics.SynthRequests.WithLabelValues("single", "error").Inc()
			return nil, err
		}
		buf.Write(chunk)
	}

	s.metrics.SynthRequests.WithLabelValues("single", "ok").Inc()
	s.metrics.SynthBytes.Add(float64(buf.Len()))
	s.logger.Info("synthesis complete", "bytes", buf.Len())
	return buf.Bytes(), nil
}
