package tts

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/voicegw/salute-bridge/internal/metrics"
	"github.com/voicegw/salute-bridge/pkg/bridge"
	"github.com/voicegw/salute-bridge/pkg/salute"
)

// StreamParams fix the voice and language for a streaming connection's
// lifetime. Taken from the connection's query string.
type StreamParams struct {
	Voice    string
	Language string
}

func (p *StreamParams) applyDefaults() {
	if p.Voice == "" {
		p.Voice = DefaultVoice
	}
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
}

// Streamer runs incremental streaming TTS sessions. Text fragments
// accumulate in a per-connection buffer until a flush directive, which
// synthesizes the buffered text and forwards audio chunks as individual
// binary frames while they arrive.
type Streamer struct {
	tokens  TokenSource
	synth   Synthesizer
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewStreamer creates a streaming TTS session handler.
func NewStreamer(tokens TokenSource, synth Synthesizer, m *metrics.Metrics, logger *slog.Logger) *Streamer {
	return &Streamer{
		tokens:  tokens,
		synth:   synth,
		metrics: m,
		logger:  logger.With("component", "tts-stream"),
	}
}

// Handle runs one session on conn until it is closed. The transport is
// always closed on return; errors are surfaced to the client as error
// events, never returned.
func (s *Streamer) Handle(ctx context.Context, conn bridge.Conn, params StreamParams) {
	s.metrics.ActiveTTSStreams.Inc()
	defer s.metrics.ActiveTTSStreams.Dec()
	defer conn.Close()

	params.applyDefaults()
	rate := VoiceSampleRate(params.Voice)

	s.logger.Info("stream connected",
		"voice", params.Voice,
		"language", params.Language,
		"sample_rate", rate,
	)

	// The peer sends no text until the handshake arrives.
	if err := conn.WriteJSON(NewConnectAck(rate)); err != nil {
		s.logger.Warn("handshake write failed", "error", err)
		return
	}

	var buffer []string
	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			// Client disconnect. Any in-flight synthesis was already
			// abandoned when its chunk write failed.
			s.logger.Info("stream disconnected")
			return
		}
		if mt != bridge.TextMessage {
			continue
		}

		ctrl, err := ParseControl(data)
		if err != nil {
			conn.WriteJSON(NewErrorEvent(err.Error()))
			return
		}

		switch ctrl.Kind {
		case KindStream:
			if ctrl.Text != "" {
				buffer = append(buffer, ctrl.Text)
			}
		case KindFlush:
			if len(buffer) == 0 {
				// Nothing buffered: no provider contact.
				continue
			}
			text := strings.Join(buffer, "")
			buffer = buffer[:0]
			s.flush(ctx, conn, text, params)
		case KindStop:
			s.logger.Info("stop received")
			return
		default:
			conn.WriteJSON(NewErrorEvent("unrecognized control message"))
			return
		}
	}
}

// flush synthesizes text and forwards every audio chunk as its own binary
// frame. Failures are reported to the client and the session continues;
// cancellation means the caller hung up and is not an error.
func (s *Streamer) flush(ctx context.Context, conn bridge.Conn, text string, params StreamParams) {
	s.logger.Info("flush", "chars", len(text))

	// The provider stream has no close method; cancelling its context is
	// the only way to release an abandoned exchange. Every exit path must
	// reach this, a failed chunk write included.
	sctx, cancel := context.WithCancel(ctx)
	defer cancel()

	token, err := s.tokens.GetToken(sctx)
	if err != nil {
		s.metrics.SynthRequests.WithLabelValues("stream", "error").Inc()
		conn.WriteJSON(NewErrorEvent(err.Error()))
		return
	}

	stream, err := s.synth.StreamSynthesize(sctx, token, salute.SynthesisSpec{
		Text:     text,
		Voice:    params.Voice,
		Language: params.Language,
		Encoding: salute.EncodingPCM,
	})
	if err != nil {
		s.metrics.SynthRequests.WithLabelValues("stream", "error").Inc()
		conn.WriteJSON(NewErrorEvent(salute.ErrorMessage(err)))
		return
	}

	var sent int
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, context.Canceled) {
			s.logger.Warn("synthesis abandoned, client gone")
			return
		}
		if err != nil {
			s.metrics.SynthRequests.WithLabelValues("stream", "error").Inc()
			conn.WriteJSON(NewErrorEvent(salute.ErrorMessage(err)))
			return
		}

		if err := conn.WriteMessage(bridge.BinaryMessage, chunk); err != nil {
			s.logger.Warn("chunk write failed, client gone")
			return
		}
		sent += len(chunk)
		s.metrics.SynthBytes.Add(float64(len(chunk)))
	}

	s.metrics.SynthRequests.WithLabelValues("stream", "ok").Inc()
	s.logger.Info("flush complete", "bytes", sent)
}
