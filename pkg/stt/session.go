// Package stt bridges one jambonz STT WebSocket session onto a SaluteSpeech
// recognition stream.
//
// A session moves through four phases: awaiting the start directive,
// streaming audio, draining remaining provider responses after stop, and
// closed. Audio frames travel through a sentinel-terminated queue feeding
// the provider request stream while transcription events flow back
// concurrently.
package stt

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/voicegw/salute-bridge/internal/metrics"
	"github.com/voicegw/salute-bridge/pkg/bridge"
	"github.com/voicegw/salute-bridge/pkg/salute"
)

// ErrExpectedStart is reported when the first inbound message is not a
// start directive.
var ErrExpectedStart = errors.New("stt: expected start message")

// ErrBadControl is reported for unrecognized or out-of-sequence control
// messages mid-session.
var ErrBadControl = errors.New("stt: unrecognized control message")

// TokenSource supplies bearer credentials. *auth.TokenCache implements it.
type TokenSource interface {
	GetToken(ctx context.Context) (string, error)
}

// Recognizer opens recognition exchanges. *salute.Client implements it.
type Recognizer interface {
	StreamRecognize(ctx context.Context, token string, cfg salute.RecognitionConfig) (salute.RecognitionStream, error)
}

// Handler runs STT sessions.
type Handler struct {
	tokens     TokenSource
	recognizer Recognizer
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewHandler creates an STT session handler.
func NewHandler(tokens TokenSource, recognizer Recognizer, m *metrics.Metrics, logger *slog.Logger) *Handler {
	return &Handler{
		tokens:     tokens,
		recognizer: recognizer,
		metrics:    m,
		logger:     logger.With("component", "stt"),
	}
}

// Handle runs one session on conn until it is closed. The transport is
// always closed on return; errors are surfaced to the client as error
// events, never returned.
func (h *Handler) Handle(ctx context.Context, conn bridge.Conn) {
	h.metrics.ActiveSTTSessions.Inc()
	defer h.metrics.ActiveSTTSessions.Dec()
	defer conn.Close()

	h.logger.Info("session connected")

	token, err := h.tokens.GetToken(ctx)
	if err != nil {
		h.logger.Error("token acquisition failed", "error", err)
		conn.WriteJSON(NewErrorEvent(err.Error()))
		return
	}

	directive, err := h.awaitStart(conn)
	if err != nil {
		if !isTransportErr(err) {
			h.logger.Warn("session rejected", "error", err)
			conn.WriteJSON(NewErrorEvent("Expected start message"))
		}
		return
	}

	cfg := directive.RecognitionConfig()
	h.logger.Info("session started",
		"language", cfg.Language,
		"sample_rate", cfg.SampleRate,
		"interim_results", cfg.PartialResults,
	)

	sctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := h.recognizer.StreamRecognize(sctx, token, cfg)
	if err != nil {
		h.logger.Error("recognition stream open failed", "error", err)
		conn.WriteJSON(NewErrorEvent(salute.ErrorMessage(err)))
		return
	}

	h.metrics.STTSessionsStarted.Inc()
	h.runBridge(sctx, cancel, conn, stream, cfg.Language)

	h.logger.Info("session closed")
}

// awaitStart reads exactly one control message and requires it to be a
// start directive.
func (h *Handler) awaitStart(conn bridge.Conn) (StartDirective, error) {
	mt, data, err := conn.ReadMessage()
	if err != nil {
		return StartDirective{}, err
	}
	if mt != bridge.TextMessage {
		return StartDirective{}, ErrExpectedStart
	}

	ctrl, err := ParseControl(data)
	if err != nil {
		return StartDirective{}, err
	}
	if ctrl.Kind != KindStart {
		return StartDirective{}, ErrExpectedStart
	}
	return ctrl.Start, nil
}

// runBridge executes the streaming and draining phases.
func (h *Handler) runBridge(ctx context.Context, cancel context.CancelFunc, conn bridge.Conn, stream salute.RecognitionStream, language string) {
	queue := bridge.NewQueue()

	// Request generator: drains the queue into the provider stream and
	// signals end-of-input when the sentinel arrives.
	go func() {
		for {
			chunk, ok := queue.Pop()
			if !ok {
				stream.CloseSend()
				return
			}
			if err := stream.SendAudio(chunk); err != nil {
				// The downlink observes and reports the fault.
				h.logger.Debug("audio send failed", "error", err)
				return
			}
		}
	}()

	b := &bridge.Bridge{
		Logger: h.logger,
		Uplink: func(ctx context.Context) error {
			return h.uplink(conn, queue)
		},
		Downlink: func(ctx context.Context) error {
			return h.downlink(conn, stream, language)
		},
		Cleanup: func() {
			queue.Close()
			cancel()
			conn.Close()
		},
	}

	if err := b.Run(ctx); err != nil {
		h.logger.Warn("session ended with fault", "error", err)
	}
}

// uplink forwards inbound frames until stop or disconnect. Disconnects are
// normal termination; protocol violations are faults.
func (h *Handler) uplink(conn bridge.Conn, queue *bridge.Queue) error {
	defer queue.Close()

	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			// Client disconnect: enqueue the sentinel and end normally.
			return nil
		}

		switch mt {
		case bridge.BinaryMessage:
			if queue.Push(data) {
				h.metrics.AudioChunksForwarded.Inc()
			}
		case bridge.TextMessage:
			ctrl, err := ParseControl(data)
			if err != nil {
				conn.WriteJSON(NewErrorEvent(err.Error()))
				return err
			}
			switch ctrl.Kind {
			case KindStop:
				h.logger.Info("stop received, draining")
				return nil
			default:
				conn.WriteJSON(NewErrorEvent("unrecognized control message"))
				return ErrBadControl
			}
		}
	}
}

// downlink translates provider responses into transcription events until
// the stream drains.
func (h *Handler) downlink(conn bridge.Conn, stream salute.RecognitionStream, language string) error {
	for {
		res, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			conn.WriteJSON(NewErrorEvent(salute.ErrorMessage(err)))
			return err
		}

		evt := NewTranscriptionEvent(res, language)
		if err := conn.WriteJSON(evt); err != nil {
			// Transport already gone; nothing left to deliver.
			return nil
		}
		h.metrics.TranscriptionEvents.Inc()
		h.logger.Debug("transcription forwarded", "final", evt.IsFinal)
	}
}

// isTransportErr reports whether err came from the transport read rather
// than message validation. Transport failures before start are silent;
// validation failures get an error event.
func isTransportErr(err error) bool {
	return !errors.Is(err, ErrExpectedStart) &&
		!errors.Is(err, ErrBadControl) &&
		!errors.Is(err, ErrMalformedControl)
}
