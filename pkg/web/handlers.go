package web

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voicegw/salute-bridge/pkg/salute"
	"github.com/voicegw/salute-bridge/pkg/stt"
	"github.com/voicegw/salute-bridge/pkg/tts"
)

// handleHealth reports service liveness.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	s.metrics.HTTPRequests.WithLabelValues("/health", "200").Inc()
	return c.JSON(fiber.Map{
		"status":      "ok",
		"service":     "salute-bridge",
		"api_version": "v2",
	})
}

func metricsHandler(gatherer prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

// handleTTS serves single-shot synthesis. The whole WAV payload is
// returned at once; any failure yields a gateway error with a JSON body.
func (s *Server) handleTTS(c *fiber.Ctx) error {
	var req tts.Request
	if err := c.BodyParser(&req); err != nil {
		s.metrics.HTTPRequests.WithLabelValues("/tts", "400").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	audio, err := s.tts.Synthesize(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, tts.ErrEmptyText) {
			s.metrics.HTTPRequests.WithLabelValues("/tts", "400").Inc()
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		s.metrics.HTTPRequests.WithLabelValues("/tts", "502").Inc()
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": salute.ErrorMessage(err)})
	}

	s.metrics.HTTPRequests.WithLabelValues("/tts", "200").Inc()
	c.Set(fiber.HeaderContentType, "audio/wav")
	return c.Send(audio)
}

// handleSTT hands the upgraded connection to the STT session handler.
func (s *Server) handleSTT(c *websocket.Conn) {
	s.stt.Handle(context.Background(), c)
}

// handleTTSStream hands the upgraded connection to the streaming TTS
// handler. Voice and language are fixed by the query string.
func (s *Server) handleTTSStream(c *websocket.Conn) {
	params := tts.StreamParams{
		Voice:    c.Query("voice"),
		Language: c.Query("language"),
	}
	s.streamer.Handle(context.Background(), c, params)
}

// handleSTTTest is a wiring-check endpoint: it accepts a start message,
// answers with one canned final transcription, then acknowledges audio
// frames until stop or disconnect. No credentials or provider contact.
func (s *Server) handleSTTTest(c *websocket.Conn) {
	logger := s.logger.With("endpoint", "/stt-test")
	defer c.Close()

	mt, data, err := c.ReadMessage()
	if err != nil || mt != websocket.TextMessage {
		return
	}
	logger.Info("start received", "message", string(data))

	fake := stt.TranscriptionEvent{
		Type:    "transcription",
		IsFinal: true,
		Alternatives: []stt.Alternative{
			{Transcript: "тестовое сообщение от эхо сервера", Confidence: 0.99},
		},
		Language: "ru-RU",
		Channel:  1,
	}
	if err := c.WriteJSON(fake); err != nil {
		return
	}

	for {
		mt, data, err := c.ReadMessage()
		if err != nil {
			return
		}
		switch mt {
		case websocket.BinaryMessage:
			logger.Debug("audio chunk", "bytes", len(data))
		case websocket.TextMessage:
			var msg struct {
				Type string `json:"type"`
			}
			if json.Unmarshal(data, &msg) == nil && msg.Type == "stop" {
				logger.Info("stop received")
				return
			}
		}
	}
}
