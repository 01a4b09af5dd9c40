// Package web exposes the jambonz-facing HTTP and WebSocket surface.
package web

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/voicegw/salute-bridge/internal/metrics"
	"github.com/voicegw/salute-bridge/pkg/stt"
	"github.com/voicegw/salute-bridge/pkg/tts"
)

// Config wires the server's collaborators.
type Config struct {
	Port int

	STT      *stt.Handler
	TTS      *tts.Service
	Streamer *tts.Streamer

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Server is the bridge's public face: WebSocket STT and streaming TTS,
// HTTP single-shot TTS, health and metrics.
type Server struct {
	app  *fiber.App
	port int

	stt      *stt.Handler
	tts      *tts.Service
	streamer *tts.Streamer

	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewServer builds the server and its routes.
func NewServer(cfg Config) *Server {
	s := &Server{
		port:     cfg.Port,
		stt:      cfg.STT,
		tts:      cfg.TTS,
		streamer: cfg.Streamer,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger.With("component", "web"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "salute-bridge",
		DisableStartupMessage: true,
	})

	app.Get("/health", s.handleHealth)
	app.Get("/metrics", metricsHandler(cfg.Gatherer))
	app.Post("/tts", s.handleTTS)

	// WebSocket upgrade gate ahead of every streaming route.
	for _, path := range []string{"/stt", "/tts-stream", "/stt-test"} {
		app.Use(path, func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		})
	}
	app.Get("/stt", websocket.New(s.handleSTT))
	app.Get("/tts-stream", websocket.New(s.handleTTSStream))
	app.Get("/stt-test", websocket.New(s.handleSTTTest))

	s.app = app
	return s
}

// Listen serves until Shutdown is called.
func (s *Server) Listen() error {
	s.logger.Info("listening", "port", s.port)
	return s.app.Listen(fmt.Sprintf(":%d", s.port))
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
