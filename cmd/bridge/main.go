// bridge: jambonz speech adapter for the SaluteSpeech v2 platform.
// Serves WebSocket STT, HTTP and WebSocket TTS, backed by the provider's
// bidirectional streaming gRPC API.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/voicegw/salute-bridge/internal/config"
	"github.com/voicegw/salute-bridge/internal/httpc"
	"github.com/voicegw/salute-bridge/internal/log"
	"github.com/voicegw/salute-bridge/internal/metrics"
	"github.com/voicegw/salute-bridge/pkg/auth"
	"github.com/voicegw/salute-bridge/pkg/salute"
	"github.com/voicegw/salute-bridge/pkg/stt"
	"github.com/voicegw/salute-bridge/pkg/tts"
	"github.com/voicegw/salute-bridge/pkg/web"
)

var configPath = flag.String("config", "config.yaml", "Path to YAML config (optional, env vars override)")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Init("info")
		log.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	log.Init(cfg.Logging.Level)
	logger := log.L()
	logger.Info("starting salute-bridge", "port", cfg.Server.Port)

	m := metrics.New(prometheus.DefaultRegisterer)

	oauthClient, err := httpc.NewTLSClient(cfg.OAuth.Timeout, httpc.TLSOptions{
		CABundle:           cfg.OAuth.CABundle,
		InsecureSkipVerify: cfg.OAuth.InsecureSkipVerify,
	})
	if err != nil {
		logger.Error("oauth http client", "error", err)
		os.Exit(1)
	}

	tokens := auth.New(cfg.OAuth.ClientID, cfg.OAuth.ClientSecret,
		auth.WithScope(cfg.OAuth.Scope),
		auth.WithURL(cfg.OAuth.URL),
		auth.WithHTTPClient(oauthClient),
		auth.WithLogger(log.Component("auth")),
		auth.WithRefreshObserver(func(err error) {
			outcome := "ok"
			if err != nil {
				outcome = "error"
			}
			m.TokenRefreshes.WithLabelValues(outcome).Inc()
		}),
	)

	provider, err := salute.Dial(
		salute.WithEndpoint(cfg.Salute.Endpoint),
		salute.WithAuthority(cfg.Salute.Authority),
		salute.WithCABundle(cfg.Salute.CABundle),
		salute.WithLogger(log.Component("salute")),
	)
	if err != nil {
		logger.Error("provider dial failed", "error", err)
		os.Exit(1)
	}
	defer provider.Close()

	server := web.NewServer(web.Config{
		Port:     cfg.Server.Port,
		STT:      stt.NewHandler(tokens, provider, m, logger),
		TTS:      tts.NewService(tokens, provider, m, logger),
		Streamer: tts.NewStreamer(tokens, provider, m, logger),
		Metrics:  m,
		Gatherer: prometheus.DefaultGatherer,
		Logger:   logger,
	})

	go func() {
		if err := server.Listen(); err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := server.Shutdown(); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
