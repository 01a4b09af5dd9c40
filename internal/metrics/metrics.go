// Package metrics contains the Prometheus collectors for salute-bridge.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector the bridge exports.
type Metrics struct {
	// Token cache
	TokenRefreshes *prometheus.CounterVec // outcome: ok|error

	// STT sessions
	ActiveSTTSessions    prometheus.Gauge
	STTSessionsStarted   prometheus.Counter
	TranscriptionEvents  prometheus.Counter
	AudioChunksForwarded prometheus.Counter

	// TTS
	SynthRequests    *prometheus.CounterVec // mode: single|stream, outcome: ok|error
	SynthBytes       prometheus.Counter
	ActiveTTSStreams prometheus.Gauge

	// HTTP surface
	HTTPRequests *prometheus.CounterVec // route, status
}

// New creates and registers all collectors with the given registerer.
// Pass prometheus.DefaultRegisterer in production.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TokenRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bridge_token_refreshes_total",
			Help: "Total OAuth token refresh attempts by outcome",
		}, []string{"outcome"}),

		ActiveSTTSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bridge_stt_sessions_active",
			Help: "Current number of active STT WebSocket sessions",
		}),
		STTSessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "bridge_stt_sessions_started_total",
			Help: "Total STT sessions that reached the streaming state",
		}),
		TranscriptionEvents: factory.NewCounter(prometheus.CounterOpts{
			Name: "bridge_transcription_events_total",
			Help: "Total transcription events emitted to clients",
		}),
		AudioChunksForwarded: factory.NewCounter(prometheus.CounterOpts{
			Name: "bridge_audio_chunks_forwarded_total",
			Help: "Total inbound audio chunks forwarded to the provider",
		}),

		SynthRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bridge_synth_requests_total",
			Help: "Total synthesis requests by mode and outcome",
		}, []string{"mode", "outcome"}),
		SynthBytes: factory.NewCounter(prometheus.CounterOpts{
			Name: "bridge_synth_bytes_total",
			Help: "Total synthesized audio bytes returned to clients",
		}),
		ActiveTTSStreams: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bridge_tts_streams_active",
			Help: "Current number of active streaming TTS sessions",
		}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bridge_http_requests_total",
			Help: "Total HTTP requests by route and status",
		}, []string{"route", "status"}),
	}
}

// NewForTest creates collectors on a throwaway registry.
func NewForTest() *Metrics {
	return New(prometheus.NewRegistry())
}
