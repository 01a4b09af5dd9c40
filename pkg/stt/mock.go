package stt

import (
	"context"
	"io"
	"sync"

	"github.com/voicegw/salute-bridge/pkg/salute"
)

// MockRecognizer implements Recognizer for testing.
type MockRecognizer struct {
	// StreamRecognizeFunc is called when StreamRecognize is invoked.
	StreamRecognizeFunc func(ctx context.Context, token string, cfg salute.RecognitionConfig) (salute.RecognitionStream, error)

	mu      sync.Mutex
	configs []salute.RecognitionConfig
}

func (m *MockRecognizer) StreamRecognize(ctx context.Context, token string, cfg salute.RecognitionConfig) (salute.RecognitionStream, error) {
	m.mu.Lock()
	m.configs = append(m.configs, cfg)
	m.mu.Unlock()

	if m.StreamRecognizeFunc != nil {
		return m.StreamRecognizeFunc(ctx, token, cfg)
	}
	return &ResultStream{}, nil
}

// Opened returns how many streams have been requested.
func (m *MockRecognizer) Opened() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.configs)
}

// Configs returns the config of every stream opened so far.
func (m *MockRecognizer) Configs() []salute.RecognitionConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]salute.RecognitionConfig, len(m.configs))
	copy(out, m.configs)
	return out
}

// ResultStream is a canned RecognitionStream: yields Results in order,
// then Err if set, then io.EOF. It records sent audio and CloseSend.
type ResultStream struct {
	Results []salute.RecognitionResult
	Err     error

	mu         sync.Mutex
	i          int
	sent       [][]byte
	sendClosed bool
}

func (s *ResultStream) SendAudio(chunk []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, chunk)
	return nil
}

func (s *ResultStream) CloseSend() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendClosed = true
	return nil
}

func (s *ResultStream) Recv() (salute.RecognitionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.i < len(s.Results) {
		res := s.Results[s.i]
		s.i++
		return res, nil
	}
	if s.Err != nil {
		return salute.RecognitionResult{}, s.Err
	}
	return salute.RecognitionResult{}, io.EOF
}

// Sent returns the audio chunks forwarded so far.
func (s *ResultStream) Sent() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]byte, len(s.sent))
	copy(out, s.sent)
	return out
}

// SendClosed reports whether end-of-input was signalled.
func (s *ResultStream) SendClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sendClosed
}

// StaticTokens implements TokenSource with a fixed result.
type StaticTokens struct {
	Token string
	Err   error
}

func (t StaticTokens) GetToken(ctx context.Context) (string, error) {
	return t.Token, t.Err
}
