package tts

import (
	"context"
	"io"
	"sync"

	"github.com/voicegw/salute-bridge/pkg/salute"
)

// MockSynthesizer implements Synthesizer for testing.
type MockSynthesizer struct {
	// StreamSynthesizeFunc is called when StreamSynthesize is invoked.
	StreamSynthesizeFunc func(ctx context.Context, token string, spec salute.SynthesisSpec) (salute.SynthesisStream, error)

	mu    sync.Mutex
	specs []salute.SynthesisSpec
}

func (m *MockSynthesizer) StreamSynthesize(ctx context.Context, token string, spec salute.SynthesisSpec) (salute.SynthesisStream, error) {
	m.mu.Lock()
	m.specs = append(m.specs, spec)
	m.mu.Unlock()

	if m.StreamSynthesizeFunc != nil {
		return m.StreamSynthesizeFunc(ctx, token, spec)
	}
	return &ChunkStream{}, nil
}

// Specs returns the specs of every exchange opened so far.
func (m *MockSynthesizer) Specs() []salute.SynthesisSpec {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]salute.SynthesisSpec, len(m.specs))
	copy(out, m.specs)
	return out
}

// ChunkStream is a canned SynthesisStream: yields Chunks in order, then
// Err if set, then io.EOF.
type ChunkStream struct {
	Chunks [][]byte
	Err    error

	i int
}

func (s *ChunkStream) Recv() ([]byte, error) {
	if s.i < len(s.Chunks) {
		chunk := s.Chunks[s.i]
		s.i++
		return chunk, nil
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return nil, io.EOF
}

// StaticTokens implements TokenSource with a fixed result.
type StaticTokens struct {
	Token string
	Err   error
}

func (t StaticTokens) GetToken(ctx context.Context) (string, error) {
	return t.Token, t.Err
}
