package stt

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/voicegw/salute-bridge/internal/metrics"
	"github.com/voicegw/salute-bridge/pkg/bridge"
	"github.com/voicegw/salute-bridge/pkg/salute"
)

type fakeMessage struct {
	mt   int
	data []byte
}

// fakeConn scripts the client side of a session. Messages queued with
// sendText/sendBinary are delivered in order; disconnect or the handler's
// own Close unblocks pending reads.
type fakeConn struct {
	inbound chan fakeMessage

	closeOnce sync.Once
	closeCh   chan struct{}

	mu     sync.Mutex
	events []any
	frames [][]byte
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		inbound: make(chan fakeMessage, 32),
		closeCh: make(chan struct{}),
	}
}

func (c *fakeConn) sendText(t *testing.T, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	c.inbound <- fakeMessage{mt: bridge.TextMessage, data: data}
}

func (c *fakeConn) sendRaw(data string) {
	c.inbound <- fakeMessage{mt: bridge.TextMessage, data: []byte(data)}
}

func (c *fakeConn) sendBinary(data []byte) {
	c.inbound <- fakeMessage{mt: bridge.BinaryMessage, data: data}
}

func (c *fakeConn) disconnect() {
	c.closeOnce.Do(func() { close(c.closeCh) })
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case <-c.closeCh:
		return 0, nil, errors.New("connection closed")
	default:
	}
	select {
	case m := <-c.inbound:
		return m.mt, m.data, nil
	case <-c.closeCh:
		return 0, nil, errors.New("connection closed")
	}
}

func (c *fakeConn) WriteMessage(mt int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, data)
	return nil
}

func (c *fakeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, v)
	return nil
}

func (c *fakeConn) Close() error {
	c.disconnect()
	return nil
}

func (c *fakeConn) closed() bool {
	select {
	case <-c.closeCh:
		return true
	default:
		return false
	}
}

func (c *fakeConn) written() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]any, len(c.events))
	copy(out, c.events)
	return out
}

func (c *fakeConn) transcriptions() []TranscriptionEvent {
	var out []TranscriptionEvent
	for _, v := range c.written() {
		if evt, ok := v.(TranscriptionEvent); ok {
			out = append(out, evt)
		}
	}
	return out
}

func (c *fakeConn) errorEvents() []ErrorEvent {
	var out []ErrorEvent
	for _, v := range c.written() {
		if evt, ok := v.(ErrorEvent); ok {
			out = append(out, evt)
		}
	}
	return out
}

func newTestHandler(rec *MockRecognizer) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(StaticTokens{Token: "tok"}, rec, metrics.NewForTest(), logger)
}

// eventually polls cond until it holds or the deadline passes.
func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestSessionRejectsNonStartFirstMessage(t *testing.T) {
	rec := &MockRecognizer{}
	h := newTestHandler(rec)
	conn := newFakeConn()
	conn.sendText(t, map[string]string{"type": "stop"})

	h.Handle(context.Background(), conn)

	errs := conn.errorEvents()
	if len(errs) != 1 || errs[0].Error != "Expected start message" {
		t.Fatalf("error events = %v, want one 'Expected start message'", errs)
	}
	if rec.Opened() != 0 {
		t.Error("provider stream was opened for a rejected session")
	}
	if !conn.closed() {
		t.Error("transport left open")
	}
}

func TestSessionRejectsBinaryFirstMessage(t *testing.T) {
	rec := &MockRecognizer{}
	h := newTestHandler(rec)
	conn := newFakeConn()
	conn.sendBinary([]byte{1, 2, 3})

	h.Handle(context.Background(), conn)

	if len(conn.errorEvents()) != 1 {
		t.Fatalf("error events = %v, want one", conn.errorEvents())
	}
	if rec.Opened() != 0 {
		t.Error("provider stream was opened for a rejected session")
	}
}

func TestSessionStartStop(t *testing.T) {
	stream := &ResultStream{}
	rec := &MockRecognizer{
		StreamRecognizeFunc: func(ctx context.Context, token string, cfg salute.RecognitionConfig) (salute.RecognitionStream, error) {
			return stream, nil
		},
	}
	h := newTestHandler(rec)
	conn := newFakeConn()
	conn.sendText(t, map[string]any{"type": "start", "language": "ru-RU", "sampleRateHz": 8000})
	conn.sendText(t, map[string]string{"type": "stop"})

	h.Handle(context.Background(), conn)

	if got := conn.transcriptions(); len(got) != 0 {
		t.Errorf("transcriptions = %v, want none", got)
	}
	if got := conn.errorEvents(); len(got) != 0 {
		t.Errorf("error events = %v, want none", got)
	}
	eventually(t, stream.SendClosed, "end-of-input was never signalled")
	if !conn.closed() {
		t.Error("transport left open")
	}
}

func TestSessionStartDefaults(t *testing.T) {
	rec := &MockRecognizer{}
	h := newTestHandler(rec)
	conn := newFakeConn()
	conn.sendRaw(`{"type":"start"}`)
	conn.sendText(t, map[string]string{"type": "stop"})

	h.Handle(context.Background(), conn)

	cfgs := rec.Configs()
	if len(cfgs) != 1 {
		t.Fatalf("streams opened = %d, want 1", len(cfgs))
	}
	cfg := cfgs[0]
	if cfg.Language != "ru-RU" || cfg.SampleRate != 8000 || !cfg.PartialResults {
		t.Errorf("config = %+v, want ru-RU/8000/partial", cfg)
	}
}

func TestSessionForwardsAudio(t *testing.T) {
	stream := &ResultStream{}
	rec := &MockRecognizer{
		StreamRecognizeFunc: func(ctx context.Context, token string, cfg salute.RecognitionConfig) (salute.RecognitionStream, error) {
			return stream, nil
		},
	}
	h := newTestHandler(rec)
	conn := newFakeConn()
	conn.sendText(t, map[string]string{"type": "start"})
	conn.sendBinary([]byte{1, 1})
	conn.sendBinary([]byte{2, 2})
	conn.sendText(t, map[string]string{"type": "stop"})

	h.Handle(context.Background(), conn)

	eventually(t, func() bool { return len(stream.Sent()) == 2 && stream.SendClosed() },
		"audio chunks not forwarded before end-of-input")

	sent := stream.Sent()
	if string(sent[0]) != string([]byte{1, 1}) || string(sent[1]) != string([]byte{2, 2}) {
		t.Errorf("forwarded chunks = %v", sent)
	}
}

func TestSessionEmitsTranscriptions(t *testing.T) {
	stream := &ResultStream{
		Results: []salute.RecognitionResult{
			{Text: "прив", Confidence: 0.4},
			{Text: "привет", Confidence: 0.9, EndOfUtterance: true},
		},
	}
	rec := &MockRecognizer{
		StreamRecognizeFunc: func(ctx context.Context, token string, cfg salute.RecognitionConfig) (salute.RecognitionStream, error) {
			return stream, nil
		},
	}
	h := newTestHandler(rec)
	conn := newFakeConn()
	conn.sendText(t, map[string]string{"type": "start"})
	conn.sendText(t, map[string]string{"type": "stop"})

	h.Handle(context.Background(), conn)

	got := conn.transcriptions()
	if len(got) != 2 {
		t.Fatalf("transcriptions = %d, want 2", len(got))
	}
	if got[0].IsFinal {
		t.Error("first result reported final")
	}
	if !got[1].IsFinal {
		t.Error("end-of-utterance result not reported final")
	}
	if got[1].Alternatives[0].Transcript != "привет" {
		t.Errorf("transcript = %q", got[1].Alternatives[0].Transcript)
	}
}

func TestSessionProviderFault(t *testing.T) {
	stream := &ResultStream{
		Err: &salute.ProviderError{Op: "recognize", Err: errors.New("quota exceeded")},
	}
	rec := &MockRecognizer{
		StreamRecognizeFunc: func(ctx context.Context, token string, cfg salute.RecognitionConfig) (salute.RecognitionStream, error) {
			return stream, nil
		},
	}
	h := newTestHandler(rec)
	conn := newFakeConn()
	conn.sendText(t, map[string]string{"type": "start"})
	// No stop: the downlink fault must tear the session down on its own.

	h.Handle(context.Background(), conn)

	errs := conn.errorEvents()
	if len(errs) != 1 {
		t.Fatalf("error events = %v, want one", errs)
	}
	if errs[0].Error != "quota exceeded" {
		t.Errorf("error = %q, want provider description", errs[0].Error)
	}
	if !conn.closed() {
		t.Error("transport left open after fault")
	}
}

func TestSessionTokenFailure(t *testing.T) {
	rec := &MockRecognizer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(StaticTokens{Err: errors.New("credentials rejected")}, rec, metrics.NewForTest(), logger)
	conn := newFakeConn()

	h.Handle(context.Background(), conn)

	if len(conn.errorEvents()) != 1 {
		t.Fatalf("error events = %v, want one", conn.errorEvents())
	}
	if rec.Opened() != 0 {
		t.Error("provider stream opened without a token")
	}
}

func TestSessionClientDisconnect(t *testing.T) {
	stream := &ResultStream{}
	rec := &MockRecognizer{
		StreamRecognizeFunc: func(ctx context.Context, token string, cfg salute.RecognitionConfig) (salute.RecognitionStream, error) {
			return stream, nil
		},
	}
	h := newTestHandler(rec)
	conn := newFakeConn()
	conn.sendText(t, map[string]string{"type": "start"})

	done := make(chan struct{})
	go func() {
		h.Handle(context.Background(), conn)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	conn.disconnect()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session did not terminate on disconnect")
	}
	eventually(t, stream.SendClosed, "end-of-input was never signalled")
	if got := conn.errorEvents(); len(got) != 0 {
		t.Errorf("error events = %v, want none on plain disconnect", got)
	}
}

func TestSessionUnrecognizedControlFaults(t *testing.T) {
	rec := &MockRecognizer{}
	h := newTestHandler(rec)
	conn := newFakeConn()
	conn.sendText(t, map[string]string{"type": "start"})
	conn.sendText(t, map[string]string{"type": "resume"})

	h.Handle(context.Background(), conn)

	errs := conn.errorEvents()
	if len(errs) != 1 {
		t.Fatalf("error events = %v, want one", errs)
	}
	if !conn.closed() {
		t.Error("transport left open")
	}
}
