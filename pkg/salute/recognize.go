package salute

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	recognitionpb "github.com/voicegw/salute-bridge/pkg/salutepb/recognition"
)

// RecognitionConfig carries the per-session recognition parameters
// negotiated at session start. Audio is always PCM 16-bit little-endian mono.
type RecognitionConfig struct {
	Language       string
	SampleRate     int
	PartialResults bool
	Hints          []string
}

// RecognitionResult is one decoded transcription event from the provider.
type RecognitionResult struct {
	Text           string
	Confidence     float32
	EndOfUtterance bool
}

// RecognitionStream wraps one bidirectional recognition exchange. Send and
// Recv may be used from different goroutines; each side is single-consumer.
type RecognitionStream interface {
	// SendAudio forwards one raw audio chunk to the provider.
	SendAudio(chunk []byte) error

	// CloseSend signals end-of-input. No audio may be sent afterwards.
	CloseSend() error

	// Recv blocks for the next transcription event. Returns io.EOF when the
	// provider has drained the stream.
	Recv() (RecognitionResult, error)
}

// StreamRecognize opens a recognition exchange: the options message is sent
// before the stream is handed to the caller.
func (c *Client) StreamRecognize(ctx context.Context, token string, cfg RecognitionConfig) (RecognitionStream, error) {
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)

	stream, err := c.rec.Recognize(ctx)
	if err != nil {
		return nil, wrapErr("recognize", err)
	}

	opts := &recognitionpb.RecognitionRequest{
		Request: &recognitionpb.RecognitionRequest_Options{
			Options: buildRecognitionOptions(cfg),
		},
	}
	if err := stream.Send(opts); err != nil {
		return nil, wrapErr("recognize", err)
	}

	c.config.Logger.Debug("recognition stream opened",
		"language", cfg.Language,
		"sample_rate", cfg.SampleRate,
		"hints", len(cfg.Hints),
	)

	return &recognitionStream{stream: stream}, nil
}

func buildRecognitionOptions(cfg RecognitionConfig) *recognitionpb.RecognitionOptions {
	opts := &recognitionpb.RecognitionOptions{
		AudioEncoding:        recognitionpb.RecognitionOptions_PCM_S16LE,
		SampleRate:           int32(cfg.SampleRate),
		ChannelsCount:        1,
		Language:             cfg.Language,
		HypothesesCount:      1,
		EnablePartialResults: &recognitionpb.OptionalBool{Enable: cfg.PartialResults},
		EnableMultiUtterance: &recognitionpb.OptionalBool{Enable: true},
		NormalizationOptions: &recognitionpb.NormalizationOptions{
			Enable:         &recognitionpb.OptionalBool{Enable: true},
			Punctuation:    &recognitionpb.OptionalBool{Enable: true},
			Capitalization: &recognitionpb.OptionalBool{Enable: true},
		},
	}
	if len(cfg.Hints) > 0 {
		opts.Hints = &recognitionpb.Hints{Words: cfg.Hints}
	}
	return opts
}

type recognitionStream struct {
	stream recognitionpb.SmartSpeech_RecognizeClient
}

func (s *recognitionStream) SendAudio(chunk []byte) error {
	req := &recognitionpb.RecognitionRequest{
		Request: &recognitionpb.RecognitionRequest_AudioChunk{AudioChunk: chunk},
	}
	return wrapErr("recognize", s.stream.Send(req))
}

func (s *recognitionStream) CloseSend() error {
	return s.stream.CloseSend()
}

func (s *recognitionStream) Recv() (RecognitionResult, error) {
	for {
		resp, err := s.stream.Recv()
		if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled {
			return RecognitionResult{}, io.EOF
		}
		if err != nil {
			return RecognitionResult{}, wrapErr("recognize", err)
		}

		tr := resp.GetTranscription()
		if tr == nil || len(tr.Results) == 0 {
			continue
		}

		hyp := tr.Results[0]
		text := hyp.NormalizedText
		if text == "" {
			text = hyp.Text
		}
		confidence := hyp.Confidence
		if confidence == 0 {
			confidence = 1
		}

		return RecognitionResult{
			Text:           text,
			Confidence:     confidence,
			EndOfUtterance: tr.Eou,
		}, nil
	}
}
