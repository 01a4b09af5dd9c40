package salute

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	synthesispb "github.com/voicegw/salute-bridge/pkg/salutepb/synthesis"
)

// AudioEncoding selects the synthesis output container.
type AudioEncoding int

const (
	// EncodingWAV produces containerized WAV, suitable for one-shot HTTP
	// responses.
	EncodingWAV AudioEncoding = iota

	// EncodingPCM produces raw PCM 16-bit little-endian frames with no
	// container header, suitable for real-time streaming.
	EncodingPCM
)

// SynthesisSpec describes one synthesis exchange.
type SynthesisSpec struct {
	Text     string
	Voice    string
	Language string
	SSML     bool
	Encoding AudioEncoding
}

// SynthesisStream yields the audio chunks of one synthesis exchange in
// arrival order.
type SynthesisStream interface {
	// Recv blocks for the next audio chunk. Returns io.EOF when the provider
	// has finished, and context.Canceled when the exchange was abandoned.
	Recv() ([]byte, error)
}

// StreamSynthesize opens a synthesis exchange. The options and text messages
// are sent and the request side closed before the stream is handed to the
// caller; only audio remains to be read.
func (c *Client) StreamSynthesize(ctx context.Context, token string, spec SynthesisSpec) (SynthesisStream, error) {
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)

	stream, err := c.syn.Synthesize(ctx)
	if err != nil {
		return nil, wrapErr("synthesize", err)
	}

	opts := &synthesispb.SynthesisRequest{
		Request: &synthesispb.SynthesisRequest_Options{
			Options: &synthesispb.Options{
				AudioEncoding: encodingToProto(spec.Encoding),
				Language:      spec.Language,
				Voice:         spec.Voice,
			},
		},
	}
	if err := stream.Send(opts); err != nil {
		return nil, wrapErr("synthesize", err)
	}

	contentType := synthesispb.Text_TEXT
	if spec.SSML {
		contentType = synthesispb.Text_SSML
	}
	text := &synthesispb.SynthesisRequest{
		Request: &synthesispb.SynthesisRequest_Text{
			Text: &synthesispb.Text{Text: spec.Text, ContentType: contentType},
		},
	}
	if err := stream.Send(text); err != nil {
		return nil, wrapErr("synthesize", err)
	}
	if err := stream.CloseSend(); err != nil {
		return nil, wrapErr("synthesize", err)
	}

	c.config.Logger.Debug("synthesis stream opened",
		"voice", spec.Voice,
		"language", spec.Language,
		"chars", len(spec.Text),
	)

	return &synthesisStream{stream: stream}, nil
}

func encodingToProto(enc AudioEncoding) synthesispb.Options_AudioEncoding {
	if enc == EncodingPCM {
		return synthesispb.Options_PCM_S16LE
	}
	return synthesispb.Options_WAV
}

type synthesisStream struct {
	stream synthesispb.SmartSpeech_SynthesizeClient
}

func (s *synthesisStream) Recv() ([]byte, error) {
	for {
		resp, err := s.stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if status.Code(err) == codes.Canceled {
			return nil, context.Canceled
		}
		if err != nil {
			return nil, wrapErr("synthesize", err)
		}

		audio := resp.GetAudio()
		if audio == nil || len(audio.AudioChunk) == 0 {
			continue
		}
		return audio.AudioChunk, nil
	}
}
