// Package salute is the client for the SaluteSpeech v2 bidirectional
// streaming gRPC API. It owns the connection and exposes one stream per
// recognition or synthesis exchange; tokens are supplied per call.
package salute

import (
	"crypto/tls"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/voicegw/salute-bridge/internal/httpc"
	recognitionpb "github.com/voicegw/salute-bridge/pkg/salutepb/recognition"
	synthesispb "github.com/voicegw/salute-bridge/pkg/salutepb/synthesis"
)

// Client talks to the SaluteSpeech platform over one shared gRPC connection.
// Streams opened from it are independent; the client is safe for concurrent
// use by many sessions.
type Client struct {
	config *Config
	conn   *grpc.ClientConn
	rec    recognitionpb.SmartSpeechClient
	syn    synthesispb.SmartSpeechClient
}

// Dial connects to the provider and returns a ready client.
func Dial(opts ...Option) (*Client, error) {
	cfg := DefaultConfig()
	cfg.Apply(opts...)

	creds, err := transportCredentials(cfg)
	if err != nil {
		return nil, err
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithAuthority(cfg.Authority),
	}, cfg.DialOptions...)

	conn, err := grpc.NewClient(cfg.Endpoint, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("salute: dial %s: %w", cfg.Endpoint, err)
	}

	cfg.Logger.Info("provider connection ready", "endpoint", cfg.Endpoint, "authority", cfg.Authority)
	return NewClient(conn, opts...), nil
}

// NewClient wraps an existing gRPC connection. The caller keeps ownership of
// the connection's lifecycle unless Close is used.
func NewClient(conn *grpc.ClientConn, opts ...Option) *Client {
	cfg := DefaultConfig()
	cfg.Apply(opts...)

	return &Client{
		config: cfg,
		conn:   conn,
		rec:    recognitionpb.NewSmartSpeechClient(conn),
		syn:    synthesispb.NewSmartSpeechClient(conn),
	}
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// transportCredentials builds TLS credentials, extending the system roots
// with the configured regulatory bundle when present.
func transportCredentials(cfg *Config) (credentials.TransportCredentials, error) {
	tlsCfg := &tls.Config{ServerName: cfg.Authority}

	if cfg.CABundle != "" {
		pool, err := httpc.RootPool(cfg.CABundle)
		if err != nil {
			return nil, fmt.Errorf("salute: %w", err)
		}
		tlsCfg.RootCAs = pool
	}

	return credentials.NewTLS(tlsCfg), nil
}
