package salute

import (
	"log/slog"

	"google.golang.org/grpc"
)

// Default endpoint of the SaluteSpeech platform.
const (
	DefaultEndpoint  = "smartspeech.sber.ru:443"
	DefaultAuthority = "smartspeech.sber.ru"
)

// Config holds provider connection configuration.
// Use functional options (WithXxx) to set these values.
type Config struct {
	// Endpoint is the host:port of the gRPC API.
	Endpoint string

	// Authority overrides :authority and the TLS server name. The platform
	// fronts the API with hosts whose certificates are issued for the bare
	// domain.
	Authority string

	// CABundle is a path to a PEM bundle of additional trusted roots for
	// the provider's regulatory certificate chain. Empty means system roots.
	CABundle string

	// DialOptions are appended to the computed gRPC dial options. Test hook
	// and escape hatch.
	DialOptions []grpc.DialOption

	// Logger is the structured logger for connection-level events.
	Logger *slog.Logger
}

// Option is a functional option for configuring the provider client.
type Option func(*Config)

// WithEndpoint overrides the default API endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Config) { c.Endpoint = endpoint }
}

// WithAuthority overrides the :authority / TLS server name.
func WithAuthority(authority string) Option {
	return func(c *Config) { c.Authority = authority }
}

// WithCABundle sets the path to the trusted-root PEM bundle.
func WithCABundle(path string) Option {
	return func(c *Config) { c.CABundle = path }
}

// WithDialOptions appends raw gRPC dial options.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Config) { c.DialOptions = append(c.DialOptions, opts...) }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:  DefaultEndpoint,
		Authority: DefaultAuthority,
		Logger:    slog.Default(),
	}
}

// Apply applies functional options to the config.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}
