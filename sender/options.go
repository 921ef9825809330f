package sender

import (
	"fmt"

	"github.com/arloliu/lineproto/internal/options"
	"github.com/arloliu/lineproto/internal/pool"
)

// senderConfig holds the connection settings assembled from Options.
type senderConfig struct {
	netInterface string
	initBufSize  int
	resolver     AddrResolver
}

// Option configures a Connect call.
type Option = options.Option[*senderConfig]

// WithNetInterface binds the outgoing connection to the interface with the
// given host name or address.
func WithNetInterface(host string) Option {
	return options.New(func(cfg *senderConfig) error {
		if host == "" {
			return fmt.Errorf("net interface host cannot be empty")
		}
		cfg.netInterface = host

		return nil
	})
}

// WithInitBufferSize sets the initial capacity of the output buffer.
// The buffer still grows past this size when needed.
func WithInitBufferSize(size int) Option {
	return options.New(func(cfg *senderConfig) error {
		if size <= 0 {
			return fmt.Errorf("invalid initial buffer size: %d", size)
		}
		cfg.initBufSize = size

		return nil
	})
}

// WithResolver replaces the default address resolver.
func WithResolver(resolver AddrResolver) Option {
	return options.New(func(cfg *senderConfig) error {
		if resolver == nil {
			return fmt.Errorf("resolver cannot be nil")
		}
		cfg.resolver = resolver

		return nil
	})
}

func newConfig(opts ...Option) (*senderConfig, error) {
	cfg := &senderConfig{
		initBufSize: pool.LineBufferDefaultSize,
		resolver:    netResolver{},
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
