package pol

import (
	"github.com/joshuapare/regpol/internal/strcodec"
	"github.com/joshuapare/regpol/pkg/types"
)

// Fallback selects the single-byte encoding tried when a string payload is
// not valid UTF-16LE.
type Fallback int

const (
	// FallbackISO885915 decodes as Latin-9. This is the default.
	FallbackISO885915 Fallback = iota
	// FallbackWindows1252 decodes as Windows Western (code page 1252).
	FallbackWindows1252
	// FallbackNone makes non-UTF-16LE payloads an undecodable-string error.
	FallbackNone
)

// String returns the encoding name.
func (f Fallback) String() string {
	switch f {
	case FallbackISO885915:
		return "iso-8859-15"
	case FallbackWindows1252:
		return "windows-1252"
	case FallbackNone:
		return "none"
	default:
		return "unknown"
	}
}

// Option configures a Decoder.
type Option func(*config)

type config struct {
	limits types.Limits
	chain  strcodec.Chain
}

func newConfig(opts []Option) config {
	cfg := config{
		limits: types.DefaultLimits(),
		chain:  strcodec.DefaultChain,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithLimits bounds declared value sizes and name lengths. Zero fields keep
// their defaults.
func WithLimits(l types.Limits) Option {
	return func(c *config) {
		c.limits = l.WithDefaults()
	}
}

// WithFallback replaces the encoding tried after UTF-16LE.
func WithFallback(f Fallback) Option {
	return func(c *config) {
		switch f {
		case FallbackWindows1252:
			c.chain = strcodec.Chain{strcodec.UTF16LE, strcodec.Windows1252}
		case FallbackNone:
			c.chain = strcodec.Chain{strcodec.UTF16LE}
		default:
			c.chain = strcodec.DefaultChain
		}
	}
}
