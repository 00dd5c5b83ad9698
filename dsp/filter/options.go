package filter

// Option configures a filter helper.
type Option func(*config)

type config struct {
	sampleRate      float64
	order           int
	rippleDB        float64
	transitionWidth float64
}

func defaultConfig() config {
	return config{
		sampleRate:      16000,
		order:           3,
		rippleDB:        60,
		transitionWidth: 5,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSampleRate sets the sampling frequency in Hz.
func WithSampleRate(fs float64) Option {
	return func(c *config) {
		if fs > 0 {
			c.sampleRate = fs
		}
	}
}

// WithOrder sets the Butterworth order.
func WithOrder(order int) Option {
	return func(c *config) {
		if order > 0 {
			c.order = order
		}
	}
}

// WithRippleDB sets the Kaiser design attenuation in dB.
func WithRippleDB(db float64) Option {
	return func(c *config) {
		if db > 0 {
			c.rippleDB = db
		}
	}
}

// WithTransitionWidth sets the Kaiser transition band width in Hz.
func WithTransitionWidth(hz float64) Option {
	return func(c *config) {
		if hz > 0 {
			c.transitionWidth = hz
		}
	}
}
