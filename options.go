package pq

// options configures a typed quantizer constructor.
//
// Today options primarily exist to avoid exploding the constructor's
// positional-argument surface (logger injection, initial ADC mode).
type options struct {
	logger     *Logger
	initialADC bool
}

// Option configures a typed quantizer constructor.
type Option func(*options)

// WithLogger injects a logger for construction/load diagnostics. The hot
// path (QuantizeVector, L2Distance, CosineDistance) never logs regardless
// of this setting. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithInitialADC sets the initial value of the ADC toggle at construction
// time, instead of requiring a follow-up SetEnableADC call.
func WithInitialADC(enabled bool) Option {
	return func(o *options) {
		o.initialADC = enabled
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:     NoopLogger(),
		initialADC: false,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
