package fields

import (
	"runtime"

	"github.com/katalvlaran/lvpsatd/transform"
)

// Option configures a Store.
type Option func(*options)

type options struct {
	workers     int
	transformer transform.Transformer
}

// defaultOptions: one worker per CPU, go-dsp backed FFT.
func defaultOptions() options {
	return options{
		workers:     runtime.GOMAXPROCS(0),
		transformer: transform.FFT{},
	}
}

// WithWorkers bounds the number of blocks processed concurrently.
// Values < 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithTransformer replaces the transform primitive.
// Panics on nil (programmer error).
func WithTransformer(tr transform.Transformer) Option {
	if tr == nil {
		panic("fields: WithTransformer: nil transformer")
	}

	return func(o *options) { o.transformer = tr }
}
