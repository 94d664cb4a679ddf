// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

// Option configures a Buffer or Chunked built by [FromSlice] or [ChunkOf].
type Option func(*options)

type options struct {
	parallel bool
	growth   *Growth
}

// WithParallel sets the parallel hint of the result.
func WithParallel(p bool) Option {
	return func(o *options) {
		o.parallel = p
	}
}

// WithGrowth sets the growth policy of the result's backing arrays.
func WithGrowth(g Growth) Option {
	return func(o *options) {
		o.growth = &g
	}
}

func buildOptions(opts []Option) (options, error) {
	o := options{growth: defaultGrowth()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.growth.Validate(); err != nil {
		return options{}, err
	}
	return o, nil
}
