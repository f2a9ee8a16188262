// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Functional options shared by the parser and the serializer.

package libmsd

// Options holds the configuration for MSD parsing and serialization.
type Options struct {
	// Escapes controls whether backslash escaping is active. It
	// defaults to true. Legacy MSD files that treat backslashes as
	// literal text are parsed with escaping disabled.
	Escapes bool

	// IgnoreStrayText discards non-whitespace text found outside any
	// parameter instead of reporting it as a StrayTextError.
	IgnoreStrayText bool
}

// Option configures MSD parsing and serialization.
type Option func(*Options) error

// CombineOptions merges multiple options into a single Option.
func CombineOptions(opts ...Option) Option {
	return func(o *Options) error {
		for _, opt := range opts {
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// ApplyOptions builds an Options value from the given options.
func ApplyOptions(opts ...Option) (*Options, error) {
	o := &Options{Escapes: true}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithEscapes enables or disables backslash escaping.
//
// When called without arguments it enables escaping, which is also the
// default.
func WithEscapes(enable ...bool) Option {
	return func(o *Options) error {
		o.Escapes = optionalBool(enable)
		return nil
	}
}

// WithIgnoreStrayText enables or disables discarding of stray text.
//
// When called without arguments it enables discarding. The default is
// false: stray text is surfaced as a StrayTextError.
func WithIgnoreStrayText(enable ...bool) Option {
	return func(o *Options) error {
		o.IgnoreStrayText = optionalBool(enable)
		return nil
	}
}

func optionalBool(v []bool) bool {
	if len(v) == 0 {
		return true
	}
	return v[0]
}
