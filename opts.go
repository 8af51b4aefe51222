package berth

import "go.uber.org/zap"

// Option configures a Configurator.
type Option interface {
	apply(*Configurator)
}

// optionFunc is a function adapter for Option
type optionFunc func(*Configurator)

func (f optionFunc) apply(c *Configurator) { f(c) }

// WithMetadata sets the declaration table to scan (default: DefaultRegistry).
func WithMetadata(md Metadata) Option {
	return optionFunc(func(c *Configurator) {
		c.md = md
	})
}

// WithLogger sets the logger registrations are reported to (default: no-op).
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(c *Configurator) {
		c.logger = logger
	})
}

// WithHooks appends registration hooks. Hooks run in the order they are added.
func WithHooks(hooks ...Hook) Option {
	return optionFunc(func(c *Configurator) {
		c.hooks = append(c.hooks, hooks...)
	})
}
