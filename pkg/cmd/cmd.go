// Package cmd is a transport-agnostic command core: a command has a name,
// a description, and Run(ctx, invocation). Registration and dispatch
// (Discord slash, context menu, CLI) belong to adapters wrapping this.
package cmd

import "context"

// Invocation carries the input a runner hands to a command: positional
// arguments plus an opaque payload. Adapters set Data to their own context
// type.
type Invocation struct {
	Args []string
	Data interface{}
}

// Command is the universal contract. Permissions, option schemas, and
// transport-specific registration stay in adapters.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}

// Middleware wraps a command (logging, guild checks, metrics); the wrapped
// value remains a Command.
type Middleware func(Command) Command

// Apply applies middlewares in order; the first listed becomes outermost.
func Apply(c Command, mws ...Middleware) Command {
	for _, mw := range mws {
		c = mw(c)
	}
	return c
}
