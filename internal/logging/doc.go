// Package logging builds the zerolog loggers used across feedquery and
// carries them, together with a per-invocation trace id, through
// context.Context.
package logging
