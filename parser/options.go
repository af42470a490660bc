package parser

import "github.com/tliron/commonlog"

// Option configures a Parser, following the functional-options idiom
// (SPEC_FULL.md §2 ambient stack: configuration via functional options,
// the shape the teacher repo's own constructors use for optional
// behavior).
type Option func(*Parser)

// WithLogger directs trace output at logger instead of the package
// default (a no-op logger), via tliron/commonlog — the same logging
// library the teacher wires in for its language-server mode.
func WithLogger(logger commonlog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// WithTraceEnabled turns on trace logging at Debug level: each call of the
// expect primitive is logged with the token it matched. Entry to and exit
// from grammar productions, the other primitives, and speculative
// save/rollback are not logged. Off by default.
func WithTraceEnabled(enabled bool) Option {
	return func(p *Parser) { p.trace = enabled }
}

// WithFile attaches a file name to every SyntaxError the Parser produces,
// so a caller parsing many files can tell which one failed.
func WithFile(name string) Option {
	return func(p *Parser) { p.file = name }
}
