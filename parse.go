package clap

import (
	"errors"
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

var (
	ErrUnknownArgument = errors.New("unknown argument")
	ErrMissingValue    = errors.New("missing value for argument")
	ErrRequiredMissing = errors.New("required argument missing")
)

// ParseError reports the first fatal condition encountered by Parse. Parsing
// is all-or-nothing: after a ParseError no accessor result is trustworthy.
type ParseError struct {
	Arg    string // the offending token or the missing argument's long name
	Reason error  // one of the Err* sentinels above
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", pe.Reason, pe.Arg)
}

func (pe *ParseError) Unwrap() error {
	return pe.Reason
}

///////////////////////////////////////////////////////////////////////////////
// Parser Engine
///////////////////////////////////////////////////////////////////////////////

// Parse consumes a full argument vector. argv[0] is the program name and is
// skipped. Tokens starting with '-' are resolved against the registry by
// exact short or long name; non-flag options consume the next token as their
// value; every other token is appended to the positional arguments in
// encounter order.
//
// Parse stops at the first fatal condition (unknown argument, missing value,
// required argument absent), writes one line to the diagnostic stream and
// returns a *ParseError wrapping the matching sentinel.
func (p *Parser) Parse(argv []string) error {
	// One result per definition, seeded from the default with is-set false.
	p.results = make([]*result, len(p.defs))
	for i, def := range p.defs {
		p.results[i] = &result{definition: def, value: def.Default}
	}
	p.positional = nil

	for i := 1; i < len(argv); i++ {
		arg := argv[i]

		if !strings.HasPrefix(arg, "-") {
			p.positional = append(p.positional, arg)
			continue
		}

		idx := p.findIndex(arg)
		if idx < 0 {
			return p.fail(ErrUnknownArgument, arg)
		}

		def := p.defs[idx]
		res := p.results[idx]

		if def.Type == TypeFlag {
			res.value = FlagValue(true)
			res.set = true
			continue
		}

		// Non-flag options take their value from the next token.
		if i+1 >= len(argv) {
			return p.fail(ErrMissingValue, arg)
		}
		i++
		res.value = coerceValue(def.Type, argv[i])
		res.set = true
	}

	for _, res := range p.results {
		if res.definition.Required && !res.set {
			return p.fail(ErrRequiredMissing, res.definition.Long)
		}
	}

	return nil
}

// fail emits the diagnostic line for a fatal parse condition and builds the
// returned error.
func (p *Parser) fail(reason error, arg string) error {
	err := &ParseError{Arg: arg, Reason: reason}
	fmt.Fprintf(p.diag, "%s\n", err)
	return err
}
