package clap

import (
	"errors"
	"fmt"
	"io"
	"os"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

var (
	ErrLongNameRequired  = errors.New("argument long name is required")
	ErrDuplicateArgument = errors.New("an argument with this long name is already registered")
	ErrArgumentNotFound  = errors.New("no argument registered with this long name")
)

///////////////////////////////////////////////////////////////////////////////
// Definition Registry and Parser Impl.
///////////////////////////////////////////////////////////////////////////////

// Definition is a registered argument declaration. Definitions are created
// during the registration phase and are read-only during and after parsing.
type Definition struct {
	Short       string // short form including the dash (e.g. "-v"), may be empty
	Long        string // long form including the dashes (e.g. "--verbose"), unique
	Description string // help text for usage rendering
	Type        ArgType
	Required    bool  // meaningful for non-flag types only
	Default     Value // value read back when the option is absent or invalid

	validator ValidatorFunc
}

// Parser owns an ordered registry of Definitions, the per-definition results
// of the most recent Parse, and the positional arguments collected by it.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	defs       []*Definition
	results    []*result
	positional []string
	diag       io.Writer
}

// Options configures a Parser beyond its defaults.
type Options struct {
	// Diagnostics receives parse failure and validation failure messages.
	// Defaults to os.Stderr.
	Diagnostics io.Writer
}

// New creates a Parser that reports diagnostics on os.Stderr.
func New() *Parser {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a Parser with explicit options.
func NewWithOptions(opts Options) *Parser {
	diag := opts.Diagnostics
	if diag == nil {
		diag = os.Stderr
	}
	return &Parser{diag: diag}
}

// Close releases all parse state. It is idempotent and safe on a nil Parser.
// Using the parser after Close requires a new Parse call.
func (p *Parser) Close() {
	if p == nil {
		return
	}
	p.defs = nil
	p.results = nil
	p.positional = nil
}

///////////////////////////////////////////////////////////////////////////////
// Registration
///////////////////////////////////////////////////////////////////////////////

// AddFlag registers a boolean flag. Flags are never required: an absent flag
// simply reads back its default.
func (p *Parser) AddFlag(short, long, description string, def bool) error {
	return p.addArgument(short, long, description, TypeFlag, false, FlagValue(def))
}

// AddString registers a string argument whose value is the token following
// the option, copied verbatim.
func (p *Parser) AddString(short, long, description string, required bool, def string) error {
	return p.addArgument(short, long, description, TypeString, required, StringValue(def))
}

// AddInt registers an integer argument. Malformed numeric tokens coerce to
// zero at parse time; attach a validator to reject them.
func (p *Parser) AddInt(short, long, description string, required bool, def int64) error {
	return p.addArgument(short, long, description, TypeInt, required, IntValue(def))
}

// AddFloat registers a float argument with the same forgiving coercion as
// AddInt.
func (p *Parser) AddFloat(short, long, description string, required bool, def float64) error {
	return p.addArgument(short, long, description, TypeFloat, required, FloatValue(def))
}

func (p *Parser) addArgument(short, long, description string, typ ArgType, required bool, def Value) error {
	if long == "" {
		return ErrLongNameRequired
	}
	for _, d := range p.defs {
		if d.Long == long {
			return fmt.Errorf("%w: %s", ErrDuplicateArgument, long)
		}
	}

	p.defs = append(p.defs, &Definition{
		Short:       short,
		Long:        long,
		Description: description,
		Type:        typ,
		Required:    required,
		Default:     def,
	})
	return nil
}

// SetValidator attaches fn to the definition registered under long.
//
// Validators are consulted lazily, on the first access of the argument, not
// at parse time. Attaching one after Parse but before the argument is first
// read is therefore valid.
func (p *Parser) SetValidator(long string, fn ValidatorFunc) error {
	for _, d := range p.defs {
		if d.Long == long {
			d.validator = fn
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrArgumentNotFound, long)
}

///////////////////////////////////////////////////////////////////////////////
// Lookup
///////////////////////////////////////////////////////////////////////////////

// findIndex matches name against the short or long name of every definition.
// First match wins in registration order. Returns -1 when unresolved.
func (p *Parser) findIndex(name string) int {
	for i, d := range p.defs {
		if d.Long == name || (d.Short != "" && d.Short == name) {
			return i
		}
	}
	return -1
}

// resultByLong resolves an accessor lookup. Accessors key on the long name
// only, by convention.
func (p *Parser) resultByLong(long string) *result {
	if p.results == nil {
		return nil
	}
	for i, d := range p.defs {
		if d.Long == long {
			return p.results[i]
		}
	}
	return nil
}
