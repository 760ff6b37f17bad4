package clap

import "fmt"

///////////////////////////////////////////////////////////////////////////////
// Result and Validation Cache Impl.
///////////////////////////////////////////////////////////////////////////////

// result is the per-definition parse outcome plus its validation cache.
//
// The validation state machine is Unvalidated -> Valid|Invalid, terminal,
// entered at most once per result on the first access of any kind. The cached
// verdict is reused forever afterwards, even if re-running the validator
// would decide differently.
type result struct {
	definition *Definition
	value      Value
	set        bool // true iff the option appeared in argv

	validated bool // verdict computed
	valid     bool // meaningful only once validated
	message   string
}

// validate runs the attached validator at most once and caches the verdict.
// A definition without a validator passes vacuously. On failure the
// validator's message is written once to the diagnostic stream, tagged with
// the definition's long name.
func (p *Parser) validate(res *result) bool {
	if res.validated {
		return res.valid
	}
	res.validated = true

	fn := res.definition.validator
	if fn == nil {
		res.valid = true
		return true
	}

	if err := fn(res.value, res.definition.Type); err != nil {
		res.valid = false
		res.message = err.Error()
		if res.message != "" {
			fmt.Fprintf(p.diag, "validation error for %s: %s\n",
				res.definition.Long, res.message)
		}
		return false
	}

	res.valid = true
	return true
}

// resultOf resolves a typed accessor lookup. Unknown names and type
// mismatches return nil without consulting or mutating validation state.
func (p *Parser) resultOf(long string, typ ArgType) *result {
	res := p.resultByLong(long)
	if res == nil || res.definition.Type != typ {
		return nil
	}
	return res
}

///////////////////////////////////////////////////////////////////////////////
// Accessors
///////////////////////////////////////////////////////////////////////////////

// GetFlag returns the parsed value of a flag argument, or false when long
// does not name a flag definition.
func (p *Parser) GetFlag(long string) bool {
	res := p.resultOf(long, TypeFlag)
	if res == nil {
		return false
	}
	if !p.validate(res) {
		return res.definition.Default.Bool()
	}
	return res.value.Bool()
}

// GetString returns the parsed value of a string argument. An invalid value
// reads back as the definition's default; an unknown or mismatched name reads
// back as "".
func (p *Parser) GetString(long string) string {
	res := p.resultOf(long, TypeString)
	if res == nil {
		return ""
	}
	if !p.validate(res) {
		return res.definition.Default.String()
	}
	return res.value.String()
}

// GetInt returns the parsed value of an integer argument, with the same
// default substitution as GetString.
func (p *Parser) GetInt(long string) int64 {
	res := p.resultOf(long, TypeInt)
	if res == nil {
		return 0
	}
	if !p.validate(res) {
		return res.definition.Default.Int()
	}
	return res.value.Int()
}

// GetFloat returns the parsed value of a float argument, with the same
// default substitution as GetString.
func (p *Parser) GetFloat(long string) float64 {
	res := p.resultOf(long, TypeFloat)
	if res == nil {
		return 0
	}
	if !p.validate(res) {
		return res.definition.Default.Float()
	}
	return res.value.Float()
}

// IsSet reports whether the argument appeared in argv. Like every accessor it
// counts as the first access and triggers lazy validation, though the verdict
// does not affect the returned bit.
func (p *Parser) IsSet(long string) bool {
	res := p.resultByLong(long)
	if res == nil {
		return false
	}
	p.validate(res)
	return res.set
}

// Positional returns the non-option tokens in encounter order. The returned
// slice is owned by the parser; callers must not mutate it.
func (p *Parser) Positional() []string {
	return p.positional
}

// ValidationMessage returns the message produced by the argument's validator,
// or "" when validation passed, no validator is attached, or long is unknown.
// Calling it counts as an access and triggers lazy validation.
func (p *Parser) ValidationMessage(long string) string {
	res := p.resultByLong(long)
	if res == nil {
		return ""
	}
	p.validate(res)
	return res.message
}
