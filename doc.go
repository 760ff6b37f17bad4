// Package clap (Command Line Argument Parsing) provides a small, declarative
// parser for process argument vectors with lazily evaluated, cached
// validation.
//
// The pipeline is declaration -> parse -> lazy-validate -> cached-access:
//
//   - Declare arguments up front with AddFlag, AddString, AddInt and AddFloat.
//     Each declaration carries an optional short name ("-v"), a mandatory and
//     unique long name ("--verbose"), a description used for usage rendering,
//     a requiredness bit (non-flag types only) and a typed default.
//   - Optionally attach a ValidatorFunc to a declaration by long name with
//     SetValidator, or pick one from the built-in catalog (IntRange, OneOf,
//     Suffix, UUIDString, ...).
//   - Parse walks the argument vector left to right. Tokens starting with '-'
//     are resolved against the registry by exact short or long name; non-flag
//     options consume the following token as their value; everything else is
//     collected as a positional argument in encounter order.
//   - Accessors (GetFlag, GetString, GetInt, GetFloat, IsSet) trigger the
//     attached validator on first use. The verdict is cached on the result and
//     never recomputed. An invalid value reads back as the declaration's
//     default and the validator's message is written once to the parser's
//     diagnostic stream.
//
// Declarations can also be loaded from a JSON schema document with LoadSchema,
// which registers the same definitions a sequence of AddX calls would.
//
// Numeric coercion is deliberately forgiving: a malformed int or float token
// does not fail the parse, it coerces to zero. Only a validator can reject it.
// Pair numeric arguments with range validators when zero is not an acceptable
// fallback.
//
// A Parser instance is not safe for concurrent use. Registration, parsing and
// access are expected to happen sequentially on one goroutine; confine each
// instance or add external synchronization.
package clap

/**
PLANNING:
- Repeated/multi-valued options (--tag a --tag b accumulating into a slice).
- `--opt=value` syntax sugar in the tokenizer.
- Structured diagnostics: return the emitted validation/parse messages as a
  slice alongside the error so callers do not have to scrape the writer.
*/
