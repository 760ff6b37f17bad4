package clap

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidatorFunc decides whether a parsed value is acceptable. It receives the
// result's current value and the owning definition's type, and must check the
// type before projecting the value. A nil return means valid; a non-nil
// error's message is emitted exactly once on the diagnostic stream when the
// result is first accessed.
type ValidatorFunc func(v Value, t ArgType) error

///////////////////////////////////////////////////////////////////////////////
// Built-in Validators
///////////////////////////////////////////////////////////////////////////////

// IntRange accepts integer values in [min, max].
func IntRange(min, max int64) ValidatorFunc {
	return func(v Value, t ArgType) error {
		if t != TypeInt {
			return fmt.Errorf("expected an int argument, got %s", t)
		}
		if n := v.Int(); n < min || n > max {
			return fmt.Errorf("value must be between %d and %d, got %d", min, max, n)
		}
		return nil
	}
}

// FloatRange accepts float values in [min, max].
func FloatRange(min, max float64) ValidatorFunc {
	return func(v Value, t ArgType) error {
		if t != TypeFloat {
			return fmt.Errorf("expected a float argument, got %s", t)
		}
		if f := v.Float(); f < min || f > max {
			return fmt.Errorf("value must be between %g and %g, got %g", min, max, f)
		}
		return nil
	}
}

// OneOf accepts string values from a fixed set.
func OneOf(choices ...string) ValidatorFunc {
	return func(v Value, t ArgType) error {
		if t != TypeString {
			return fmt.Errorf("expected a string argument, got %s", t)
		}
		s := v.String()
		for _, c := range choices {
			if s == c {
				return nil
			}
		}
		return fmt.Errorf("value must be one of [%s], got %q", strings.Join(choices, ", "), s)
	}
}

// Suffix accepts string values ending with suffix, e.g. Suffix(".txt") for
// output paths.
func Suffix(suffix string) ValidatorFunc {
	return func(v Value, t ArgType) error {
		if t != TypeString {
			return fmt.Errorf("expected a string argument, got %s", t)
		}
		if s := v.String(); !strings.HasSuffix(s, suffix) {
			return fmt.Errorf("value must end with %q, got %q", suffix, s)
		}
		return nil
	}
}

// NonEmpty rejects empty string values, typically paired with a required
// string argument whose default is "".
func NonEmpty() ValidatorFunc {
	return func(v Value, t ArgType) error {
		if t != TypeString {
			return fmt.Errorf("expected a string argument, got %s", t)
		}
		if v.String() == "" {
			return fmt.Errorf("value must not be empty")
		}
		return nil
	}
}

// UUIDString accepts string values that parse as a UUID.
func UUIDString() ValidatorFunc {
	return func(v Value, t ArgType) error {
		if t != TypeString {
			return fmt.Errorf("expected a string argument, got %s", t)
		}
		if _, err := uuid.Parse(v.String()); err != nil {
			return fmt.Errorf("value is not a valid UUID: %q", v.String())
		}
		return nil
	}
}
