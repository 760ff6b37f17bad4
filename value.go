package clap

import "strconv"

///////////////////////////////////////////////////////////////////////////////
// Value Impl.
///////////////////////////////////////////////////////////////////////////////

// Value is a tagged union over the four argument types. Exactly one member is
// active, selected by the owning definition's ArgType. Projecting the wrong
// member returns the zero value for that type rather than panicking, so
// validators can probe safely after checking the tag.
type Value struct {
	typ      ArgType
	flag     bool
	str      string
	integer  int64
	floating float64
}

func FlagValue(v bool) Value {
	return Value{typ: TypeFlag, flag: v}
}

func StringValue(v string) Value {
	return Value{typ: TypeString, str: v}
}

func IntValue(v int64) Value {
	return Value{typ: TypeInt, integer: v}
}

func FloatValue(v float64) Value {
	return Value{typ: TypeFloat, floating: v}
}

// Type returns the active member's tag.
func (v Value) Type() ArgType {
	return v.typ
}

// Bool projects the flag member. Zero value unless the tag is TypeFlag.
func (v Value) Bool() bool {
	if v.typ != TypeFlag {
		return false
	}
	return v.flag
}

// String projects the string member. Zero value unless the tag is TypeString.
func (v Value) String() string {
	if v.typ != TypeString {
		return ""
	}
	return v.str
}

// Int projects the integer member. Zero value unless the tag is TypeInt.
func (v Value) Int() int64 {
	if v.typ != TypeInt {
		return 0
	}
	return v.integer
}

// Float projects the float member. Zero value unless the tag is TypeFloat.
func (v Value) Float() float64 {
	if v.typ != TypeFloat {
		return 0
	}
	return v.floating
}

///////////////////////////////////////////////////////////////////////////////
// Coercion
///////////////////////////////////////////////////////////////////////////////

// coerceValue turns the raw value token following an option into a typed
// Value. Numeric coercion is best-effort: malformed input coerces to zero
// instead of failing the parse, so only a validator can reject it.
func coerceValue(t ArgType, token string) Value {
	switch t {
	case TypeString:
		return StringValue(token)
	case TypeInt:
		return IntValue(coerceInt(token))
	case TypeFloat:
		return FloatValue(coerceFloat(token))
	}
	// Flags never consume a value token.
	return FlagValue(true)
}

func coerceInt(token string) int64 {
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func coerceFloat(token string) float64 {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}
	return f
}
