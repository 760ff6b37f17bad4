package clap

// ArgType identifies which member of a Value is active. The tag is
// authoritative: accessors and validators check it before projecting.
type ArgType int

const (
	TypeFlag   ArgType = iota // boolean presence flag (--verbose, -v)
	TypeString                // string value (--output file.txt)
	TypeInt                   // integer value (--count 10)
	TypeFloat                 // float value (--threshold 0.5)
)

// String returns the name used both as the usage placeholder and as the
// "type" field of schema documents.
func (t ArgType) String() string {
	switch t {
	case TypeFlag:
		return "flag"
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	}
	return "unknown"
}

// Field name constants for LoadSchema documents.
const (
	SchemaProgramField     = "program"
	SchemaArgumentsField   = "arguments"
	SchemaShortField       = "short"
	SchemaLongField        = "long"
	SchemaDescriptionField = "description"
	SchemaTypeField        = "type"
	SchemaRequiredField    = "required"
	SchemaDefaultField     = "default"
)
