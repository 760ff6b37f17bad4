package clap

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

var (
	ErrInvalidSchema          = errors.New("schema is not valid JSON")
	ErrSchemaMissingArguments = errors.New("schema has no arguments array")
	ErrSchemaUnknownType      = errors.New("schema argument has an unknown type")
)

///////////////////////////////////////////////////////////////////////////////
// JSON Schema Registration
///////////////////////////////////////////////////////////////////////////////

// LoadSchema registers one definition per entry of the document's "arguments"
// array, equivalent to the matching sequence of AddFlag/AddString/AddInt/
// AddFloat calls. Entries are registered in document order; the first failing
// entry aborts loading and earlier entries stay registered.
//
// Document shape:
//
//	{
//	  "program": "example",
//	  "arguments": [
//	    {"short": "-v", "long": "--verbose", "description": "Verbose output",
//	     "type": "flag", "default": false},
//	    {"short": "-n", "long": "--count", "description": "Iterations",
//	     "type": "int", "required": false, "default": 10}
//	  ]
//	}
func (p *Parser) LoadSchema(document string) error {
	if !gjson.Valid(document) {
		return ErrInvalidSchema
	}

	args := gjson.Get(document, SchemaArgumentsField)
	if !args.IsArray() {
		return ErrSchemaMissingArguments
	}

	var loadErr error
	args.ForEach(func(_, entry gjson.Result) bool {
		loadErr = p.loadSchemaEntry(entry)
		return loadErr == nil
	})
	return loadErr
}

func (p *Parser) loadSchemaEntry(entry gjson.Result) error {
	short := entry.Get(SchemaShortField).String()
	long := entry.Get(SchemaLongField).String()
	description := entry.Get(SchemaDescriptionField).String()
	required := entry.Get(SchemaRequiredField).Bool()
	def := entry.Get(SchemaDefaultField)

	switch typ := entry.Get(SchemaTypeField).String(); typ {
	case TypeFlag.String():
		return p.AddFlag(short, long, description, def.Bool())
	case TypeString.String():
		return p.AddString(short, long, description, required, def.String())
	case TypeInt.String():
		return p.AddInt(short, long, description, required, def.Int())
	case TypeFloat.String():
		return p.AddFloat(short, long, description, required, def.Float())
	default:
		return fmt.Errorf("%w: %q", ErrSchemaUnknownType, typ)
	}
}
