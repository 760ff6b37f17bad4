package clap

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var optionName = color.New(color.Bold)

///////////////////////////////////////////////////////////////////////////////
// Usage Rendering
///////////////////////////////////////////////////////////////////////////////

// WriteUsage renders a usage listing of every registered definition to w, in
// registration order. It reads the registry only; no parser state is mutated.
// Option names are bolded unless color output is disabled (see color.NoColor).
func (p *Parser) WriteUsage(w io.Writer, program string) {
	if program == "" {
		program = "program"
	}

	fmt.Fprintf(w, "Usage: %s [OPTIONS]...\n\n", program)
	fmt.Fprintln(w, "Options:")

	for _, def := range p.defs {
		line := "  "
		if def.Short != "" {
			line += optionName.Sprint(def.Short) + ", "
		}
		line += optionName.Sprint(def.Long)
		if def.Type != TypeFlag {
			line += " <" + def.Type.String() + ">"
		}
		fmt.Fprintln(w, line)

		if def.Description != "" {
			description := def.Description
			if def.Required {
				description += " (required)"
			}
			fmt.Fprintf(w, "      %s\n", description)
		}
	}
}

// Usage returns the WriteUsage rendering as a string.
func (p *Parser) Usage(program string) string {
	var sb strings.Builder
	p.WriteUsage(&sb, program)
	return sb.String()
}
