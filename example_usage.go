package clap

import (
	"fmt"
	"os"
)

// ExampleUsage demonstrates the full declaration -> parse -> access pipeline
// with validators attached to the numeric and output arguments.
func ExampleUsage() {
	parser := New()
	defer parser.Close()

	parser.AddFlag("-v", "--verbose", "Enable verbose output", false)
	parser.AddFlag("-h", "--help", "Display this help message", false)
	parser.AddString("-o", "--output", "Output file path", false, "output.txt")
	parser.AddString("-i", "--input", "Input file path", true, "")
	parser.AddInt("-n", "--count", "Number of iterations", false, 10)
	parser.AddFloat("-t", "--threshold", "Threshold value", false, 0.5)

	parser.SetValidator("--count", IntRange(1, 100))
	parser.SetValidator("--threshold", FloatRange(0, 1))
	parser.SetValidator("--output", Suffix(".txt"))

	argv := []string{"example", "-i", "data.csv", "-n", "25", "-v", "extras"}
	if err := parser.Parse(argv); err != nil {
		parser.WriteUsage(os.Stderr, argv[0])
		return
	}

	if parser.GetFlag("--help") {
		parser.WriteUsage(os.Stdout, argv[0])
		return
	}

	fmt.Printf("input=%s output=%s count=%d threshold=%g verbose=%v\n",
		parser.GetString("--input"),
		parser.GetString("--output"),
		parser.GetInt("--count"),
		parser.GetFloat("--threshold"),
		parser.GetFlag("--verbose"))
	fmt.Printf("positional=%v\n", parser.Positional())
}

// ExampleSchemaUsage builds the same parser from a JSON schema document
// instead of imperative registration calls.
func ExampleSchemaUsage() {
	parser := New()
	defer parser.Close()

	schema := `{
		"program": "example",
		"arguments": [
			{"short": "-v", "long": "--verbose", "description": "Enable verbose output", "type": "flag"},
			{"short": "-i", "long": "--input", "description": "Input file path", "type": "string", "required": true},
			{"short": "-n", "long": "--count", "description": "Number of iterations", "type": "int", "default": 10}
		]
	}`

	if err := parser.LoadSchema(schema); err != nil {
		fmt.Fprintf(os.Stderr, "schema load failed: %v\n", err)
		return
	}
	parser.SetValidator("--count", IntRange(1, 100))

	if err := parser.Parse(os.Args); err != nil {
		parser.WriteUsage(os.Stderr, os.Args[0])
		return
	}

	fmt.Printf("input=%s count=%d\n",
		parser.GetString("--input"), parser.GetInt("--count"))
}
