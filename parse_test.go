package clap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("FlagPresence", func(t *testing.T) {
		p, _ := newTestParser(t)
		require.NoError(t, p.AddFlag("-v", "--verbose", "", false))
		require.NoError(t, p.AddFlag("-q", "--quiet", "", false))

		require.NoError(t, p.Parse([]string{"prog", "-v"}))
		assert.True(t, p.GetFlag("--verbose"))
		assert.True(t, p.IsSet("--verbose"))
		assert.False(t, p.GetFlag("--quiet"))
		assert.False(t, p.IsSet("--quiet"))
	})

	t.Run("ProgramNameSkipped", func(t *testing.T) {
		// argv[0] is never treated as an option or a positional, even when it
		// looks like one.
		p, _ := newTestParser(t)
		require.NoError(t, p.AddFlag("-v", "--verbose", "", false))

		require.NoError(t, p.Parse([]string{"-v"}))
		assert.False(t, p.GetFlag("--verbose"))
	})

	t.Run("UnknownArgumentAborts", func(t *testing.T) {
		p, diag := newTestParser(t)
		require.NoError(t, p.AddFlag("-v", "--verbose", "", false))

		err := p.Parse([]string{"prog", "--nope", "-v"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownArgument)

		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "--nope", pe.Arg)
		assert.Contains(t, diag.String(), "--nope")
	})

	t.Run("MissingValueAborts", func(t *testing.T) {
		p, _ := newTestParser(t)
		require.NoError(t, p.AddString("-o", "--output", "", false, ""))

		err := p.Parse([]string{"prog", "--output"})
		assert.ErrorIs(t, err, ErrMissingValue)
	})

	t.Run("RequiredMissingAborts", func(t *testing.T) {
		p, diag := newTestParser(t)
		require.NoError(t, p.AddString("-i", "--input", "", true, ""))

		err := p.Parse([]string{"prog"})
		require.ErrorIs(t, err, ErrRequiredMissing)
		assert.Contains(t, diag.String(), "--input")
	})

	t.Run("OptionalMissingReadsBackDefault", func(t *testing.T) {
		p, _ := newTestParser(t)
		require.NoError(t, p.AddInt("-n", "--count", "", false, 10))

		require.NoError(t, p.Parse([]string{"prog"}))
		assert.Equal(t, int64(10), p.GetInt("--count"))
		assert.False(t, p.IsSet("--count"))
	})

	t.Run("RequiredSatisfied", func(t *testing.T) {
		p, _ := newTestParser(t)
		require.NoError(t, p.AddString("-i", "--input", "", true, ""))

		require.NoError(t, p.Parse([]string{"prog", "-i", "input.txt"}))
		assert.Equal(t, "input.txt", p.GetString("--input"))
		assert.True(t, p.IsSet("--input"))
	})

	t.Run("PositionalOrderPreserved", func(t *testing.T) {
		p, _ := newTestParser(t)
		require.NoError(t, p.AddFlag("-v", "--verbose", "", false))
		require.NoError(t, p.AddInt("-n", "--count", "", false, 0))

		require.NoError(t, p.Parse([]string{"prog", "a", "-v", "b", "-n", "3", "c"}))

		if diff := cmp.Diff([]string{"a", "b", "c"}, p.Positional()); diff != "" {
			t.Errorf("positional mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ValueTokenMayStartWithDigitOrDot", func(t *testing.T) {
		p, _ := newTestParser(t)
		require.NoError(t, p.AddFloat("-t", "--threshold", "", false, 0.5))

		require.NoError(t, p.Parse([]string{"prog", "-t", ".25"}))
		assert.Equal(t, 0.25, p.GetFloat("--threshold"))
	})

	t.Run("MalformedNumericCoercesToZero", func(t *testing.T) {
		// A latent sharp edge kept for compatibility: bad numeric text does
		// not fail the parse, only a validator can reject it.
		p, _ := newTestParser(t)
		require.NoError(t, p.AddInt("-n", "--count", "", false, 10))
		require.NoError(t, p.AddFloat("-t", "--threshold", "", false, 0.5))

		require.NoError(t, p.Parse([]string{"prog", "-n", "abc", "-t", "xyz"}))
		assert.Equal(t, int64(0), p.GetInt("--count"))
		assert.Equal(t, float64(0), p.GetFloat("--threshold"))
		assert.True(t, p.IsSet("--count"))
	})

	t.Run("ReparseResetsState", func(t *testing.T) {
		p, _ := newTestParser(t)
		require.NoError(t, p.AddInt("-n", "--count", "", false, 10))

		require.NoError(t, p.Parse([]string{"prog", "-n", "5", "one"}))
		assert.Equal(t, int64(5), p.GetInt("--count"))

		require.NoError(t, p.Parse([]string{"prog"}))
		assert.Equal(t, int64(10), p.GetInt("--count"))
		assert.False(t, p.IsSet("--count"))
		assert.Empty(t, p.Positional())
	})
}
