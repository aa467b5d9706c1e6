package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("Prefixes and uppercases", func(t *testing.T) {
		assert.Equal(t, "LBL001", Normalize("LBL", "001"))
		assert.Equal(t, "LBL001", Normalize("LBL", " 001 "))
		assert.Equal(t, "LBLA9", Normalize("LBL", "a9"))
	})

	t.Run("Prefix is applied exactly once", func(t *testing.T) {
		once := Normalize("LBL", "001")
		// Re-canonicalizing the normalized code must not grow another prefix.
		assert.Equal(t, once, Canonical(once))
	})

	t.Run("Canonical is idempotent", func(t *testing.T) {
		for _, s := range []string{"  x1 ", "x1", "X1", ""} {
			assert.Equal(t, Canonical(s), Canonical(Canonical(s)))
		}
	})

	t.Run("Empty prefix", func(t *testing.T) {
		assert.Equal(t, "001", Normalize("", "001"))
	})
}
