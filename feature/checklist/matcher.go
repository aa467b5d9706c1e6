package checklist

import "strings"

// Normalize derives the candidate code for a raw user input: the configured
// literal prefix is prepended to the trimmed input and the result is
// canonicalized. The prefix is applied exactly once, at this boundary;
// canonicalization itself is idempotent.
func Normalize(prefix, raw string) string {
	return Canonical(prefix + strings.TrimSpace(raw))
}
