package cmd

import (
	"fmt"
	"strings"

	"github.com/warpdl/cookieparse/pkg/cookies"
)

// HeaderFromPairs converts --cookie flag values into a Cookie header value.
// Input: ["session=abc", "user=xyz"]
// Output: "session=abc; user=xyz"
//
// Returns an empty string if pairs is empty.
// Returns an error if any pair is missing '=' or has an invalid name.
func HeaderFromPairs(pairs []string) (string, error) {
	if len(pairs) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		trimmed := strings.TrimSpace(pair)
		name, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return "", fmt.Errorf("invalid cookie format: %q (expected 'name=value')", pair)
		}
		c, err := cookies.NewCookie(name, value)
		if err != nil {
			return "", fmt.Errorf("invalid cookie format: %q: %w", pair, err)
		}
		parts = append(parts, c.String())
	}

	return strings.Join(parts, "; "), nil
}
