package charset

import (
	"strings"

	"github.com/ishnc/passforge/internal/domain"
)

const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Ambiguous lists characters commonly misread when a password is
	// transcribed by hand.
	Ambiguous = "0O1lI|`'\""
)

// Classes returns the character classes selected by the policy, in a fixed
// order (lower, upper, digits, symbols), with ambiguous characters stripped
// when the policy asks for it. Classes emptied by the filter are dropped.
func Classes(p domain.Policy) [][]byte {
	var out [][]byte
	add := func(class string) {
		c := []byte(class)
		if p.ExcludeAmbiguous {
			c = stripAmbiguous(c)
		}
		if len(c) > 0 {
			out = append(out, c)
		}
	}
	if p.Lowercase {
		add(Lowercase)
	}
	if p.Uppercase {
		add(Uppercase)
	}
	if p.Digits {
		add(Digits)
	}
	if p.Symbols {
		add(Symbols)
	}
	return out
}

// Alphabet concatenates the selected classes into one draw pool.
func Alphabet(p domain.Policy) []byte {
	var out []byte
	for _, c := range Classes(p) {
		out = append(out, c...)
	}
	return out
}

func stripAmbiguous(class []byte) []byte {
	if !strings.ContainsAny(string(class), Ambiguous) {
		return class
	}
	out := make([]byte, 0, len(class))
	for _, c := range class {
		if strings.IndexByte(Ambiguous, c) < 0 {
			out = append(out, c)
		}
	}
	return out
}
