package generator

import (
	"errors"
	"strings"

	"github.com/ishnc/passforge/internal/charset"
	"github.com/ishnc/passforge/internal/domain"
)

// MinWords is the shortest passphrase the generator will produce.
const MinWords = 3

// Passphrase generates a wordlist passphrase under the policy.
func (g *Gen) Passphrase(p domain.WordlistPolicy) (string, error) {
	if p.Words < MinWords {
		return "", errors.New("passphrase needs at least 3 words")
	}

	parts := make([]string, p.Words)
	for i := range parts {
		j, err := randIndex16(len(words))
		if err != nil {
			return "", err
		}
		w := words[j]
		if p.Capitalize {
			w = strings.ToUpper(w[:1]) + w[1:]
		}
		parts[i] = w
	}

	if p.AppendDigit {
		d, err := randIndex(len(charset.Digits))
		if err != nil {
			return "", err
		}
		parts[len(parts)-1] += string(charset.Digits[d])
	}

	return strings.Join(parts, p.Separator), nil
}
