package generator

import (
	"errors"
	"fmt"

	"github.com/ishnc/passforge/internal/charset"
	"github.com/ishnc/passforge/internal/domain"
)

// MinLength is the shortest password the generator will produce.
const MinLength = 4

// Gen implements domain.Generator.
type Gen struct{}

func New() *Gen { return &Gen{} }

// Password generates one password under the policy.
func (g *Gen) Password(p domain.Policy) (string, error) {
	if p.Length < MinLength {
		return "", fmt.Errorf("password length must be at least %d characters", MinLength)
	}

	classes := charset.Classes(p)
	if len(classes) == 0 {
		return "", errors.New("at least one character type must be included")
	}
	alphabet := charset.Alphabet(p)

	if !p.RequireEachClass {
		return pick(alphabet, p.Length)
	}

	if p.Length < len(classes) {
		return "", fmt.Errorf(
			"password length must be at least %d when ensuring minimum of each type", len(classes))
	}

	// One guaranteed character per class, the rest from the full alphabet,
	// then shuffle so the guaranteed ones are not positionally predictable.
	buf := make([]byte, 0, p.Length)
	for _, class := range classes {
		i, err := randIndex(len(class))
		if err != nil {
			return "", err
		}
		buf = append(buf, class[i])
	}
	for len(buf) < p.Length {
		i, err := randIndex(len(alphabet))
		if err != nil {
			return "", err
		}
		buf = append(buf, alphabet[i])
	}
	if err := shuffle(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// Passwords generates n passwords under the same policy.
func (g *Gen) Passwords(n int, p domain.Policy) ([]string, error) {
	if n < 1 {
		return nil, errors.New("count must be at least 1")
	}
	out := make([]string, n)
	for i := range out {
		pw, err := g.Password(p)
		if err != nil {
			return nil, err
		}
		out[i] = pw
	}
	return out, nil
}

func pick(alphabet []byte, length int) (string, error) {
	buf := make([]byte, length)
	for i := range buf {
		j, err := randIndex(len(alphabet))
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[j]
	}
	return string(buf), nil
}
