package strength

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ishnc/passforge/internal/charset"
	"github.com/ishnc/passforge/internal/domain"
)

var labels = []string{"Very Weak", "Weak", "Fair", "Good", "Strong"}

// Analyze reports the composition and estimated strength of password.
// Length counts characters, not bytes.
func Analyze(password string) domain.StrengthReport {
	r := domain.StrengthReport{Length: utf8.RuneCountInString(password)}

	for _, c := range password {
		switch {
		case unicode.IsLower(c):
			r.HasLowercase = true
		case unicode.IsUpper(c):
			r.HasUppercase = true
		case unicode.IsDigit(c):
			r.HasDigits = true
		case strings.ContainsRune(charset.Symbols, c):
			r.HasSymbols = true
		}
	}

	for _, has := range []bool{r.HasLowercase, r.HasUppercase, r.HasDigits, r.HasSymbols} {
		if has {
			r.ClassCount++
		}
	}

	if r.Length >= 8 {
		r.Score++
	}
	if r.Length >= 12 {
		r.Score++
	}
	if r.Length >= 16 {
		r.Score++
	}
	if r.ClassCount >= 3 {
		r.Score++
	}
	if r.ClassCount == 4 {
		r.Score++
	}
	r.Label = labels[min(r.Score, len(labels)-1)]

	if n := alphabetSize(r); n > 0 && r.Length > 0 {
		r.EntropyBits = float64(r.Length) * math.Log2(float64(n))
	}
	return r
}

func alphabetSize(r domain.StrengthReport) int {
	n := 0
	if r.HasLowercase {
		n += len(charset.Lowercase)
	}
	if r.HasUppercase {
		n += len(charset.Uppercase)
	}
	if r.HasDigits {
		n += len(charset.Digits)
	}
	if r.HasSymbols {
		n += len(charset.Symbols)
	}
	return n
}
