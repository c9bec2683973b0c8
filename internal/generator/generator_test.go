package generator_test

import (
	"strings"
	"testing"

	"github.com/ishnc/passforge/internal/charset"
	"github.com/ishnc/passforge/internal/domain"
	"github.com/ishnc/passforge/internal/generator"
)

func TestPassword_Length(t *testing.T) {
	g := generator.New()
	p := domain.DefaultPolicy()
	p.Length = 20

	pw, err := g.Password(p)
	if err != nil {
		t.Fatalf("Password: %v", err)
	}
	if len(pw) != 20 {
		t.Fatalf("want 20 chars, got %d (%q)", len(pw), pw)
	}
}

func TestPassword_LongOutput(t *testing.T) {
	g := generator.New()
	p := domain.DefaultPolicy()

	// The shuffle behind RequireEachClass must handle buffers past the
	// single-byte index range.
	for _, length := range []int{256, 257, 300} {
		p.Length = length
		pw, err := g.Password(p)
		if err != nil {
			t.Fatalf("Password length %d: %v", length, err)
		}
		if len(pw) != length {
			t.Fatalf("want %d chars, got %d", length, len(pw))
		}
	}
}

func TestPassword_TooShort(t *testing.T) {
	g := generator.New()
	p := domain.DefaultPolicy()
	p.Length = 3

	if _, err := g.Password(p); err == nil {
		t.Fatal("expected error for length below 4")
	}
}

func TestPassword_NoClassesSelected(t *testing.T) {
	g := generator.New()

	if _, err := g.Password(domain.Policy{Length: 12}); err == nil {
		t.Fatal("expected error when no character type is selected")
	}
}

func TestPassword_RequireEachClass(t *testing.T) {
	g := generator.New()
	p := domain.Policy{
		Length:           8,
		Lowercase:        true,
		Uppercase:        true,
		Digits:           true,
		Symbols:          true,
		RequireEachClass: true,
	}

	// Probabilistic property, so check a batch.
	for i := 0; i < 50; i++ {
		pw, err := g.Password(p)
		if err != nil {
			t.Fatalf("Password: %v", err)
		}
		if !strings.ContainsAny(pw, charset.Lowercase) ||
			!strings.ContainsAny(pw, charset.Uppercase) ||
			!strings.ContainsAny(pw, charset.Digits) ||
			!strings.ContainsAny(pw, charset.Symbols) {
			t.Fatalf("password %q missing a required class", pw)
		}
	}
}

func TestPassword_ExcludeAmbiguous(t *testing.T) {
	g := generator.New()
	p := domain.DefaultPolicy()
	p.Length = 64
	p.ExcludeAmbiguous = true

	for i := 0; i < 20; i++ {
		pw, err := g.Password(p)
		if err != nil {
			t.Fatalf("Password: %v", err)
		}
		if strings.ContainsAny(pw, charset.Ambiguous) {
			t.Fatalf("password %q contains ambiguous characters", pw)
		}
	}
}

func TestPassword_AlphabetOnly(t *testing.T) {
	g := generator.New()
	p := domain.Policy{Length: 32, Digits: true}

	pw, err := g.Password(p)
	if err != nil {
		t.Fatalf("Password: %v", err)
	}
	for _, c := range pw {
		if !strings.ContainsRune(charset.Digits, c) {
			t.Fatalf("password %q has %q outside the digits class", pw, c)
		}
	}
}

func TestPasswords_Count(t *testing.T) {
	g := generator.New()

	out, err := g.Passwords(5, domain.DefaultPolicy())
	if err != nil {
		t.Fatalf("Passwords: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("want 5 passwords, got %d", len(out))
	}

	if _, err := g.Passwords(0, domain.DefaultPolicy()); err == nil {
		t.Fatal("expected error for zero count")
	}
}

func TestPassphrase_Shape(t *testing.T) {
	g := generator.New()
	p := domain.WordlistPolicy{Words: 4, Separator: "."}

	pp, err := g.Passphrase(p)
	if err != nil {
		t.Fatalf("Passphrase: %v", err)
	}
	if got := len(strings.Split(pp, ".")); got != 4 {
		t.Fatalf("want 4 words, got %d (%q)", got, pp)
	}
}

func TestPassphrase_CapitalizeAndDigit(t *testing.T) {
	g := generator.New()
	p := domain.WordlistPolicy{Words: 3, Separator: "-", Capitalize: true, AppendDigit: true}

	pp, err := g.Passphrase(p)
	if err != nil {
		t.Fatalf("Passphrase: %v", err)
	}
	parts := strings.Split(pp, "-")
	for _, w := range parts {
		if w[0] < 'A' || w[0] > 'Z' {
			t.Fatalf("word %q not capitalized in %q", w, pp)
		}
	}
	last := parts[len(parts)-1]
	if c := last[len(last)-1]; c < '0' || c > '9' {
		t.Fatalf("last word %q should end in a digit", last)
	}
}

func TestPassphrase_TooFewWords(t *testing.T) {
	g := generator.New()
	if _, err := g.Passphrase(domain.WordlistPolicy{Words: 2, Separator: "-"}); err == nil {
		t.Fatal("expected error for fewer than 3 words")
	}
}
