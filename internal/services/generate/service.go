package generate

import (
	"fmt"
	"sort"

	"github.com/ishnc/passforge/internal/domain"
)

// Service resolves profiles and generates passwords.
type Service struct {
	gen      domain.Generator
	profiles map[string]domain.Policy
	def      string
}

func New(gen domain.Generator, profiles map[string]domain.Policy, defaultProfile string) *Service {
	return &Service{gen: gen, profiles: profiles, def: defaultProfile}
}

// Policy resolves a named profile; the empty name means the default profile,
// falling back to the built-in defaults when none is configured.
func (s *Service) Policy(name string) (domain.Policy, error) {
	if name == "" {
		name = s.def
	}
	if name == "" {
		return domain.DefaultPolicy(), nil
	}
	p, ok := s.profiles[name]
	if !ok {
		return domain.Policy{}, fmt.Errorf("unknown profile %q", name)
	}
	return p, nil
}

// ProfileNames lists configured profiles, sorted.
func (s *Service) ProfileNames() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultProfile is the configured default profile name, may be empty.
func (s *Service) DefaultProfile() string { return s.def }

func (s *Service) Password(p domain.Policy) (string, error) { return s.gen.Password(p) }

func (s *Service) Passwords(n int, p domain.Policy) ([]string, error) {
	return s.gen.Passwords(n, p)
}

func (s *Service) Passphrase(p domain.WordlistPolicy) (string, error) {
	return s.gen.Passphrase(p)
}
