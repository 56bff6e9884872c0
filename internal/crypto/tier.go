package crypto

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const MaxBatchCount = 100

var (
	ErrUnknownComplexity = errors.New("unknown complexity tier")
	ErrInvalidCount      = errors.New("count must be a positive integer")
	ErrCountTooLarge     = errors.New("count exceeds the maximum batch size")
)

// Complexity names a generation tier.
type Complexity string

const (
	Easy       Complexity = "easy"
	Medium     Complexity = "medium"
	Hard       Complexity = "hard"
	VeryStrong Complexity = "very_strong"
	Custom     Complexity = "custom"
)

// Tier bundles a default length, a clamp window and an alphabet.
type Tier struct {
	Name          Complexity
	Aliases       []string
	DefaultLength int
	MinLength     int
	MaxLength     int
	Alphabet      string
}

// Clamp fits length into the tier window. Zero selects the default length.
func (t Tier) Clamp(length int) int {
	if length == 0 {
		return t.DefaultLength
	}
	return min(max(length, t.MinLength), t.MaxLength)
}

var letters = lowercaseChars + uppercaseChars

// tiers is the canonical tier table. Custom has no fixed alphabet: it is
// built from the request flags.
var tiers = []Tier{
	{Name: Easy, Aliases: []string{"simple"}, DefaultLength: 8, MinLength: 6, MaxLength: 20, Alphabet: lowercaseChars},
	{Name: Medium, DefaultLength: 12, MinLength: 8, MaxLength: 25, Alphabet: letters + digitChars},
	{Name: Hard, Aliases: []string{"strong"}, DefaultLength: 16, MinLength: 10, MaxLength: 30, Alphabet: letters + digitChars + compactSpecial},
	{Name: VeryStrong, Aliases: []string{"very-strong"}, DefaultLength: 20, MinLength: 12, MaxLength: 40, Alphabet: letters + digitChars + specialChars},
	{Name: Custom, DefaultLength: 12, MinLength: 1, MaxLength: MaxLength},
}

// Tiers returns a copy of the canonical tier table.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	for i, t := range tiers {
		t.Aliases = slices.Clone(t.Aliases)
		out[i] = t
	}
	return out
}

// ParseComplexity resolves a tier name or alias, ignoring case and
// surrounding whitespace.
func ParseComplexity(name string) (Complexity, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, t := range tiers {
		if string(t.Name) == key {
			return t.Name, nil
		}
		for _, alias := range t.Aliases {
			if alias == key {
				return t.Name, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownComplexity, name)
}

// LookupTier returns the tier for c.
func LookupTier(c Complexity) (Tier, error) {
	for _, t := range tiers {
		if t.Name == c {
			t.Aliases = slices.Clone(t.Aliases)
			return t, nil
		}
	}
	return Tier{}, fmt.Errorf("%w: %q", ErrUnknownComplexity, string(c))
}

// GenerationRequest describes one password. Length 0 means omitted.
// Flags are only consulted for the custom tier; nil selects DefaultFlags.
type GenerationRequest struct {
	Complexity Complexity
	Length     int
	Flags      *Flags
}

// GenerateByComplexity creates a password using the package default generator.
func GenerateByComplexity(c Complexity, length int) (string, error) {
	return defaultGenerator.GenerateByComplexity(c, length)
}

// GenerateByComplexity creates a password for a named tier with default flags
// for the custom tier.
func (g *Generator) GenerateByComplexity(c Complexity, length int) (string, error) {
	return g.GenerateRequest(GenerationRequest{Complexity: c, Length: length})
}

// GenerateRequest creates a single password for req.
//
// Non-custom tiers draw every character independently from the tier alphabet,
// after clamping an explicit length into the tier window. Custom delegates to
// Generate with the request flags and rejects lengths above MaxLength instead
// of clamping them.
func (g *Generator) GenerateRequest(req GenerationRequest) (string, error) {
	if req.Length < 0 {
		return "", ErrInvalidLength
	}

	tier, err := LookupTier(req.Complexity)
	if err != nil {
		return "", err
	}

	if tier.Name == Custom {
		flags := DefaultFlags()
		if req.Flags != nil {
			flags = *req.Flags
		}
		length := req.Length
		if length == 0 {
			length = tier.DefaultLength
		}
		return g.Generate(length, flags)
	}

	return g.fill(tier.Alphabet, tier.Clamp(req.Length))
}

// BatchGenerate creates count passwords using the package default generator.
func BatchGenerate(req GenerationRequest, count int) ([]string, error) {
	return defaultGenerator.BatchGenerate(req, count)
}

// BatchGenerate creates count independent passwords for req, in generation
// order. Duplicates are possible.
func (g *Generator) BatchGenerate(req GenerationRequest, count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if count > MaxBatchCount {
		return nil, ErrCountTooLarge
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := g.GenerateRequest(req)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}
