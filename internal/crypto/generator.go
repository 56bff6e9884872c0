package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	compactSpecial = "!@#$%^&*"

	MaxLength = 128
)

var (
	ErrInvalidLength      = errors.New("password length must be a positive integer")
	ErrLengthTooLong      = errors.New("password length must be at most 128")
	ErrInsufficientLength = errors.New("password length must be at least equal to the number of selected character types")
)

// CharacterClass is one of the fixed alphabets a password can draw from.
type CharacterClass int

const (
	Lowercase CharacterClass = iota
	Uppercase
	Digits
	Special
)

// Alphabet returns the literal characters of the class.
func (c CharacterClass) Alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Digits:
		return digitChars
	case Special:
		return specialChars
	default:
		return lowercaseChars
	}
}

func (c CharacterClass) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Digits:
		return "digits"
	case Special:
		return "special"
	default:
		return "lowercase"
	}
}

// Flags selects the optional classes mixed into the lowercase base alphabet.
type Flags struct {
	Uppercase bool
	Numbers   bool
	Special   bool
}

// DefaultFlags returns the flags used by the custom tier when none are given.
func DefaultFlags() Flags {
	return Flags{Uppercase: true, Numbers: true, Special: false}
}

// Classes returns the enabled optional classes in a fixed order.
func (f Flags) Classes() []CharacterClass {
	var classes []CharacterClass
	if f.Uppercase {
		classes = append(classes, Uppercase)
	}
	if f.Numbers {
		classes = append(classes, Digits)
	}
	if f.Special {
		classes = append(classes, Special)
	}
	return classes
}

// ShortLengthPolicy decides what Generate does when the requested length
// cannot hold one character of every enabled class.
type ShortLengthPolicy int

const (
	// ClampUp raises the length to the number of enabled classes.
	ClampUp ShortLengthPolicy = iota
	// Reject returns ErrInsufficientLength.
	Reject
)

// Generator produces passwords. The zero value is not usable; use NewGenerator.
// A Generator holds no mutable state and is safe for concurrent use.
type Generator struct {
	random io.Reader
	policy ShortLengthPolicy
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandom replaces crypto/rand.Reader as the randomness source.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) {
		g.random = r
	}
}

// WithShortLengthPolicy sets how Generate handles lengths below the
// guaranteed-class count.
func WithShortLengthPolicy(p ShortLengthPolicy) Option {
	return func(g *Generator) {
		g.policy = p
	}
}

// NewGenerator creates a Generator backed by crypto/rand unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		random: rand.Reader,
		policy: ClampUp,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate creates a password using the package default generator.
func Generate(length int, flags Flags) (string, error) {
	return defaultGenerator.Generate(length, flags)
}

// Generate creates a password of the given length from lowercase plus the
// classes enabled in flags. At least one character of each enabled class is
// included, and the result is shuffled so those characters have no fixed position.
func (g *Generator) Generate(length int, flags Flags) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}
	if length > MaxLength {
		return "", ErrLengthTooLong
	}

	// Build the character pool and collect required sets.
	pool := lowercaseChars
	required := flags.Classes()
	for _, class := range required {
		pool += class.Alphabet()
	}

	if length < len(required) {
		if g.policy == Reject {
			return "", ErrInsufficientLength
		}
		length = len(required)
	}

	result := make([]byte, length)

	// Guarantee at least one character from each selected type.
	for i, class := range required {
		ch, err := g.randChar(class.Alphabet())
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the full pool.
	for i := len(required); i < length; i++ {
		ch, err := g.randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := g.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// fill writes length independent uniform draws from charset.
func (g *Generator) fill(charset string, length int) (string, error) {
	result := make([]byte, length)
	for i := range result {
		ch, err := g.randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	return string(result), nil
}

// randChar picks a uniformly random character from charset.
func (g *Generator) randChar(charset string) (byte, error) {
	n, err := g.randInt(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.randInt(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

func (g *Generator) randInt(max int) (int, error) {
	n, err := rand.Int(g.random, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("reading randomness: %w", err)
	}
	return int(n.Int64()), nil
}
