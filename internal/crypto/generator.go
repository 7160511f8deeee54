package crypto

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/vaultpass/passgen/internal/logging"
	"github.com/vaultpass/passgen/internal/tier"
)

var ErrUnknownTier = errors.New("unknown complexity tier")

// Advisory reports a length below the tier's recommended minimum.
// Generation still succeeds.
type Advisory struct {
	Tier      string
	Length    int
	MinLength int
}

func (a Advisory) String() string {
	return fmt.Sprintf("complexity %q recommends at least %d characters, got %d", a.Tier, a.MinLength, a.Length)
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithAdvisory routes advisories to fn instead of the logger.
func WithAdvisory(fn func(Advisory)) GeneratorOption {
	return func(g *Generator) {
		g.advise = fn
	}
}

// WithoutAdvisory drops advisories.
func WithoutAdvisory() GeneratorOption {
	return WithAdvisory(func(Advisory) {})
}

// Generator samples passwords from tier alphabets. The zero value logs
// advisories through the package logger.
type Generator struct {
	advise func(Advisory)
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...GeneratorOption) Generator {
	var g Generator
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Generate returns a password of exactly length characters, each drawn
// independently and uniformly from the named tier's alphabet. The source is
// math/rand/v2 and is not cryptographically secure.
func (g Generator) Generate(length int, tierName string) (string, error) {
	t, ok := tier.ByName(tierName)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, tierName)
	}

	if length < t.MinLength {
		g.notify(Advisory{Tier: t.Name, Length: length, MinLength: t.MinLength})
	}
	if length <= 0 {
		return "", nil
	}

	result := make([]byte, length)
	for i := range result {
		result[i] = randChar(t.Alphabet)
	}

	return string(result), nil
}

func (g Generator) notify(a Advisory) {
	if g.advise != nil {
		g.advise(a)
		return
	}
	logging.L.Warn("password shorter than recommended",
		zap.String("tier", a.Tier),
		zap.Int("length", a.Length),
		zap.Int("min_length", a.MinLength),
	)
}

var defaultGenerator Generator

// Generate uses a Generator that logs advisories.
func Generate(length int, tierName string) (string, error) {
	return defaultGenerator.Generate(length, tierName)
}

// randChar picks a random character from an ASCII charset.
func randChar(charset string) byte {
	return charset[rand.IntN(len(charset))]
}
