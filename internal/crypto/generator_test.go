package crypto

import (
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vaultpass/passgen/internal/logging"
	"github.com/vaultpass/passgen/internal/tier"
)

func quietGenerator() Generator {
	return NewGenerator(WithoutAdvisory())
}

func TestGenerateLengthAndAlphabet(t *testing.T) {
	g := quietGenerator()

	for _, tr := range tier.All() {
		for _, length := range []int{0, 1, tr.MinLength, 20, 257} {
			password, err := g.Generate(length, tr.Name)
			require.NoError(t, err, "%s/%d", tr.Name, length)
			assert.Len(t, password, length, "%s/%d", tr.Name, length)
			for _, ch := range password {
				assert.True(t, strings.ContainsRune(tr.Alphabet, ch),
					"%s password contains unexpected character %q", tr.Name, ch)
			}
		}
	}
}

func TestGenerateHighIsAlphanumeric(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z0-9]{12}$`)

	for range 50 {
		password, err := quietGenerator().Generate(12, "high")
		require.NoError(t, err)
		assert.Regexp(t, pattern, password)
	}
}

func TestGenerateUnknownTier(t *testing.T) {
	for _, name := range []string{"invalid", "", "HIGH", "ultra"} {
		password, err := quietGenerator().Generate(10, name)
		assert.ErrorIs(t, err, ErrUnknownTier)
		assert.Empty(t, password)
	}
}

func TestGenerateAdvisory(t *testing.T) {
	var got []Advisory
	g := NewGenerator(WithAdvisory(func(a Advisory) { got = append(got, a) }))

	password, err := g.Generate(4, "very-high")
	require.NoError(t, err)
	assert.Len(t, password, 4)
	require.Len(t, got, 1)
	assert.Equal(t, Advisory{Tier: "very-high", Length: 4, MinLength: 10}, got[0])
	assert.Contains(t, got[0].String(), "at least 10")

	_, err = g.Generate(10, "very-high")
	require.NoError(t, err)
	assert.Len(t, got, 1, "minimum length must not trigger an advisory")

	_, err = g.Generate(0, "low")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGenerateNegativeLength(t *testing.T) {
	var got []Advisory
	g := NewGenerator(WithAdvisory(func(a Advisory) { got = append(got, a) }))

	password, err := g.Generate(-3, "medium")
	require.NoError(t, err)
	assert.Empty(t, password)
	assert.Len(t, got, 1)
}

func TestGenerateLogsAdvisoryByDefault(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logging.Use(zap.New(core))
	t.Cleanup(func() { logging.Use(zap.NewNop()) })

	password, err := Generate(2, "high")
	require.NoError(t, err)
	assert.Len(t, password, 2)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "high", fields["tier"])
	assert.EqualValues(t, 2, fields["length"])
	assert.EqualValues(t, 8, fields["min_length"])
	for _, v := range fields {
		assert.NotEqual(t, password, v, "generated password must not be logged")
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	g := quietGenerator()
	seen := make(map[string]bool)

	for range 100 {
		password, err := g.Generate(12, "high")
		require.NoError(t, err)
		assert.False(t, seen[password], "duplicate password generated: %q", password)
		seen[password] = true
	}
}

func TestGenerateCoversAlphabet(t *testing.T) {
	g := quietGenerator()
	distinct := make(map[rune]bool)

	for range 5 {
		password, err := g.Generate(100, "very-high")
		require.NoError(t, err)
		for _, ch := range password {
			distinct[ch] = true
		}
	}

	assert.Greater(t, len(distinct), 20)
}

func TestGenerateConcurrent(t *testing.T) {
	g := quietGenerator()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				password, err := g.Generate(16, "very-high")
				if err != nil {
					errs <- err
					return
				}
				if len(password) != 16 {
					errs <- assert.AnError
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
