package crypto

import (
	"strings"
	"unicode/utf8"

	"github.com/vaultpass/passgen/internal/tier"
)

const (
	// MaxScore is the best result Score can return: four character
	// categories plus the capped length bonus.
	MaxScore = 4 + maxLengthBonus

	maxLengthBonus   = 3
	lengthBonusChars = 4
)

// Score rates a password from 0 to MaxScore. Each of ASCII lowercase,
// uppercase, digit and punctuation present adds one point, and every four
// characters add one more, up to three. Non-ASCII runes earn no category
// point but still count toward length.
func Score(password string) int {
	var hasLower, hasUpper, hasDigit, hasPunct bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r < utf8.RuneSelf && strings.ContainsRune(tier.Punctuation, r):
			hasPunct = true
		}
	}

	score := 0
	for _, present := range []bool{hasLower, hasUpper, hasDigit, hasPunct} {
		if present {
			score++
		}
	}

	return score + min(utf8.RuneCountInString(password)/lengthBonusChars, maxLengthBonus)
}
