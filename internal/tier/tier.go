// Package tier holds the fixed set of password complexity tiers.
package tier

// Character classes. Tier alphabets are built from these and the strength
// scorer checks coverage against the same sets.
const (
	Lowercase   = "abcdefghijklmnopqrstuvwxyz"
	Uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits      = "0123456789"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Level identifies a complexity tier. The zero value is Low.
type Level int

const (
	Low Level = iota
	Medium
	High
	VeryHigh
)

func (l Level) String() string {
	if t, ok := ByOrdinal(int(l)); ok {
		return t.Name
	}
	return "unknown"
}

// Tier describes the alphabet a password is sampled from and the length
// recommended for it. MinLength is advisory only.
type Tier struct {
	Level       Level
	Name        string
	Description string
	Alphabet    string
	MinLength   int
}

// registry is ordered by Level; ByOrdinal relies on that.
var registry = [...]Tier{
	{
		Level:       Low,
		Name:        "low",
		Description: "lowercase letters only",
		Alphabet:    Lowercase,
		MinLength:   4,
	},
	{
		Level:       Medium,
		Name:        "medium",
		Description: "upper and lowercase letters",
		Alphabet:    Lowercase + Uppercase,
		MinLength:   6,
	},
	{
		Level:       High,
		Name:        "high",
		Description: "letters and digits",
		Alphabet:    Lowercase + Uppercase + Digits,
		MinLength:   8,
	},
	{
		Level:       VeryHigh,
		Name:        "very-high",
		Description: "letters, digits and punctuation",
		Alphabet:    Lowercase + Uppercase + Digits + Punctuation,
		MinLength:   10,
	},
}

// ByName returns the tier with the exact given name.
func ByName(name string) (Tier, bool) {
	for _, t := range registry {
		if t.Name == name {
			return t, true
		}
	}
	return Tier{}, false
}

// ByOrdinal returns the tier at the 0-based index. Out of range indexes
// report false instead of panicking.
func ByOrdinal(index int) (Tier, bool) {
	if index < 0 || index >= len(registry) {
		return Tier{}, false
	}
	return registry[index], true
}

// All returns every tier in ascending order of complexity.
func All() []Tier {
	tiers := make([]Tier, len(registry))
	copy(tiers, registry[:])
	return tiers
}

// Names returns tier names in ascending order of complexity.
func Names() []string {
	names := make([]string, len(registry))
	for i, t := range registry {
		names[i] = t.Name
	}
	return names
}

// Count is the number of registered tiers.
func Count() int {
	return len(registry)
}
