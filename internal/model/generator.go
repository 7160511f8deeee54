package model

// GenerateRequest represents a password generation request.
// Nil Length and Count and an empty Complexity fall back to the service
// defaults. An explicit zero count is rejected.
type GenerateRequest struct {
	Length     *int   `json:"length"`
	Complexity string `json:"complexity"`
	Count      *int   `json:"count"`
	Hash       bool   `json:"hash"`
}

// GeneratedPassword is a single password with its strength score.
type GeneratedPassword struct {
	Password string `json:"password"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	Hash     string `json:"hash,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Complexity string              `json:"complexity"`
	Length     int                 `json:"length"`
	Advisory   string              `json:"advisory,omitempty"`
	Passwords  []GeneratedPassword `json:"passwords"`
}

// ScoreRequest asks for the strength of an arbitrary password.
type ScoreRequest struct {
	Password string `json:"password"`
}

// ScoreResponse represents a strength score.
type ScoreResponse struct {
	Score    int `json:"score"`
	MaxScore int `json:"max_score"`
	Length   int `json:"length"`
}

// TierResponse describes a complexity tier. Ordinal is 1-based.
type TierResponse struct {
	Ordinal     int    `json:"ordinal"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Alphabet    string `json:"alphabet"`
	MinLength   int    `json:"min_length"`
}
