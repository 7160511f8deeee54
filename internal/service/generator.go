package service

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/tier"
)

const (
	DefaultLength     = 12
	DefaultComplexity = "high"
	DefaultCount      = 1

	MaxCount  = 20
	MaxLength = 4096
)

var (
	ErrInvalidCount  = fmt.Errorf("count must be between 1 and %d", MaxCount)
	ErrInvalidLength = fmt.Errorf("length must be between 0 and %d", MaxLength)
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	hash func(string) (string, error)
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{hash: crypto.HashPassword}
}

// Generate produces req.Count passwords, each scored and optionally hashed.
// A length below the tier minimum is reported in Advisory, not as an error.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := DefaultLength
	if req.Length != nil {
		length = *req.Length
	}
	if length < 0 || length > MaxLength {
		return model.GenerateResponse{}, ErrInvalidLength
	}

	complexity := req.Complexity
	if complexity == "" {
		complexity = DefaultComplexity
	}

	count := DefaultCount
	if req.Count != nil {
		count = *req.Count
	}
	if count < 1 || count > MaxCount {
		return model.GenerateResponse{}, ErrInvalidCount
	}

	var advisory *crypto.Advisory
	gen := crypto.NewGenerator(crypto.WithAdvisory(func(a crypto.Advisory) {
		advisory = &a
	}))

	resp := model.GenerateResponse{
		Complexity: complexity,
		Length:     length,
		Passwords:  make([]model.GeneratedPassword, 0, count),
	}

	for range count {
		password, err := gen.Generate(length, complexity)
		if err != nil {
			return model.GenerateResponse{}, err
		}

		generated := model.GeneratedPassword{
			Password: password,
			Score:    crypto.Score(password),
			MaxScore: crypto.MaxScore,
		}
		if req.Hash {
			generated.Hash, err = s.hash(password)
			if err != nil {
				return model.GenerateResponse{}, fmt.Errorf("hashing password: %w", err)
			}
		}
		resp.Passwords = append(resp.Passwords, generated)
	}

	if advisory != nil {
		resp.Advisory = advisory.String()
	}

	return resp, nil
}

// Score rates an arbitrary password.
func (s *GeneratorService) Score(req model.ScoreRequest) model.ScoreResponse {
	return model.ScoreResponse{
		Score:    crypto.Score(req.Password),
		MaxScore: crypto.MaxScore,
		Length:   utf8.RuneCountInString(req.Password),
	}
}

// Tiers lists every complexity tier with 1-based ordinals.
func (s *GeneratorService) Tiers() []model.TierResponse {
	tiers := tier.All()
	resp := make([]model.TierResponse, len(tiers))
	for i, t := range tiers {
		resp[i] = model.TierResponse{
			Ordinal:     i + 1,
			Name:        t.Name,
			Description: t.Description,
			Alphabet:    t.Alphabet,
			MinLength:   t.MinLength,
		}
	}
	return resp
}

// IsValidationError reports whether err was caused by bad input rather than
// an internal failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrInvalidLength) ||
		errors.Is(err, crypto.ErrUnknownTier)
}
