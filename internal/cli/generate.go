package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
	"github.com/vaultpass/passgen/internal/tier"
)

func generate(c *CLI, opts rootOptions) error {
	resp, err := c.service.Generate(model.GenerateRequest{
		Length:     &opts.Length,
		Complexity: opts.Complexity,
		Count:      &opts.Count,
		Hash:       opts.Hash,
	})
	if err != nil {
		return generateError(err, opts)
	}

	if resp.Advisory != "" {
		c.Warn("warning: %s", resp.Advisory)
	}

	c.Output("Generating %d password(s): length %d, complexity %s", len(resp.Passwords), resp.Length, resp.Complexity)
	c.Output("")
	printPasswords(c.Stdout, resp.Passwords)
	return nil
}

func generateError(err error, opts rootOptions) error {
	switch {
	case errors.Is(err, crypto.ErrUnknownTier):
		return UserFacingError{
			Underlying: err,
			Message:    fmt.Sprintf("unknown complexity %q, valid values are: %s", opts.Complexity, tierList()),
		}
	case errors.Is(err, service.ErrInvalidCount):
		return UserFacingError{Underlying: err, Message: fmt.Sprintf("invalid --count %d: %s", opts.Count, err)}
	case errors.Is(err, service.ErrInvalidLength):
		return UserFacingError{Underlying: err, Message: fmt.Sprintf("invalid --length %d: %s", opts.Length, err)}
	default:
		return err
	}
}

func tierList() string {
	return strings.Join(tier.Names(), ", ")
}
