package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/crypto"
)

var errNoAPISecret = errors.New("PASSGEN_API_SECRET is not set")

type tokenOptions struct {
	Subject string
	TTL     time.Duration
}

func newTokenCmd(c *CLI) *cobra.Command {
	opts := tokenOptions{TTL: c.Config.TokenTTL}
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the passgen API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.Config.APISecret == "" {
				return UserFacingError{Underlying: errNoAPISecret, Message: "set PASSGEN_API_SECRET to the secret the API server uses"}
			}

			token, err := crypto.GenerateToken(opts.Subject, c.Config.APISecret, opts.TTL)
			if err != nil {
				if errors.Is(err, crypto.ErrEmptySubject) {
					return UserFacingError{Underlying: err, Message: "--subject is required"}
				}
				return err
			}

			c.Output("%s", token)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Subject, "subject", "", "Name of the API client the token is for")
	cmd.Flags().DurationVar(&opts.TTL, "ttl", opts.TTL, "Token lifetime")

	return cmd
}
