package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/crypto"
)

var errHashMismatch = errors.New("password does not match hash")

func newVerifyCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:     "verify PASSWORD HASH",
		Short:   "Check a password against an Argon2id hash printed by --hash",
		Example: `  passgen verify 'k3Jd9aQx' '$argon2id$v=19$m=65536,t=3,p=2$...'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			match, err := crypto.VerifyPassword(args[0], args[1])
			switch {
			case errors.Is(err, crypto.ErrInvalidHashFormat), errors.Is(err, crypto.ErrIncompatibleVersion):
				return UserFacingError{Underlying: err, Message: "not an Argon2id hash produced by passgen --hash"}
			case err != nil:
				return err
			case !match:
				return errHashMismatch
			}

			c.Output("Password matches.")
			return nil
		},
	}
}
