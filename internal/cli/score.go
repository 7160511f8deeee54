package cli

import (
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/model"
)

func newScoreCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "score PASSWORD",
		Short: "Rate the strength of a password",
		Long: `Rate the strength of a password.

One point each for lowercase, uppercase, digits and punctuation, plus one
point per four characters up to three.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := c.service.Score(model.ScoreRequest{Password: args[0]})
			c.Output("Strength: %s", meter(termenv.NewOutput(c.Stdout), resp.Score, resp.MaxScore))
			return nil
		},
	}
}
