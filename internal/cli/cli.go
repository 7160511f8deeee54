// Package cli implements the passgen command line: flag driven generation,
// the interactive fallback and the helper subcommands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/logging"
	"github.com/vaultpass/passgen/internal/service"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// CLI exposes common dependencies to commands. Tests swap the streams for buffers.
type CLI struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Config  config.Config
	service *service.GeneratorService
}

// New returns a CLI bound to the process standard streams.
func New(cfg config.Config) *CLI {
	return &CLI{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		service: service.NewGeneratorService(),
	}
}

// Output writes a line to Stdout.
func (c *CLI) Output(format string, args ...any) {
	fmt.Fprintf(c.Stdout, format+"\n", args...)
}

// Warn writes a line to Stderr.
func (c *CLI) Warn(format string, args ...any) {
	fmt.Fprintf(c.Stderr, format+"\n", args...)
}

// Run executes the command line. args must not include the binary name.
func Run(ctx context.Context, c *CLI, args ...string) error {
	if c.service == nil {
		c.service = service.NewGeneratorService()
	}

	cmd := NewRootCmd(c)
	cmd.SetArgs(args)
	cmd.SetIn(c.Stdin)
	cmd.SetOut(c.Stdout)
	cmd.SetErr(c.Stderr)
	return cmd.ExecuteContext(ctx)
}

type rootOptions struct {
	Length     int
	Complexity string
	Count      int
	Info       bool
	Hash       bool
	LogLevel   string
}

// NewRootCmd builds the passgen command tree.
func NewRootCmd(c *CLI) *cobra.Command {
	opts := rootOptions{
		Length:     service.DefaultLength,
		Complexity: service.DefaultComplexity,
		Count:      service.DefaultCount,
		LogLevel:   c.Config.LogLevel,
	}

	rootCmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords at a chosen complexity",
		Long: `Generate random passwords at a chosen complexity and rate their strength.

Run without any arguments to choose the options interactively.`,
		Example: `  passgen --length 16 --complexity very-high --count 3
  passgen --info
  passgen score 'correct horse battery staple'
  passgen verify PASSWORD HASH`,
		Args:              cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := logging.Initialize(opts.LogLevel, c.Stderr); err != nil {
				return UserFacingError{Underlying: err, Message: fmt.Sprintf("invalid --log-level %q", opts.LogLevel)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().NFlag() == 0 {
				return runInteractive(cmd.Context(), c)
			}
			if opts.Info {
				printTiers(c.Stdout, c.service.Tiers())
				return nil
			}
			return generate(c, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVarP(&opts.Length, "length", "l", opts.Length, "Password length")
	flags.StringVarP(&opts.Complexity, "complexity", "c", opts.Complexity, "Complexity tier: "+tierList())
	flags.IntVarP(&opts.Count, "count", "n", opts.Count, fmt.Sprintf("Number of passwords to generate (1-%d)", service.MaxCount))
	flags.BoolVar(&opts.Info, "info", false, "List complexity tiers instead of generating")
	flags.BoolVar(&opts.Hash, "hash", false, "Print an Argon2id hash under each password")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newScoreCmd(c))
	rootCmd.AddCommand(newTokenCmd(c))
	rootCmd.AddCommand(newVerifyCmd(c))
	rootCmd.AddCommand(newVersionCmd(c))

	return rootCmd
}

func newVersionCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the passgen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			c.Output("passgen %s", Version)
		},
	}
}
