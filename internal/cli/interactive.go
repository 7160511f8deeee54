package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
	"github.com/vaultpass/passgen/internal/tier"
)

// prompter asks questions on the CLI streams until an answer validates.
type prompter struct {
	c       *CLI
	scanner *bufio.Scanner
}

// ask prints question and passes each answer to parse until it returns ok.
// The message from a rejected answer is printed before asking again.
func (p *prompter) ask(ctx context.Context, question string, parse func(string) (ok bool, msg string)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(p.c.Stdout, question)
		if !p.scanner.Scan() {
			fmt.Fprintln(p.c.Stdout)
			if err := p.scanner.Err(); err != nil {
				return err
			}
			return ErrInputClosed
		}

		ok, msg := parse(strings.TrimSpace(p.scanner.Text()))
		if ok {
			return nil
		}
		p.c.Output("%s", msg)
	}
}

func runInteractive(ctx context.Context, c *CLI) error {
	p := &prompter{c: c, scanner: bufio.NewScanner(c.Stdin)}

	c.Output("Interactive password generator")
	c.Output("%s", strings.Repeat("=", 40))
	printTiers(c.Stdout, c.service.Tiers())

	var chosen tier.Tier
	question := fmt.Sprintf("Select complexity (1-%d or name): ", tier.Count())
	err := p.ask(ctx, question, func(answer string) (bool, string) {
		t, ok := parseTier(answer)
		if !ok {
			return false, fmt.Sprintf("Invalid choice, enter a number from 1 to %d or one of: %s", tier.Count(), tierList())
		}
		chosen = t
		return true, ""
	})
	if err != nil {
		return err
	}

	var length int
	question = fmt.Sprintf("Password length (min %d): ", chosen.MinLength)
	err = p.ask(ctx, question, func(answer string) (bool, string) {
		n, err := strconv.Atoi(answer)
		switch {
		case err != nil:
			return false, "Enter a whole number."
		case n < chosen.MinLength:
			return false, fmt.Sprintf("Length must be at least %d.", chosen.MinLength)
		case n > service.MaxLength:
			return false, fmt.Sprintf("Length must be at most %d.", service.MaxLength)
		}
		length = n
		return true, ""
	})
	if err != nil {
		return err
	}

	var count int
	question = fmt.Sprintf("How many passwords? (1-%d): ", service.MaxCount)
	err = p.ask(ctx, question, func(answer string) (bool, string) {
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > service.MaxCount {
			return false, fmt.Sprintf("Enter a number from 1 to %d.", service.MaxCount)
		}
		count = n
		return true, ""
	})
	if err != nil {
		return err
	}

	resp, err := c.service.Generate(model.GenerateRequest{
		Length:     &length,
		Complexity: chosen.Name,
		Count:      &count,
	})
	if err != nil {
		return err
	}

	c.Output("")
	c.Output("Results (complexity %s)", resp.Complexity)
	c.Output("%s", strings.Repeat("-", 40))
	printPasswords(c.Stdout, resp.Passwords)
	return nil
}

// parseTier accepts a 1-based tier number or a tier name.
func parseTier(answer string) (tier.Tier, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		return tier.ByOrdinal(n - 1)
	}
	return tier.ByName(strings.ToLower(answer))
}
