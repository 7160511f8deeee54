package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/lensesio/tableprinter"
	"github.com/muesli/termenv"

	"github.com/vaultpass/passgen/internal/model"
)

const (
	filledMark = "★"
	emptyMark  = "☆"
)

type tierRow struct {
	Ordinal     int    `header:"#"`
	Name        string `header:"NAME"`
	Description string `header:"DESCRIPTION"`
	MinLength   int    `header:"MIN LENGTH"`
}

func printTiers(w io.Writer, tiers []model.TierResponse) {
	rows := make([]tierRow, len(tiers))
	for i, t := range tiers {
		rows[i] = tierRow{Ordinal: t.Ordinal, Name: t.Name, Description: t.Description, MinLength: t.MinLength}
	}

	fmt.Fprintln(w, "Complexity tiers:")
	printTable(rows, w)
	fmt.Fprintln(w)
}

func printTable(data any, w io.Writer) {
	table := tableprinter.New(w)

	table.HeaderAlignment = tableprinter.AlignLeft
	table.AutoWrapText = false
	table.DefaultAlignment = tableprinter.AlignLeft
	table.CenterSeparator = ""
	table.ColumnSeparator = ""
	table.RowSeparator = ""
	table.HeaderLine = false
	table.BorderBottom = false
	table.BorderLeft = false
	table.BorderRight = false
	table.BorderTop = false
	table.Print(data)
}

func printPasswords(w io.Writer, passwords []model.GeneratedPassword) {
	out := termenv.NewOutput(w)
	for i, p := range passwords {
		fmt.Fprintf(w, "Password %d: %s\n", i+1, out.String(p.Password).Bold())
		fmt.Fprintf(w, "Strength:   %s\n", meter(out, p.Score, p.MaxScore))
		if p.Hash != "" {
			fmt.Fprintf(w, "Argon2id:   %s\n", p.Hash)
		}
		fmt.Fprintln(w)
	}
}

// strengthMeter renders score as filled marks followed by empty marks up to maxScore.
func strengthMeter(score, maxScore int) string {
	score = min(max(score, 0), maxScore)
	return strings.Repeat(filledMark, score) + strings.Repeat(emptyMark, maxScore-score) +
		fmt.Sprintf(" (%d/%d)", score, maxScore)
}

func meter(out *termenv.Output, score, maxScore int) string {
	color := "2" // green
	switch {
	case score*3 < maxScore:
		color = "1" // red
	case score*3 < maxScore*2:
		color = "3" // yellow
	}
	return out.String(strengthMeter(score, maxScore)).Foreground(out.Color(color)).String()
}
