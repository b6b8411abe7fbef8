// Package display formats fuzzdex.Result values for terminal output as a
// colorized table: no source file to excerpt here, so the columns are the
// match itself — phrase, matched token, edit distance, score.
package display

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"fuzzdex"
)

var (
	exactColor  = color.New(color.FgGreen, color.Bold).SprintFunc()
	closeColor  = color.New(color.FgYellow).SprintFunc()
	fuzzyColor  = color.New(color.FgRed).SprintFunc()
	scoreColor  = color.New(color.FgCyan).SprintFunc()
	headerColor = color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnColor = color.New(color.FgYellow).SprintfFunc()
)

// distanceString renders an edit distance with a color cue: green for an
// exact match, yellow for a one-edit fuzzy match, red beyond that.
func distanceString(d int) string {
	switch {
	case d == 0:
		return exactColor(fmt.Sprintf("%d", d))
	case d == 1:
		return closeColor(fmt.Sprintf("%d", d))
	default:
		return fuzzyColor(fmt.Sprintf("%d", d))
	}
}

// ResultTable prints results as a table of id, matched token, distance,
// score, and the phrase's original text.
func ResultTable(results []fuzzdex.Result) {
	tbl := table.New("ID", "Token", "Distance", "Score", "Phrase")
	tbl.WithHeaderFormatter(headerColor).WithFirstColumnFormatter(columnColor)

	for _, r := range results {
		tbl.AddRow(
			r.ID,
			r.Token,
			distanceString(r.Distance),
			scoreColor(fmt.Sprintf("%.4f", r.Score)),
			r.Origin,
		)
	}

	tbl.Print()
}
