// Package render formats schedules and closeness tables for people and tools.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/katalvlaran/buddies/core"
	"github.com/katalvlaran/buddies/schedule"
)

// Text writes one line per round: "Set 1: (A, D), (B, C)".
func Text(w io.Writer, s schedule.Schedule) error {
	for _, r := range s.Rounds {
		if _, err := fmt.Fprintf(w, "Set %d: %s\n", r.Index, r); err != nil {
			return err
		}
	}

	return nil
}

// Table writes the rounds as an aligned table with per-round cost and the
// trio decision.
func Table(w io.Writer, s schedule.Schedule) error {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Set", "Groups", "Cost", "Trio"})
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(true)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, r := range s.Rounds {
		groups := lo.Map(r.Groups, func(g []string, _ int) string {
			return "(" + strings.Join(g, ", ") + ")"
		})
		t.Append([]string{
			strconv.Itoa(r.Index),
			strings.Join(groups, " "),
			formatWeight(r.Cost),
			trioCell(r.Trio),
		})
	}
	t.SetFooter([]string{"", "total", formatWeight(s.TotalCost()), ""})
	t.Render()

	return nil
}

// Matrix writes the closeness table of the real participants.
// The diagonal is shown as "-".
func Matrix(w io.Writer, g *core.Graph) error {
	names := g.Participants()
	m := g.Matrix()

	t := tablewriter.NewWriter(w)
	t.SetHeader(append([]string{""}, names...))
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)

	var i, j int
	for i = range names {
		weights, err := m.Row(i)
		if err != nil {
			return err
		}
		row := make([]string, 0, len(names)+1)
		row = append(row, names[i])
		for j = range names {
			if i == j {
				row = append(row, "-")
				continue
			}
			row = append(row, formatWeight(weights[j]))
		}
		t.Append(row)
	}
	t.Render()

	return nil
}

// DOT writes the closeness graph of the real participants in Graphviz
// format, one undirected edge per pair labelled with its weight.
func DOT(w io.Writer, g *core.Graph) error {
	names := g.Participants()
	var b strings.Builder
	b.WriteString("graph buddies {\n")
	b.WriteString("  node [shape=circle, style=filled, fillcolor=lightblue];\n")
	for _, n := range names {
		fmt.Fprintf(&b, "  %s;\n", strconv.Quote(n))
	}
	var i, j int
	for i = range names {
		for j = i + 1; j < len(names); j++ {
			wt := formatWeight(g.BaseWeight(i, j))
			fmt.Fprintf(&b, "  %s -- %s [label=%s, weight=%s];\n",
				strconv.Quote(names[i]), strconv.Quote(names[j]), strconv.Quote(wt), wt)
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// Members returns the real participants as "A, B, C".
func Members(g *core.Graph) string {
	return strings.Join(g.Participants(), ", ")
}

func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func trioCell(t *schedule.TrioMerge) string {
	if t == nil {
		return ""
	}
	cell := fmt.Sprintf("%s → (%s, %s)", t.Lone, t.Host[0], t.Host[1])
	if t.Reencounters > 0 {
		cell += fmt.Sprintf(" [%d re-encounter(s)]", t.Reencounters)
	}

	return cell
}
