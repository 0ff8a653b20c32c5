package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/metroroute/metro"
	"github.com/katalvlaran/metroroute/route"
)

var (
	colorAccent = lipgloss.Color("#874BFD") // headings
	colorGood   = lipgloss.Color("#00FF99") // totals
	colorSub    = lipgloss.Color("#64748B") // secondary text
	colorWarn   = lipgloss.Color("#F59E0B") // no route
)

// printer renders command output through a lipgloss renderer bound to w,
// so colour is only emitted when w is a terminal.
type printer struct {
	w       io.Writer
	heading lipgloss.Style
	label   lipgloss.Style
	total   lipgloss.Style
	dim     lipgloss.Style
	warn    lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)

	return &printer{
		w:       w,
		heading: r.NewStyle().Foreground(colorAccent).Bold(true),
		label:   r.NewStyle().Bold(true),
		total:   r.NewStyle().Foreground(colorGood).Bold(true),
		dim:     r.NewStyle().Foreground(colorSub),
		warn:    r.NewStyle().Foreground(colorWarn),
	}
}

func (p *printer) title(s string) {
	fmt.Fprintln(p.w, p.heading.Render(s))
}

// fewest prints a FewestHops outcome.
func (p *printer) fewest(path route.Path, ok bool) {
	if !ok {
		fmt.Fprintf(p.w, "%s %s\n", p.label.Render("Fewest hops:"), p.warn.Render("no route"))
		return
	}
	stats := fmt.Sprintf("(%d hops, %s)", path.Hops(), plural(path.Transfers(), "transfer"))
	fmt.Fprintf(p.w, "%s %s %s\n", p.label.Render("Fewest hops:"), p.dim.Render(stats), path.String())
}

// fastest prints a FastestRoute outcome.
func (p *printer) fastest(r route.Route, ok bool) {
	if !ok {
		fmt.Fprintf(p.w, "%s %s\n", p.label.Render("Fastest:"), p.warn.Render("no route"))
		return
	}
	total := p.total.Render(fmt.Sprintf("%d min", r.Time))
	fmt.Fprintf(p.w, "%s %s %s\n", p.label.Render("Fastest:"), total, r.Path.String())
}

// line prints one line id and its stations in insertion order.
func (p *printer) line(id string, stations []metro.Station) {
	parts := make([]string, len(stations))
	for i, st := range stations {
		parts[i] = st.Key + " " + st.Name
	}
	fmt.Fprintf(p.w, "%s %s\n", p.heading.Render(id+":"), strings.Join(parts, ", "))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}
