package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/patience/internal/deck"
	"github.com/lox/patience/internal/patience"
)

const (
	hiddenCell = "##"
	emptyCell  = "--"
	blankCell  = "  "
)

// Styles contains styling for card cells
type Styles struct {
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Hidden    lipgloss.Style
	Empty     lipgloss.Style
}

// NewStyles creates the card styles for a renderer
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Hidden: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")),
		Empty: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Option configures a Dumper
type Option func(*dumpConfig)

type dumpConfig struct {
	profile *termenv.Profile
}

// WithProfile forces a colour profile instead of detecting one from the writer.
// termenv.Ascii gives plain text.
func WithProfile(p termenv.Profile) Option {
	return func(c *dumpConfig) { c.profile = &p }
}

// Dumper writes fields as a text grid
type Dumper struct {
	w      io.Writer
	styles Styles
}

// NewDumper creates a dumper writing to w
func NewDumper(w io.Writer, opts ...Option) *Dumper {
	var cfg dumpConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r := lipgloss.NewRenderer(w)
	if cfg.profile != nil {
		r.SetColorProfile(*cfg.profile)
	}
	return &Dumper{w: w, styles: NewStyles(r)}
}

// Dump writes f to w. See Dumper.Dump.
func Dump(w io.Writer, f *patience.Field, opts ...Option) error {
	return NewDumper(w, opts...).Dump(f)
}

// Dump writes the foundations and the stock as a header, a blank line, then
// the tableau one card row at a time until every column is exhausted.
func (d *Dumper) Dump(f *patience.Field) error {
	header := make([]patience.Pile, 0, len(f.FinishStacks())+1)
	for _, fs := range f.FinishStacks() {
		header = append(header, fs)
	}
	header = append(header, f.Stock())

	columns := make([]patience.Pile, 0, len(f.PlayStacks()))
	for _, p := range f.PlayStacks() {
		columns = append(columns, p)
	}

	if err := d.rows(header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(d.w); err != nil {
		return err
	}
	return d.rows(columns)
}

func (d *Dumper) rows(piles []patience.Pile) error {
	cells := make([]string, len(piles))
	for i := 0; ; i++ {
		more := false
		for j, p := range piles {
			card, ok, m := p.Row(i)
			more = more || m
			cells[j] = d.cell(p, i, card, ok)
		}
		line := strings.TrimRight(strings.Join(cells, " "), " ")
		if _, err := fmt.Fprintln(d.w, line); err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (d *Dumper) cell(p patience.Pile, row int, card deck.Card, ok bool) string {
	switch {
	case ok && card.Visible && card.IsRed():
		return d.styles.CardRed.Render(card.String())
	case ok && card.Visible:
		return d.styles.CardBlack.Render(card.String())
	case ok:
		return d.styles.Hidden.Render(hiddenCell)
	case row == 0 && p.Len() == 0:
		return d.styles.Empty.Render(emptyCell)
	default:
		return blankCell
	}
}
