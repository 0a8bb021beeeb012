package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/parray"
	"golang.org/x/term"
)

// Console outputs position arrays of strings to a console with a fixed width
// font. Adjacent units are printed in alternating colors, and output is
// wrapped to the configured line width.
type Console struct {
	out     io.Writer
	config  *Config
	palette []*color.Color
}

// NewConsole creates a console formatter writing to out.
//
// If config is nil, ConfigFromTerminal is used. palette lists the colors to
// cycle through for adjacent units; if it is empty, a default palette is used.
func NewConsole(out io.Writer, config *Config, palette ...*color.Color) *Console {
	if out == nil {
		out = os.Stdout
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	if len(palette) == 0 {
		palette = makeDefaultPalette()
	}
	return &Console{out: out, config: config, palette: palette}
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgRed),
	}
}

// Print outputs the units of a position array. Gaps between adjacent units
// are output as blanks, one per offset, so the console line reflects the
// layout of the original text. Units are split at the line break points of
// this layout, and a newline is output at every break.
//
// Units must carry byte offsets and must not overlap.
func (c *Console) Print(units []parray.Item[string]) error {
	start, _ := parray.Span(units)
	text, err := layout(units)
	if err != nil {
		return err
	}
	breaks := BreakPoints(text, c.config)
	for i := range breaks {
		breaks[i] += start
	}
	tracer().P("format", "console").Debugf("line breaks at %v", breaks)
	lines := parray.Splits(units, breaks, parray.StringSubdivider)
	finishes := make(map[int]bool, len(units))
	for _, u := range units {
		finishes[u.Finish()] = true
	}
	k := 0
	newline := func(pos int) error {
		for k < len(breaks) && breaks[k] < pos {
			k++
		}
		if k < len(breaks) && breaks[k] == pos {
			k++
			_, err := io.WriteString(c.out, "\n")
			return err
		}
		return nil
	}
	pos, hue := start, 0
	for _, frag := range lines {
		for ; pos < frag.Start(); pos++ { // gap
			if _, err := io.WriteString(c.out, " "); err != nil {
				return err
			}
			if err := newline(pos + 1); err != nil {
				return err
			}
		}
		if _, err := c.palette[hue].Fprint(c.out, frag.Item()); err != nil {
			return err
		}
		pos = frag.Finish()
		if err := newline(pos); err != nil {
			return err
		}
		if finishes[frag.Finish()] { // next fragment starts a new unit
			hue = (hue + 1) % len(c.palette)
		}
	}
	return nil
}

// layout concatenates the units of a position array, filling gaps with blanks.
func layout(units []parray.Item[string]) (string, error) {
	var b strings.Builder
	pos, _ := parray.Span(units)
	for i, u := range units {
		if u.Len() != len(u.Item()) {
			return "", fmt.Errorf("%w: unit #%d spans %d offsets for %d bytes",
				parray.ErrIllegalArguments, i, u.Len(), len(u.Item()))
		}
		if u.Start() < pos {
			return "", fmt.Errorf("%w: unit #%d starts at %d < %d", parray.ErrOverlap, i, u.Start(), pos)
		}
		b.WriteString(strings.Repeat(" ", u.Start()-pos))
		b.WriteString(u.Item())
		pos = u.Finish()
	}
	return b.String(), nil
}

// Listing outputs the units of a position array, one per line, in the format
// of parray.Dump. Control characters in the units are quoted.
func Listing(w io.Writer, units []parray.Item[string]) error {
	for _, u := range units {
		if _, err := fmt.Fprintf(w, "%6d -> %-6d %q\n", u.Start(), u.Finish(), u.Item()); err != nil {
			return err
		}
	}
	return nil
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
