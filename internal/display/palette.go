package display

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Palette holds the styles used in command reports.
type Palette struct {
	Heading *color.Color
	Name    *color.Color
	Detail  *color.Color
	Success *color.Color
	Warn    *color.Color
}

// NewPalette returns the report styles for out. Every style is plain text
// unless out is a color-capable terminal.
func NewPalette(out io.Writer) Palette {
	p := Palette{
		Heading: color.New(color.Bold),
		Name:    color.New(color.FgCyan),
		Detail:  color.New(color.FgHiBlack),
		Success: color.New(color.FgGreen),
		Warn:    color.New(color.FgYellow),
	}

	if IsColorTerminal(out) {
		for _, c := range p.all() {
			c.EnableColor()
		}
	} else {
		for _, c := range p.all() {
			c.DisableColor()
		}
	}
	return p
}

func (p Palette) all() []*color.Color {
	return []*color.Color{p.Heading, p.Name, p.Detail, p.Success, p.Warn}
}

// IsColorTerminal reports whether out is a terminal that should receive
// colors. Setting NO_COLOR disables them.
func IsColorTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
