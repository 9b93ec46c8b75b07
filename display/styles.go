package display

import "github.com/fatih/color"

// Styles holds the colour classes used in rendered output. A fresh value is
// built per render call; every Sprint closes its span with a reset sequence.
type Styles struct {
	// Prog styles the program name.
	Prog *color.Color

	// Cmd styles sub-command names.
	Cmd *color.Color

	// Opt styles option names.
	Opt *color.Color

	// Tag styles catch-all tags.
	Tag *color.Color

	// Subtitle styles section subtitles.
	Subtitle *color.Color
}

// NewStyles returns the colour classes, forced on or off regardless of the
// sink's TTY capability. The caller decides capability; the renderer obeys.
func NewStyles(enabled bool) Styles {
	s := Styles{
		Prog:     color.New(color.Bold, color.FgHiWhite),
		Cmd:      color.New(color.Bold, color.FgGreen),
		Opt:      color.New(color.Bold, color.FgBlue),
		Tag:      color.New(color.Bold, color.FgYellow),
		Subtitle: color.New(color.Faint, color.FgHiWhite),
	}
	for _, c := range []*color.Color{s.Prog, s.Cmd, s.Opt, s.Tag, s.Subtitle} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}
