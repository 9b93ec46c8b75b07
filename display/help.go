package display

import (
	"fmt"
	"strings"

	"github.com/unmanned-player/clip/core"
	"github.com/unmanned-player/clip/internal/common"
)

// wrapWidth is the approximate column help text folds at.
const wrapWidth = 78

// Summary renders the usage summary for one sub-command view to the parser's
// output sink. Pass nil for cmd to render the base view.
func Summary(p *core.Parser, cmd *core.SubCommand) {
	if p == nil {
		return
	}
	if cmd == nil {
		cmd = p.Base
	}
	baseView := cmd == nil || cmd.Name == ""

	st := NewStyles(p.Flags.Has(core.UseColor))
	var b strings.Builder

	b.WriteString("Usage: ")
	b.WriteString(st.Prog.Sprint(p.Name))
	if baseView && len(p.Commands) > 0 {
		b.WriteString(st.Cmd.Sprint(" [COMMAND]"))
	}
	if !baseView {
		b.WriteString(st.Opt.Sprint(" " + cmd.Name + " [OPTIONS]"))
	}
	if any := core.FindCatchAll(cmd); any != nil {
		b.WriteString(st.Tag.Sprint(" " + any.Tag + "..."))
	}
	b.WriteByte('\n')

	if p.Header != "" {
		b.WriteString(p.Header + "\n")
	}

	if baseView && len(p.Commands) > 0 {
		b.WriteString("\nSub-commands:\n")
		for i := range p.Commands {
			b.WriteString("\t" + st.Cmd.Sprint(p.Commands[i].Name) + "\n")
		}
	}

	if p.Flags.Has(core.AutoHelp) || p.Flags.Has(core.AutoVersion) {
		b.WriteString("\n" + st.Subtitle.Sprint("Default Options:") + "\n")
		if p.Flags.Has(core.AutoHelp) {
			if opt, ok := defaultHelp(p, baseView); ok {
				putOpt(&b, st, &opt)
			}
		}
		if p.Flags.Has(core.AutoVersion) {
			if opt, ok := defaultVersion(p); ok {
				putOpt(&b, st, &opt)
			}
		}
	}

	if cmd != nil {
		title := "Options:"
		if baseView {
			title = "Common options:"
		}
		b.WriteString("\n" + st.Subtitle.Sprint(title) + "\n")
		for i := range cmd.Options {
			opt := &cmd.Options[i]
			if opt.Hidden() {
				continue
			}
			putOpt(&b, st, opt)
		}
	}

	if p.Footer != "" {
		b.WriteString("\n" + p.Footer + "\n")
	}

	fmt.Fprint(p.Output(), b.String())
}

// defaultHelp synthesises the automatic help entry for the current view,
// dropping whichever form the base group already declares for itself. The
// bool is false when both forms are shadowed and the entry disappears.
func defaultHelp(p *core.Parser, baseView bool) (core.Option, bool) {
	help := "Show help message."
	if baseView && len(p.Commands) > 0 {
		help = "Show help message. If this option is used along with a sub-command, " +
			"then a help message specific to that sub-command is shown."
	}
	opt := core.NewSwitch('h', "help", help)
	if core.FindOption(p.Base, "h") != nil {
		opt.Short = 0
	}
	if core.FindOption(p.Base, "help") != nil {
		opt.Long = ""
	}
	if opt.Short == 0 && opt.Long == "" {
		return core.Option{}, false
	}
	return opt, true
}

func defaultVersion(p *core.Parser) (core.Option, bool) {
	opt := core.NewSwitch('v', "version", "Show version and if available, copyright information.")
	if core.FindOption(p.Base, "v") != nil {
		opt.Short = 0
	}
	if core.FindOption(p.Base, "version") != nil {
		opt.Long = ""
	}
	if opt.Short == 0 && opt.Long == "" {
		return core.Option{}, false
	}
	return opt, true
}

// putOpt prints one option entry: the name line, then the help text folded
// at wrapWidth and indented two columns.
func putOpt(b *strings.Builder, st Styles, opt *core.Option) {
	if opt.Mode == core.CatchAll {
		b.WriteString(st.Tag.Sprint(opt.Tag+"...") + "\n")
	} else {
		var name strings.Builder
		if common.IsAlnum(opt.Short) {
			name.WriteString("-" + string(opt.Short))
			if opt.Tag != "" {
				name.WriteString(" " + opt.Tag)
			}
			if opt.Long != "" {
				name.WriteString(", ")
			}
		}
		if opt.Long != "" {
			name.WriteString("--" + opt.Long)
			if opt.Tag != "" {
				name.WriteString("=" + opt.Tag)
			}
		}
		b.WriteString(st.Opt.Sprint(name.String()) + "\n")
	}

	if opt.Help == "" {
		return
	}
	for _, line := range common.Wrap(opt.Help, wrapWidth) {
		b.WriteString("  " + line + "\n")
	}
}
