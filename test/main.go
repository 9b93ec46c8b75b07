package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/unmanned-player/clip"
)

// Sub-command usage example, modelled on a pip-like tool.

func cb(p *clip.Parser, cmd *clip.SubCommand, opt *clip.Option, value string) error {
	fmt.Fprint(p.Out, "CB: ")

	if cmd != nil && cmd.Name != "" {
		fmt.Fprintf(p.Out, "%s >> ", cmd.Name)
	}

	if opt != nil {
		if opt.Short != 0 && opt.Short < 0x80 {
			fmt.Fprintf(p.Out, "-%c", opt.Short)
		} else if opt.Long != "" {
			fmt.Fprintf(p.Out, "--%s", opt.Long)
		}
		if opt.Tag != "" {
			fmt.Fprintf(p.Out, " <%s>", opt.Tag)
		}
	}
	if opt != nil && opt.Mode != clip.Switch {
		fmt.Fprintf(p.Out, "\t -> %s", value)
	}

	fmt.Fprintln(p.Out)
	return nil
}

func main() {
	base := clip.SubCommand{
		Options: []clip.Option{
			clip.NewSwitch('V', "verbose", "Give more output."),
			clip.NewSwitch('q', "quiet", "Give less output."),
			clip.NewValue(0, "log", "path", "Path to a verbose appending log."),
			clip.NewSwitch(0, "no-input", "Disable prompting for input."),
		},
	}

	cmds := []clip.SubCommand{
		{
			Name: "install",
			Options: []clip.Option{
				clip.NewValue('e', "editable", "path/url", "Install a project in editable mode."),
				clip.NewValue('r', "requirement", "file", "Install from the given requirements file."),
				clip.NewValue('t', "target", "dir", "Install packages into <dir>."),
				clip.NewSwitch('U', "upgrade", "Upgrade all packages to the newest available version."),
				clip.NewSwitch(0, "no-deps", "Don't install package dependencies."),
				// No help text, so this one stays out of the summary.
				clip.NewSwitch(0, "secret", ""),
				clip.NewCatchAll("PACKAGE", "Packages to install."),
			},
		},
	}

	p := &clip.Parser{
		Name:     "pip",
		Header:   "A tool for installing and managing Python packages",
		Footer:   "Copyright (c) 2020 someone",
		Version:  "1.2.3-alpha",
		Base:     &base,
		Commands: cmds,
		Callback: cb,
		Out:      os.Stdout,
		Flags:    clip.AutoHelp | clip.AutoVersion,
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		p.Flags |= clip.UseColor
	}

	if err := clip.Verify(p); err != nil {
		fmt.Fprintln(os.Stderr, "bad parser configuration:", err)
		os.Exit(2)
	}

	outcome, err := clip.Parse(p, os.Args)
	if err != nil {
		os.Exit(int(outcome))
	}
}
