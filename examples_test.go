package clip_test

import (
	"fmt"

	clip "github.com/unmanned-player/clip"
)

func Example_readme() {
	p := &clip.Parser{
		Name: "demo",
		Base: &clip.SubCommand{Options: []clip.Option{
			clip.NewSwitch('v', "verbose", "Give more output."),
			clip.NewValue('f', "file", "PATH", "Read from PATH."),
		}},
		Callback: func(p *clip.Parser, cmd *clip.SubCommand, opt *clip.Option, value string) error {
			if value != "" {
				fmt.Printf("%s = %s\n", opt.Long, value)
			} else {
				fmt.Println(opt.Long)
			}
			return nil
		},
	}

	if _, err := clip.Parse(p, []string{"demo", "-v", "--file=conf.yml"}); err != nil {
		panic(err)
	}
	// Output: verbose
	// file = conf.yml
}

func Example_subcommand() {
	p := &clip.Parser{
		Name: "pkg",
		Base: &clip.SubCommand{Options: []clip.Option{
			clip.NewSwitch('q', "quiet", "Less output."),
		}},
		Commands: []clip.SubCommand{
			{Name: "install", Options: []clip.Option{
				clip.NewCatchAll("PACKAGE", "Packages to install."),
			}},
		},
		Callback: func(p *clip.Parser, cmd *clip.SubCommand, opt *clip.Option, value string) error {
			switch {
			case opt == nil:
				fmt.Println("command:", cmd.Name)
			case opt.Mode == clip.CatchAll:
				fmt.Println("package:", value)
			default:
				fmt.Println("option:", opt.Long)
			}
			return nil
		},
	}

	if _, err := clip.Parse(p, []string{"pkg", "install", "left-pad", "-q"}); err != nil {
		panic(err)
	}
	// Output: command: install
	// package: left-pad
	// option: quiet
}

func ExampleSummary() {
	p := &clip.Parser{
		Name: "demo",
		Base: &clip.SubCommand{Options: []clip.Option{
			clip.NewSwitch('v', "verbose", "Give more output."),
			clip.NewValue('f', "file", "PATH", "Read from PATH."),
		}},
		Callback: func(*clip.Parser, *clip.SubCommand, *clip.Option, string) error { return nil },
	}

	clip.Summary(p, nil)
	// Output: Usage: demo
	//
	// Common options:
	// -v, --verbose
	//   Give more output.
	// -f PATH, --file=PATH
	//   Read from PATH.
}

func ExampleVersion() {
	p := &clip.Parser{
		Name:    "demo",
		Version: "0.4.0",
	}

	clip.Version(p)
	// Output: demo 0.4.0
}
