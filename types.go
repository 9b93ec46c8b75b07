package clip

import "github.com/unmanned-player/clip/core"

// Option is a single command-line option definition.
//
// Build one directly or through the NewSwitch, NewValue and NewCatchAll
// helpers. An Option with an empty Help string stays matchable but is hidden
// from rendered summaries.
//
// Usage:
//
//	opts := []clip.Option{
//		clip.NewSwitch('v', "verbose", "Give more output"),
//		clip.NewValue('f', "file", "PATH", "Read configuration from PATH"),
//		clip.NewCatchAll("FILE", "Files to process"),
//	}
type Option = core.Option

// SubCommand is a named, independently-scoped group of options. The base
// group keeps an empty Name; named groups are selected by the first
// positional token.
type SubCommand = core.SubCommand

// Parser is the caller-built configuration handed to Parse: descriptor
// tables, callback, output sink and behaviour flags.
//
// Usage:
//
//	p := &clip.Parser{
//		Name:     "pip",
//		Header:   "A tool for installing and managing Python packages",
//		Version:  "1.2.3",
//		Base:     &base,
//		Commands: cmds,
//		Callback: cb,
//		Out:      os.Stdout,
//		Flags:    clip.AutoHelp | clip.AutoVersion,
//	}
type Parser = core.Parser

// Callback is invoked once per matched option or sub-command selection; a
// non-nil return aborts the parse with CallbackFailed.
type Callback = core.Callback

// Mode classifies how an option consumes the command line.
type Mode = core.Mode

// Flag is the set of parser behaviour toggles.
type Flag = core.Flag

// Outcome is the numeric result contract of a parse run.
type Outcome = core.Outcome

const (
	Switch        = core.Switch
	ValueRequired = core.ValueRequired
	CatchAll      = core.CatchAll
)

const (
	AutoHelp    = core.AutoHelp
	AutoVersion = core.AutoVersion
	UseColor    = core.UseColor
)

const (
	Ok             = core.Ok
	HelpExit       = core.HelpExit
	Invalid        = core.Invalid
	CallbackFailed = core.CallbackFailed
	BadSubCommand  = core.BadSubCommand
	BadArg         = core.BadArg
)

// MaxLineLen bounds a single argument-file line, in bytes.
const MaxLineLen = core.MaxLineLen

// NewSwitch defines a no-value option, e.g. -v/--verbose.
var NewSwitch = core.NewSwitch

// NewValue defines an option that binds one value, named by tag.
var NewValue = core.NewValue

// NewCatchAll defines the positional capture entry for a group.
var NewCatchAll = core.NewCatchAll
