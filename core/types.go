package core

import (
	"io"
	"os"
)

// Mode classifies how an option consumes the command line.
type Mode int

const (
	// Switch is a boolean-style option that takes no value. It may appear
	// any number of times and the callback fires once per appearance.
	Switch Mode = iota

	// ValueRequired binds exactly one value, either inline ("-fVALUE",
	// "--file=VALUE") or from the next whole token.
	ValueRequired

	// CatchAll captures every bare positional token not otherwise
	// recognised. At most one per group, named only by its tag.
	CatchAll
)

// Option is a single command-line option definition. Options are caller-owned
// and never mutated by the parser.
//
// Short is the single-character form ('v' for -v); zero or any rune that is
// not an ASCII letter or digit means the option has no short form on the
// command line, though such a rune still gives the option a stable identity
// inside the callback. Long is the GNU-style name without dashes. Tag names
// the value in summaries and must be set for ValueRequired and CatchAll
// options. An empty Help hides the option from summaries while leaving it
// matchable.
type Option struct {
	Short rune
	Long  string
	Tag   string
	Mode  Mode
	Help  string
}

// Hidden reports whether the option is excluded from rendered summaries.
func (o *Option) Hidden() bool { return o.Help == "" }

// NewSwitch defines a no-value option.
func NewSwitch(short rune, long, help string) Option {
	return Option{Short: short, Long: long, Help: help}
}

// NewValue defines an option that binds one value, named by tag.
func NewValue(short rune, long, tag, help string) Option {
	return Option{Short: short, Long: long, Tag: tag, Mode: ValueRequired, Help: help}
}

// NewCatchAll defines the positional capture entry for a group.
func NewCatchAll(tag, help string) Option {
	return Option{Tag: tag, Mode: CatchAll, Help: help}
}

// SubCommand groups options under a name. The base group has an empty Name;
// named sub-commands are selected by the first positional token. Option order
// is the order summaries are rendered in.
type SubCommand struct {
	Name    string
	Options []Option
}

// Flag is a set of parser behaviour toggles.
type Flag uint

const (
	// AutoHelp recognises -h/--help and renders a summary, unless the base
	// group declares its own h/help option.
	AutoHelp Flag = 1 << iota

	// AutoVersion recognises -v/--version and prints the version line,
	// unless shadowed the same way. Requires Version to be set.
	AutoVersion

	// UseColor emits ANSI colour sequences in rendered output. Capability
	// detection is the caller's job; the parser only obeys the flag.
	UseColor
)

// Has reports whether all bits of b are set.
func (f Flag) Has(b Flag) bool { return f&b == b }

// Outcome is the result of a parse run, usable directly as a process exit
// hint by callers that want the classic numeric contract.
type Outcome int

const (
	// Ok means every token was consumed, or parsing stopped at a bare "--".
	Ok Outcome = 0

	// HelpExit means help or version text was rendered and parsing stopped.
	// It is an early exit, not a failure.
	HelpExit Outcome = 1

	// Invalid means a malformed or unrecognised token, a missing required
	// value, or a configuration misuse such as re-parsing without Reset.
	Invalid Outcome = -1

	// CallbackFailed means the callback returned a non-nil error.
	CallbackFailed Outcome = -2

	// BadSubCommand is reserved. The dispatch policy re-examines an
	// unmatched first token against the base group instead of failing, so
	// no code path currently produces it; the constant is kept for callers
	// with exit-code tables built on the numeric contract.
	BadSubCommand Outcome = -3

	// BadArg means an argument file could not be opened or read, or held an
	// entry that matched no registered option.
	BadArg Outcome = -4
)

func (o Outcome) String() string {
	switch o {
	case Ok:
		return "ok"
	case HelpExit:
		return "help"
	case Invalid:
		return "invalid"
	case CallbackFailed:
		return "callback failed"
	case BadSubCommand:
		return "bad sub-command"
	case BadArg:
		return "bad argument"
	}
	return "unknown"
}

// Callback is invoked once per matched option or sub-command selection.
//
// For a sub-command selection opt is nil and value is empty. For a Switch
// option value is always empty; for ValueRequired it is the bound value,
// which may itself be an empty string ("--file="); for CatchAll it is the
// raw positional token. A non-nil return aborts the parse immediately with
// CallbackFailed.
type Callback func(p *Parser, cmd *SubCommand, opt *Option, value string) error

// Renderer produces the parser's human-readable surfaces when the automatic
// help or version options fire. The display package provides the standard
// implementation; tests may substitute their own.
type Renderer interface {
	Summary(p *Parser, cmd *SubCommand)
	Version(p *Parser)
}

// Parser is the caller-built configuration for one command line. Fill the
// exported fields and hand it to Parse; the descriptor tables are read-only
// for the duration of the call and the parser never retains them afterwards.
//
// A Parser is not reentrant: a second Parse on an instance whose state was
// not Reset fails fast with Invalid. Distinct instances are independent and
// may run on separate goroutines.
type Parser struct {
	// UserData is an opaque caller value, never inspected.
	UserData any

	Flags   Flag
	Name    string
	Header  string
	Footer  string
	Version string

	// Base holds the default option group, always consulted as a fallback
	// scope. May be nil when only sub-commands are registered.
	Base *SubCommand

	// Commands lists the named sub-commands, possibly empty.
	Commands []SubCommand

	Callback Callback

	// Out receives summaries, version lines and diagnostics. When nil,
	// diagnostics go to stderr and summaries to stdout.
	Out io.Writer

	index int
	live  *SubCommand
}

// Index returns the position of the last argument processed by Parse.
func (p *Parser) Index() int { return p.index }

// Active returns the group selected during the last parse: the matched
// sub-command, or the base group.
func (p *Parser) Active() *SubCommand { return p.live }

// Reset clears parse state so the same configuration can be parsed again.
func (p *Parser) Reset() {
	p.index = 0
	p.live = nil
}

// Output resolves the summary sink.
func (p *Parser) Output() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stdout
}

func (p *Parser) errOut() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stderr
}
