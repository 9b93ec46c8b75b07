package core

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/unmanned-player/clip/errors"
	"github.com/unmanned-player/clip/internal/common"
)

// Parse walks args once, left to right, and invokes the configured callback
// for every matched option and the sub-command selection. args follows the
// argv convention: args[0] is the program name and is never inspected.
//
// The render argument supplies the automatic help/version output; pass nil
// to suppress rendering while keeping the HelpExit outcome. The package-root
// Parse wrapper wires the standard display renderer.
//
// Auto help/version shadowing consults only the base group's descriptors, an
// asymmetry inherited deliberately: an h option declared on a sub-command
// does not disable -h while that sub-command is active.
func Parse(p *Parser, args []string, render Renderer) (Outcome, error) {
	if p == nil || p.Callback == nil {
		return Invalid, errors.NewConfig("parser has no callback")
	}
	if p.index != 0 {
		return Invalid, errors.NewConfig("parser already consumed; call Reset before re-parsing")
	}

	out := p.errOut()

	if len(args) <= 1 {
		return Ok, nil
	}
	p.index = 1
	p.live = p.Base

	// A leading alphanumeric token may select a sub-command. When it does
	// not match one, it stays in place for the main loop, where it can still
	// land on a base-group catch-all.
	if len(p.Commands) > 0 && startsAlnum(args[p.index]) {
		if cmd := p.findCommand(args[p.index]); cmd != nil {
			p.live = cmd
			p.index++
			if err := p.Callback(p, cmd, nil, ""); err != nil {
				return CallbackFailed, errors.NewCallback("", err)
			}
		}
	}

	// Help/version pre-scan over everything that remains. A hit anywhere
	// outranks normal dispatch and nothing is reported to the callback for
	// the other tokens.
	for _, arg := range args[p.index:] {
		if p.Flags.Has(AutoHelp) {
			hit := (arg == "-h" && FindOption(p.Base, "h") == nil) ||
				(arg == "--help" && FindOption(p.Base, "help") == nil)
			if hit {
				if render != nil {
					render.Summary(p, p.live)
				}
				return HelpExit, nil
			}
		}
		if p.Flags.Has(AutoVersion) && p.Version != "" {
			hit := (arg == "-v" && FindOption(p.Base, "v") == nil) ||
				(arg == "--version" && FindOption(p.Base, "version") == nil)
			if hit {
				if render != nil {
					render.Version(p)
				}
				return HelpExit, nil
			}
		}
	}

	for p.index < len(args) {
		arg := args[p.index]
		p.index++

		var (
			oc  Outcome
			err error
		)
		switch {
		case isShortToken(arg):
			oc, err = p.shortCluster(args, arg, out)
		case isLongToken(arg):
			oc, err = p.longOption(args, arg, out)
		case strings.HasPrefix(arg, "@"):
			oc, err = p.argFile(arg[1:], out)
		case arg == "--":
			return Ok, nil
		default:
			oc, err = p.positional(arg, out)
		}
		if err != nil {
			return oc, err
		}
	}

	return Ok, nil
}

// shortCluster consumes a "-xyz" token rune by rune. A ValueRequired option
// binds the remainder of the token, or the next whole token, and terminates
// the cluster either way.
func (p *Parser) shortCluster(args []string, arg string, out io.Writer) (Outcome, error) {
	for i := 1; i < len(arg); {
		r, size := utf8.DecodeRuneInString(arg[i:])
		i += size
		key := string(r)

		opt, whence := p.resolve(key)
		if opt == nil {
			p.diag(out, "Invalid option:", "-", key)
			return Invalid, errors.NewInvalidOption("-" + key)
		}

		switch opt.Mode {
		case Switch:
			if err := p.Callback(p, whence, opt, ""); err != nil {
				return CallbackFailed, errors.NewCallback("-"+key, err)
			}
		case ValueRequired:
			var val string
			switch {
			case i < len(arg):
				val = arg[i:]
			case p.index < len(args):
				val = args[p.index]
				p.index++
			default:
				p.diag(out, "Missing required value for", "-", key)
				return Invalid, errors.NewMissingValue("-" + key)
			}
			if err := p.Callback(p, whence, opt, val); err != nil {
				return CallbackFailed, errors.NewCallback("-"+key, err)
			}
			// The value swallowed the rest of the token.
			return Ok, nil
		}
	}
	return Ok, nil
}

// longOption handles "--name" and "--name=value".
func (p *Parser) longOption(args []string, arg string, out io.Writer) (Outcome, error) {
	key := arg[2:]
	val := ""
	hasVal := false
	if eq := strings.IndexByte(key, '='); eq >= 0 {
		val = key[eq+1:]
		key = key[:eq]
		hasVal = true
	}

	opt, whence := p.resolve(key)
	if opt == nil {
		p.diag(out, "Invalid option:", "--", key)
		return Invalid, errors.NewInvalidOption("--" + key)
	}

	switch opt.Mode {
	case Switch:
		// An inline "=value" on a switch is ambiguous and is not consumed
		// as a value; the descriptor mode alone decides.
		if err := p.Callback(p, whence, opt, ""); err != nil {
			return CallbackFailed, errors.NewCallback("--"+key, err)
		}
	case ValueRequired:
		if !hasVal {
			if p.index >= len(args) {
				p.diag(out, "Missing required value for", "--", key)
				return Invalid, errors.NewMissingValue("--" + key)
			}
			val = args[p.index]
			p.index++
		}
		if err := p.Callback(p, whence, opt, val); err != nil {
			return CallbackFailed, errors.NewCallback("--"+key, err)
		}
	}
	return Ok, nil
}

// positional feeds a bare token to the active group's catch-all.
func (p *Parser) positional(arg string, out io.Writer) (Outcome, error) {
	any := FindCatchAll(p.live)
	if any == nil {
		p.diag(out, "Unrecognised option:", "", arg)
		return Invalid, errors.NewUnrecognized(arg)
	}
	if err := p.Callback(p, p.live, any, arg); err != nil {
		return CallbackFailed, errors.NewCallback(any.Tag, err)
	}
	return Ok, nil
}

// diag writes the single diagnostic line that precedes a failing outcome,
// naming the offending token with its original prefix restored.
func (p *Parser) diag(out io.Writer, msg, prefix, key string) {
	c := color.New(color.FgRed)
	if p.Flags.Has(UseColor) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	fmt.Fprintf(out, "%s %s\n", msg, c.Sprint(prefix+key))
}

func startsAlnum(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return common.IsAlnum(r)
}

func isShortToken(s string) bool {
	return len(s) >= 2 && s[0] == '-' && common.IsAlnum(rune(s[1]))
}

func isLongToken(s string) bool {
	return len(s) >= 3 && s[0] == '-' && s[1] == '-' && common.IsAlnum(rune(s[2]))
}
