package core

import "unicode/utf8"

// findCommand returns the registered sub-command with exactly the given
// name. There is no prefix or abbreviation matching.
func (p *Parser) findCommand(name string) *SubCommand {
	for i := range p.Commands {
		if p.Commands[i].Name == name {
			return &p.Commands[i]
		}
	}
	return nil
}

// FindOption scans cmd's option list for token: a single-rune token matches
// an option's short form, anything longer matches a long name by exact
// equality. CatchAll entries never match by name.
func FindOption(cmd *SubCommand, token string) *Option {
	if cmd == nil {
		return nil
	}

	short, size := utf8.DecodeRuneInString(token)
	isShort := size == len(token) && size > 0

	for i := range cmd.Options {
		opt := &cmd.Options[i]
		if opt.Mode == CatchAll {
			continue
		}
		if isShort && opt.Short == short {
			return opt
		}
		if !isShort && opt.Long != "" && opt.Long == token {
			return opt
		}
	}
	return nil
}

// FindCatchAll returns cmd's CatchAll entry, if it declares one.
func FindCatchAll(cmd *SubCommand) *Option {
	if cmd == nil {
		return nil
	}
	for i := range cmd.Options {
		if cmd.Options[i].Mode == CatchAll {
			return &cmd.Options[i]
		}
	}
	return nil
}

// resolve looks token up in the active group first and falls back to the
// base group. The returned SubCommand is the group the option was found in,
// so the callback can tell which scope matched; nil, nil when neither scope
// knows the token.
func (p *Parser) resolve(token string) (*Option, *SubCommand) {
	if opt := FindOption(p.live, token); opt != nil {
		return opt, p.live
	}
	if p.live != p.Base {
		if opt := FindOption(p.Base, token); opt != nil {
			return opt, p.Base
		}
	}
	return nil, nil
}
