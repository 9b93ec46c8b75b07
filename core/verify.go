package core

import (
	"fmt"

	"github.com/unmanned-player/clip/errors"
)

// Verify checks a parser configuration for consistency before first use. It
// is meant for development builds and tests; Parse performs none of these
// checks itself. The first problem found is returned as a ConfigError.
func Verify(p *Parser) error {
	if p == nil {
		return errors.NewConfig("parser is nil")
	}
	if p.Callback == nil {
		return errors.NewConfig("parser has no callback")
	}
	if p.Base == nil && len(p.Commands) == 0 {
		return errors.NewConfig("parser defines no options or sub-commands")
	}
	if p.Flags.Has(AutoVersion) && p.Version == "" {
		return errors.NewConfig("automatic version requested, but no version specified")
	}

	if p.Base != nil {
		if p.Base.Name != "" {
			return errors.NewConfig("base options cannot be a named sub-command")
		}
		if err := verifyGroup(p.Base, "base"); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(p.Commands))
	for i := range p.Commands {
		cmd := &p.Commands[i]
		if cmd.Name == "" {
			return errors.NewConfig("sub-command doesn't have a name")
		}
		if seen[cmd.Name] {
			return errors.NewConfig(fmt.Sprintf("duplicate sub-command %q", cmd.Name))
		}
		seen[cmd.Name] = true
		if err := verifyGroup(cmd, cmd.Name); err != nil {
			return err
		}
	}
	return nil
}

func verifyGroup(cmd *SubCommand, scope string) error {
	catchAlls := 0
	for i := range cmd.Options {
		opt := &cmd.Options[i]
		switch opt.Mode {
		case Switch:
			if opt.Short == 0 && opt.Long == "" {
				return errors.NewConfig(fmt.Sprintf("%s: switch option doesn't have a name", scope))
			}
		case ValueRequired:
			if opt.Tag == "" {
				return errors.NewConfig(fmt.Sprintf(
					"%s: option that needs a value doesn't specify a tag name for it", scope))
			}
		case CatchAll:
			if opt.Short != 0 || opt.Long != "" {
				return errors.NewConfig(fmt.Sprintf(
					"%s: catch-all option must not have an option name, only a tag", scope))
			}
			if opt.Tag == "" {
				return errors.NewConfig(fmt.Sprintf("%s: catch-all option doesn't name a tag", scope))
			}
			catchAlls++
		default:
			return errors.NewConfig(fmt.Sprintf("%s: option %d has an unknown mode", scope, i))
		}
	}
	if catchAlls > 1 {
		return errors.NewConfig(fmt.Sprintf("%s: too many catch-all options defined", scope))
	}
	return nil
}
