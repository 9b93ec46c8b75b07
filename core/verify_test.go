package core

import (
	stderrs "errors"
	"testing"

	"github.com/chriso345/gore/assert"

	cliperr "github.com/unmanned-player/clip/errors"
)

func verifyFixture() *Parser {
	return &Parser{
		Name:    "tool",
		Version: "1.0.0",
		Flags:   AutoHelp | AutoVersion,
		Base: &SubCommand{Options: []Option{
			NewSwitch('v', "verbose", "Give more output"),
			NewValue('f', "file", "PATH", "Read from PATH"),
		}},
		Commands: []SubCommand{
			{Name: "install", Options: []Option{
				NewCatchAll("PACKAGE", "Packages to install"),
			}},
		},
		Callback: func(*Parser, *SubCommand, *Option, string) error { return nil },
	}
}

func assertConfigError(t *testing.T, err error, fragment string) {
	t.Helper()
	assert.NotNil(t, err)
	var ce cliperr.ConfigError
	assert.True(t, stderrs.As(err, &ce))
	assert.StringContains(t, err.Error(), fragment)
}

func TestVerify_ValidConfig(t *testing.T) {
	assert.Nil(t, Verify(verifyFixture()))
}

func TestVerify_NilParser(t *testing.T) {
	assertConfigError(t, Verify(nil), "nil")
}

func TestVerify_NoCallback(t *testing.T) {
	p := verifyFixture()
	p.Callback = nil
	assertConfigError(t, Verify(p), "callback")
}

func TestVerify_NoGroupsAtAll(t *testing.T) {
	p := verifyFixture()
	p.Base = nil
	p.Commands = nil
	assertConfigError(t, Verify(p), "no options or sub-commands")
}

func TestVerify_AutoVersionNeedsVersion(t *testing.T) {
	p := verifyFixture()
	p.Version = ""
	assertConfigError(t, Verify(p), "version")
}

func TestVerify_NamedBase(t *testing.T) {
	p := verifyFixture()
	p.Base.Name = "oops"
	assertConfigError(t, Verify(p), "base options")
}

func TestVerify_UnnamedSwitch(t *testing.T) {
	p := verifyFixture()
	p.Base.Options = append(p.Base.Options, NewSwitch(0, "", "orphan"))
	assertConfigError(t, Verify(p), "switch")
}

func TestVerify_ValueWithoutTag(t *testing.T) {
	p := verifyFixture()
	p.Base.Options = append(p.Base.Options, NewValue('x', "extra", "", "no tag"))
	assertConfigError(t, Verify(p), "tag")
}

func TestVerify_CatchAllWithName(t *testing.T) {
	p := verifyFixture()
	bad := NewCatchAll("FILE", "files")
	bad.Short = 'x'
	p.Commands[0].Options = append(p.Commands[0].Options, bad)
	assertConfigError(t, Verify(p), "catch-all")
}

func TestVerify_TwoCatchAlls(t *testing.T) {
	p := verifyFixture()
	p.Commands[0].Options = append(p.Commands[0].Options, NewCatchAll("MORE", "more"))
	assertConfigError(t, Verify(p), "too many catch-all")
}

func TestVerify_UnnamedSubCommand(t *testing.T) {
	p := verifyFixture()
	p.Commands = append(p.Commands, SubCommand{})
	assertConfigError(t, Verify(p), "name")
}

func TestVerify_DuplicateSubCommand(t *testing.T) {
	p := verifyFixture()
	p.Commands = append(p.Commands, SubCommand{Name: "install"})
	assertConfigError(t, Verify(p), "duplicate")
}
