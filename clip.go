package clip

import (
	"github.com/unmanned-player/clip/core"
	"github.com/unmanned-player/clip/display"
)

// Parse walks args once and invokes p's callback per recognised option or
// sub-command selection. args follows the argv convention: args[0] is the
// program name and is never inspected.
//
// The returned Outcome carries the classic numeric contract (Ok, HelpExit,
// Invalid, CallbackFailed, BadArg); the error is nil for Ok and HelpExit and
// a typed value from the errors package otherwise.
//
// Usage:
//
//	outcome, err := clip.Parse(p, os.Args)
//	if err != nil {
//		os.Exit(int(outcome))
//	}
func Parse(p *Parser, args []string) (Outcome, error) {
	return core.Parse(p, args, display.NewRenderer())
}

// Summary renders the usage summary for cmd to p's output sink; pass nil for
// the base view. Parse calls this itself when automatic help fires, so most
// programs never need it directly.
var Summary = display.Summary

// Version prints the "<program> <version>" line to p's output sink.
var Version = display.Version

// Verify checks a parser configuration for consistency: unnamed switches,
// value options without tags, duplicate or unnamed sub-commands, more than
// one catch-all per group. Intended for development builds and tests.
var Verify = core.Verify
