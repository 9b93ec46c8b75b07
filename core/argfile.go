package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/unmanned-player/clip/errors"
)

// MaxLineLen bounds a single argument-file line, in bytes. A longer line is
// reported as a BadArg failure rather than being truncated.
const MaxLineLen = 1024

// argFile expands one "@path" token. Each line is a bare option key with an
// optional value after the first '=' or, failing that, the first space. Keys
// resolve against the active group with base fallback, and the callback
// fires once per line. The first bad line aborts the whole parse.
func (p *Parser) argFile(path string, out io.Writer) (Outcome, error) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(out, "Arguments file '%s' could not be opened.\n", path)
		return BadArg, errors.NewArgFile(path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 256), MaxLineLen)

	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")

		key := line
		val := ""
		if cut := strings.IndexByte(line, '='); cut >= 0 {
			key, val = line[:cut], line[cut+1:]
		} else if cut := strings.IndexByte(line, ' '); cut >= 0 {
			key, val = line[:cut], line[cut+1:]
		}

		opt, whence := p.resolve(key)
		if opt == nil {
			dashes := "--"
			if utf8.RuneCountInString(key) == 1 {
				dashes = "-"
			}
			p.diag(out, "Invalid option:", dashes, key)
			return BadArg, errors.NewArgFile(path, errors.NewInvalidOption(key))
		}

		if err := p.Callback(p, whence, opt, val); err != nil {
			return CallbackFailed, errors.NewCallback(key, err)
		}
	}

	if err := sc.Err(); err != nil {
		// Covers bufio.ErrTooLong for lines beyond MaxLineLen.
		fmt.Fprintf(out, "Arguments file '%s' could not be read.\n", path)
		return BadArg, errors.NewArgFile(path, err)
	}
	return Ok, nil
}
