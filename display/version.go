package display

import (
	"fmt"

	"github.com/unmanned-player/clip/core"
)

// Version prints the "<program> <version>" line to the parser's output sink.
func Version(p *core.Parser) {
	if p == nil {
		return
	}
	st := NewStyles(p.Flags.Has(core.UseColor))
	fmt.Fprintf(p.Output(), "%s %s\n", st.Prog.Sprint(p.Name), p.Version)
}
