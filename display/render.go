package display

import "github.com/unmanned-player/clip/core"

// Renderer adapts this package's output functions to the engine's rendering
// interface.
type Renderer struct{}

// NewRenderer returns the standard renderer.
func NewRenderer() Renderer { return Renderer{} }

func (Renderer) Summary(p *core.Parser, cmd *core.SubCommand) { Summary(p, cmd) }

func (Renderer) Version(p *core.Parser) { Version(p) }
