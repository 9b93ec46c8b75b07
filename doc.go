// Package clip is a callback-driven command-line argument parser for Go.
//
// Callers declare immutable option tables, optionally grouped into named
// sub-commands, and receive one callback invocation per recognised option or
// sub-command selection. The parser walks the argument vector once, honouring
// POSIX short clusters, GNU long options, "@file" argument expansion and a
// bare "--" terminator, and can synthesise -h/--help and -v/--version
// handling together with a colourised usage summary.
//
// The library never allocates or mutates descriptor tables; they are owned
// by the caller and only read for the duration of a parse.
package clip

//go:generate gomarkdoc ./ -o docs/clip.md
