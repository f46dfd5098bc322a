// Package renderer turns the engine's flow tables into markdown, the only
// presentation surface of the garbanzo CLI. Chart-oriented consumers use
// the tables directly; the renderer exists for humans in a terminal.
package renderer

import (
	"bytes"
	"io"
)

// ConditionalBlock lets a block be fully written before deciding to print
// it. If the block function returns true the content is copied to w,
// otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}
