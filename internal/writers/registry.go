// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"github.com/RunningMSN/SPIDER/internal/engine"
	"github.com/RunningMSN/SPIDER/internal/pretty"
)

// RowArgs is the payload every row writer receives.
type RowArgs struct {
	Header bool
	Pretty bool
	Opt    pretty.Options
	In     <-chan engine.Row
}

// RowWriters maps format -> handler. Register in init() blocks.
var RowWriters = map[string]func(w io.Writer, args RowArgs) error{}

// RegisterRow adds or replaces the handler for format (last wins).
func RegisterRow(format string, fn func(io.Writer, RowArgs) error) { RowWriters[format] = fn }

// WriteRows dispatches to the handler registered for format.
func WriteRows(format string, w io.Writer, args RowArgs) error {
	fn, ok := RowWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, args)
}
