// internal/writers/rows.go
package writers

import (
	"io"

	"github.com/RunningMSN/SPIDER/internal/engine"
	"github.com/RunningMSN/SPIDER/internal/output"
	"github.com/RunningMSN/SPIDER/internal/pretty"
)

func drainRows(ch <-chan engine.Row) []engine.Row {
	list := make([]engine.Row, 0, 128)
	for r := range ch {
		list = append(list, r)
	}
	return list
}

func init() {
	// JSON array (buffered)
	RegisterRow(output.FormatJSON, func(w io.Writer, args RowArgs) error {
		return output.WriteJSON(w, drainRows(args.In))
	})

	// JSONL streaming
	RegisterRow(output.FormatJSONL, func(w io.Writer, args RowArgs) error {
		pipe, done := StartRowJSONLWriter(w, 64)
		for r := range args.In {
			pipe <- r
		}
		close(pipe)
		return <-done
	})

	// TSV streaming, optionally with anchor diagrams
	RegisterRow(output.FormatTSV, func(w io.Writer, args RowArgs) error {
		return output.StreamTSVWithRenderer(w, args.In, args.Header, args.Pretty,
			func(r engine.Row) string { return pretty.RenderCallWithOptions(r, args.Opt) },
		)
	})
}

// StartRowWriter spins up a writer goroutine for format. Rows sent on the
// returned channel are written in arrival order; the error channel yields
// once after the input channel is closed.
// (Uses pretty.DefaultOptions for TSV diagrams.)
func StartRowWriter(out io.Writer, format string, header, prettyMode bool, bufSize int) (chan<- engine.Row, <-chan error) {
	return StartRowWriterWithPrettyOptions(out, format, header, prettyMode, pretty.DefaultOptions, bufSize)
}

// StartRowWriterWithPrettyOptions allows customizing the diagram renderer.
func StartRowWriterWithPrettyOptions(out io.Writer, format string, header, prettyMode bool, popt pretty.Options, bufSize int) (chan<- engine.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Row, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteRows(format, out, RowArgs{Header: header, Pretty: prettyMode, Opt: popt, In: in})
		// keep senders unblocked after a failed or unknown writer
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
