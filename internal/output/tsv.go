// internal/output/tsv.go
package output

import (
	"io"
	"strings"

	"github.com/RunningMSN/SPIDER/internal/engine"
)

// cellReplacer flattens characters that would split a TSV cell or record.
var cellReplacer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// FormatRowTSV returns one row without the trailing newline.
func FormatRowTSV(r engine.Row) string {
	vals := r.Values()
	for i, v := range vals {
		vals[i] = cellReplacer.Replace(v)
	}
	return strings.Join(vals, "\t")
}

// WriteTSV writes rows as a tab-delimited table.
func WriteTSV(w io.Writer, rows []engine.Row, header bool) error {
	if header {
		if _, err := io.WriteString(w, TSVHeader+"\n"); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := io.WriteString(w, FormatRowTSV(r)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// StreamTSV writes rows as they arrive on in.
func StreamTSV(w io.Writer, in <-chan engine.Row, header bool) error {
	return StreamTSVWithRenderer(w, in, header, false, nil)
}

// StreamTSVWithRenderer is StreamTSV with an optional block written after
// each row; render may return "" to skip a row.
func StreamTSVWithRenderer(w io.Writer, in <-chan engine.Row, header bool, pretty bool, render func(engine.Row) string) error {
	if header {
		if _, err := io.WriteString(w, TSVHeader+"\n"); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := io.WriteString(w, FormatRowTSV(r)+"\n"); err != nil {
			return err
		}
		if pretty && render != nil {
			if block := render(r); block != "" {
				if _, err := io.WriteString(w, block); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
