// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"github.com/RunningMSN/SPIDER/internal/engine"
	"github.com/RunningMSN/SPIDER/internal/jsonlutil"
	"github.com/RunningMSN/SPIDER/internal/output"
)

// StartRowJSONLWriter streams each engine.Row as one JSON line (v1).
func StartRowJSONLWriter(out io.Writer, bufSize int) (chan<- engine.Row, <-chan error) {
	return jsonlutil.Start[engine.Row](out, bufSize,
		func(enc *json.Encoder, r engine.Row) error {
			return enc.Encode(output.ToAPIResult(r))
		},
		IsBrokenPipe,
	)
}
