// internal/output/common.go
package output

import (
	"strings"

	"github.com/RunningMSN/SPIDER/internal/engine"
)

// Output formats accepted by --format.
const (
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists the accepted formats in help order.
var Formats = []string{FormatTSV, FormatJSON, FormatJSONL}

// TSVHeader is the canonical header row for TSV output.
// Keep engine.Columns as the single source of truth; all writers should use it.
var TSVHeader = strings.Join(engine.Header(), "\t")
