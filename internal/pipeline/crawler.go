// internal/pipeline/crawler.go
package pipeline

import (
	"context"

	"github.com/RunningMSN/SPIDER/internal/engine"
	"github.com/RunningMSN/SPIDER/internal/refdb"
)

// Crawler is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Crawler interface {
	CrawlReferences(ctx context.Context, assemblyPath string, refs []refdb.Reference) (engine.Table, error)
}
