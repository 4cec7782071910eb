package cmdutil

import (
	"context"

	"github.com/RunningMSN/SPIDER/internal/engine"
	"github.com/RunningMSN/SPIDER/internal/pipeline"
	"github.com/RunningMSN/SPIDER/internal/refdb"
)

// RunStream runs the shared pipeline and streams every row via send, in
// assembly order. It returns the number of rows sent and of valid calls,
// plus the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	assemblies []string,
	refs []refdb.Reference,
	cr pipeline.Crawler,
	send func(engine.Row) error,
) (rows, valid int, err error) {
	err = pipeline.ForEachTable(ctx, cfg, assemblies, refs, cr, func(t engine.Table) error {
		for _, r := range t {
			if err := send(r); err != nil {
				return err
			}
			rows++
			if r.Valid {
				valid++
			}
		}
		return nil
	})
	return rows, valid, err
}
