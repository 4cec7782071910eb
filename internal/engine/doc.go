// Package engine contains the crawl core: it turns one assembly and a set of
// reference sequences into exactly one Row per reference. It never imports
// app, writers, cli, or pipeline; keep it domain-only.
//
// External outputs must not depend on the internal shape here. Use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
