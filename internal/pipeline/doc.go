// Package pipeline crawls many assemblies concurrently and hands each
// assembly's table to a visit callback in input order.
//
// The only contract to implement is Crawler (CrawlReferences).
// This keeps the pipeline swappable and testable.
package pipeline
