// Package pipeline streams reads from a seqio.Reader through the orientation
// core on a worker pool, re-sequences results to input order, and calls a
// visit callback while a single collector goroutine owns the running stats.
package pipeline
