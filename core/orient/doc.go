// Package orient contains the read-orientation core: the poly-A/poly-T run
// scanner, the classification policy, and the streaming stats accumulator.
// It never imports app, writers, cli, or pipeline; keep it domain-only.
package orient
