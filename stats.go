package sbits

// Stats holds the engine's running counters, named after the teacher's
// Env.Stat() diagnostics but counting SBITS-specific activity instead of
// MDBX's B-tree page classes (spec.md §4.7).
type Stats struct {
	Reads       uint64
	Writes      uint64
	IndexReads  uint64
	IndexWrites uint64
	BufferHits  uint64
	BufferMiss  uint64
}

// ResetStats zeros the running counters, including the buffer pool's hit
// tracking.
func (e *Engine) ResetStats() {
	e.stats = Stats{}
	e.buf.resetStats()
}

// PrintStats logs a snapshot of the current counters through the
// engine's structured logger.
func (e *Engine) PrintStats() {
	e.log.Infow("sbits stats",
		"reads", e.stats.Reads,
		"writes", e.stats.Writes,
		"indexReads", e.stats.IndexReads,
		"indexWrites", e.stats.IndexWrites,
		"bufferHits", e.buf.hits,
		"bufferTotal", e.buf.total,
		"numPages", e.numPages,
	)
}
