package swiftamr

import "sync/atomic"

// Engine reproduces the "one live Index" shape of swiftamr's external
// interface (build_index / align_fastq / get_stats / cleanup) for callers
// that want a handle instead of managing an *Index themselves. Everywhere
// else in this package, Index/Aligner are owned directly by the caller;
// Engine exists only for the boundary spec.md §9 carves out for a host
// runtime that demands a handleless API.
//
// A new Build atomically replaces the current Index (invariant I5): any
// Align in flight against the previous Index keeps running against that
// Index's own state, but a subsequent Align call always sees the new one.
// Engine does not otherwise synchronize Build against Align — a Build
// racing an Align on the same Engine value is caller error, exactly as
// spec.md §5 documents.
type Engine struct {
	current atomic.Pointer[Index]
}

// NewEngine returns an Engine with no index loaded.
func NewEngine() *Engine {
	return &Engine{}
}

// Build parses fastaData as FASTA, builds a fresh Index from it, and
// atomically swaps it in as the engine's current index. It returns the
// number of genes added.
func (e *Engine) Build(fastaData []byte) (int, error) {
	index := NewIndex()
	genesAdded, err := index.BuildFromFASTA(fastaData)
	if err != nil {
		return 0, err
	}
	e.current.Store(index)
	return genesAdded, nil
}

// Align parses fastqData as FASTQ and aligns it against the current index.
// It returns ErrNoIndex if Build has not yet succeeded.
func (e *Engine) Align(fastqData []byte) ([]ReadAlignment, error) {
	index := e.current.Load()
	if index == nil {
		return nil, ErrNoIndex
	}
	return NewAligner(index).AlignFASTQ(fastqData)
}

// Index returns the engine's current index, or nil if none has been built.
func (e *Engine) Index() *Index {
	return e.current.Load()
}

// Stats mirrors get_stats(): a short human-readable summary of the current
// index, or the literal "No index loaded" if none exists.
func (e *Engine) Stats() string {
	index := e.current.Load()
	if index == nil {
		return "No index loaded"
	}
	return index.Stats()
}

// Cleanup drops the current index. It is idempotent.
func (e *Engine) Cleanup() {
	e.current.Store(nil)
}
