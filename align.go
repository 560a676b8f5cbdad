package swiftamr

import (
	"sync"

	"github.com/RoaringBitmap/roaring"
)

// alignScratch holds the per-read scoring and coverage scratch state.
// Coverage uses a sparse per-gene roaring bitmap of covered positions
// rather than a dense bitmap sized against the compile-time sequence
// ceiling — spec.md §9's preferred reshape of the source's coverage
// bitmap, which the source sizes at num_genes * ceil(MAX_SEQUENCE_LENGTH/32)
// words regardless of how many genes a read actually touches.
type alignScratch struct {
	scores   map[uint32]uint32
	coverage map[uint32]*roaring.Bitmap
}

func newAlignScratch() *alignScratch {
	return &alignScratch{
		scores:   make(map[uint32]uint32),
		coverage: make(map[uint32]*roaring.Bitmap),
	}
}

func (s *alignScratch) reset() {
	for k := range s.scores {
		delete(s.scores, k)
	}
	for k := range s.coverage {
		delete(s.coverage, k)
	}
}

// Aligner aligns FASTQ reads against a fixed Index using a winner-takes-all
// scoring rule over K=16 k-mer matches. Per-read scratch memory is pooled
// across a batch, in the style of this package's other search paths
// pooling their top-k result heaps.
type Aligner struct {
	index   *Index
	scratch sync.Pool
}

// NewAligner returns an Aligner that scores reads against index.
func NewAligner(index *Index) *Aligner {
	return &Aligner{
		index:   index,
		scratch: sync.Pool{New: func() any { return newAlignScratch() }},
	}
}

// AlignFASTQ parses data as FASTQ and aligns every read of at least
// KmerSize bases, in input order. Reads shorter than KmerSize are skipped
// and do not appear in the result or its length.
func (al *Aligner) AlignFASTQ(data []byte) ([]ReadAlignment, error) {
	records, err := parseFASTQ(data)
	if err != nil {
		return nil, err
	}

	results := make([]ReadAlignment, 0, len(records))
	for _, rec := range records {
		if len(rec.sequence) < KmerSize {
			continue
		}
		results = append(results, al.alignRead(rec.name, rec.sequence))
	}
	return results, nil
}

// alignRead computes the ReadAlignment for one read of at least KmerSize
// bases: scan every valid k-mer window, accumulate score and coverage per
// gene, and pick the winner.
func (al *Aligner) alignRead(name string, sequence []byte) ReadAlignment {
	scratch := al.scratch.Get().(*alignScratch)
	defer func() {
		scratch.reset()
		al.scratch.Put(scratch)
	}()

	var kmersScanned uint32
	for i := 0; i+KmerSize <= len(sequence); i++ {
		code, ok := encodeKmer(sequence, i)
		if !ok {
			continue
		}
		kmersScanned++

		entry, found := al.index.Lookup(code)
		if !found {
			continue
		}
		for _, hit := range entry.hits {
			scratch.scores[hit.GeneID]++
			bm := scratch.coverage[hit.GeneID]
			if bm == nil {
				bm = roaring.New()
				scratch.coverage[hit.GeneID] = bm
			}
			bm.Add(hit.Position)
		}
	}

	result := ReadAlignment{ReadName: name, KmersScanned: kmersScanned}

	winner, score := pickWinner(scratch.scores)
	if score == 0 {
		result.BestGeneID = NoHitGeneID
		return result
	}

	result.BestGeneID = winner
	result.Score = score

	gene, _ := al.index.Gene(winner)
	geneLen := gene.Length()

	if geneLen > 0 {
		covered := 0
		if bm := scratch.coverage[winner]; bm != nil {
			covered = int(bm.GetCardinality())
		}
		result.Coverage = float64(covered) / float64(geneLen)
	}

	maxPossible := geneLen
	if len(sequence) < maxPossible {
		maxPossible = len(sequence)
	}
	maxPossible = maxPossible - KmerSize + 1
	if maxPossible > 0 {
		identity := float64(score) / float64(maxPossible)
		if identity > 1.0 {
			identity = 1.0
		}
		result.Identity = identity
	}

	return result
}

// pickWinner returns the gene id with the highest score, ties broken by
// smallest id, and that score. It returns (0, 0) for an empty scores map,
// which alignRead treats as "no hit".
func pickWinner(scores map[uint32]uint32) (geneID uint32, score uint32) {
	found := false
	for id, s := range scores {
		if !found || s > score || (s == score && id < geneID) {
			geneID, score, found = id, s, true
		}
	}
	return geneID, score
}
