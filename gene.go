package swiftamr

import "math"

// Gene is one reference sequence loaded from a FASTA record. Its id is
// dense and stable for the lifetime of the Index that owns it (invariant
// I1: ids are assigned in [0, num_genes) in insertion order).
type Gene struct {
	id          uint32
	name        string
	description string
	sequence    []byte
}

// ID returns the gene's dense, insertion-order id.
func (g *Gene) ID() uint32 { return g.id }

// Name returns the short accession/name token from the FASTA header (the
// text before the first run of whitespace).
func (g *Gene) Name() string { return g.name }

// Description returns the free-text remainder of the FASTA header after the
// name token, or "" if the header had no whitespace.
func (g *Gene) Description() string { return g.description }

// Sequence returns the gene's uppercase nucleotide sequence. Callers must
// not modify the returned slice.
func (g *Gene) Sequence() []byte { return g.sequence }

// Length returns the number of bases in the gene's sequence.
func (g *Gene) Length() int { return len(g.sequence) }

// geneTable is a dense, append-only, doubling-capacity slice of genes,
// mirroring the source's KmerIndex.genes/genes_capacity pair.
type geneTable struct {
	genes []Gene
}

func newGeneTable(initialCapacity int) *geneTable {
	return &geneTable{genes: make([]Gene, 0, initialCapacity)}
}

// add validates that the table has room for one more dense id, appends a
// new gene, and returns its assigned id. It returns ErrGeneCapacity if the
// table already holds MaxUint32 genes — the point at which a gene id can no
// longer be represented, mirroring the source's genes_capacity check before
// its realloc.
func (t *geneTable) add(name, description string, sequence []byte) (uint32, error) {
	if len(t.genes) >= math.MaxUint32 {
		return 0, ErrGeneCapacity
	}
	if len(t.genes) == cap(t.genes) {
		newCap := 2 * cap(t.genes)
		if newCap == 0 {
			newCap = 1
		}
		grown := make([]Gene, len(t.genes), newCap)
		copy(grown, t.genes)
		t.genes = grown
	}
	id := uint32(len(t.genes))
	t.genes = append(t.genes, Gene{
		id:          id,
		name:        name,
		description: description,
		sequence:    sequence,
	})
	return id, nil
}

func (t *geneTable) get(id uint32) (*Gene, bool) {
	if int(id) >= len(t.genes) {
		return nil, false
	}
	return &t.genes[id], true
}

func (t *geneTable) len() int { return len(t.genes) }
