package swiftamr

import (
	"strconv"
	"strings"
)

// KmerHit is one occurrence of a k-mer at a specific position within a gene.
type KmerHit struct {
	GeneID   uint32
	Position uint32
}

// kmerEntry is one collision-chain node: every hit recorded for a single
// distinct KmerCode that hashes into the entry's bucket. Hits are appended
// in insertion order, which (because ingest is sequential) is
// gene-id-major, position-ascending (invariant I4).
type kmerEntry struct {
	kmer KmerCode
	hits []KmerHit
}

// Index is the process-owned state a swiftamr build produces: a dense gene
// table plus a chained k-mer hash table. An Index is built once via
// BuildFromFASTA/AddGene and then read many times by Aligner, SearchGenes,
// and the gene-length queries; it has no internal locking (see the package
// doc's Concurrency section).
type Index struct {
	buckets [][]kmerEntry
	genes   *geneTable
	search  *geneSearchIndex
	lengths *geneLengthIndex
}

// NewIndex allocates an empty Index: a HashTableSize-bucket k-mer table and
// a gene table of initial capacity 1024 (grows by doubling as genes are
// added).
func NewIndex() *Index {
	return &Index{
		buckets: make([][]kmerEntry, HashTableSize),
		genes:   newGeneTable(1024),
		search:  newGeneSearchIndex(),
		lengths: newGeneLengthIndex(),
	}
}

// NumGenes returns the number of genes currently in the index.
func (ix *Index) NumGenes() int { return ix.genes.len() }

// Gene returns the gene with the given id, or false if id is out of range.
func (ix *Index) Gene(id uint32) (*Gene, bool) { return ix.genes.get(id) }

// AddGene validates the sequence length, appends a new Gene with the given
// name (verbatim, no header splitting) and uppercased sequence, and inserts
// every valid k-mer window from the sequence into the hash table. It
// returns the gene's dense id.
func (ix *Index) AddGene(name, sequence string) (uint32, error) {
	return ix.addGene(name, "", []byte(strings.ToUpper(sequence)))
}

// addGene is the shared insertion path used by both AddGene and the FASTA
// builder (which additionally splits the header into name/description).
func (ix *Index) addGene(name, description string, sequence []byte) (uint32, error) {
	if len(sequence) > MaxSequenceLength {
		return 0, ErrSequenceTooLong
	}

	geneID, err := ix.genes.add(name, description, sequence)
	if err != nil {
		return 0, err
	}

	for i := 0; i+KmerSize <= len(sequence); i++ {
		code, ok := encodeKmer(sequence, i)
		if !ok {
			continue
		}
		ix.insertKmer(code, geneID, uint32(i))
	}

	ix.lengths.add(geneID, len(sequence))
	if description != "" {
		ix.search.add(geneID, description)
	}

	return geneID, nil
}

func bucketIndex(k KmerCode) uint32 {
	return uint32(k) % HashTableSize
}

// insertKmer records one (gene, position) hit for kmer, creating a new
// chain entry in its bucket if this is the first time kmer has been seen.
func (ix *Index) insertKmer(kmer KmerCode, geneID, position uint32) {
	idx := bucketIndex(kmer)
	bucket := ix.buckets[idx]

	for i := range bucket {
		if bucket[i].kmer == kmer {
			bucket[i].hits = append(bucket[i].hits, KmerHit{GeneID: geneID, Position: position})
			return
		}
	}

	hits := make([]KmerHit, 1, 4)
	hits[0] = KmerHit{GeneID: geneID, Position: position}
	ix.buckets[idx] = append(bucket, kmerEntry{kmer: kmer, hits: hits})
}

// Lookup returns the chain entry whose stored k-mer equals kmer, or false
// if no such entry exists.
func (ix *Index) Lookup(kmer KmerCode) (*kmerEntry, bool) {
	bucket := ix.buckets[bucketIndex(kmer)]
	for i := range bucket {
		if bucket[i].kmer == kmer {
			return &bucket[i], true
		}
	}
	return nil, false
}

// Close releases the index's owned storage. In Go this means dropping
// references so the garbage collector can reclaim them; it is the moral
// equivalent of the source's index_destroy, and it is safe to call more
// than once.
func (ix *Index) Close() {
	ix.buckets = nil
	ix.genes = newGeneTable(0)
	ix.search = newGeneSearchIndex()
	ix.lengths = newGeneLengthIndex()
}

// Stats returns a short human-readable summary of the index, mirroring the
// source's get_stats() output.
func (ix *Index) Stats() string {
	var b strings.Builder
	b.WriteString("Index Statistics:\n")
	b.WriteString("  Number of genes: ")
	b.WriteString(strconv.Itoa(ix.genes.len()))
	b.WriteString("\n  K-mer size: ")
	b.WriteString(strconv.Itoa(KmerSize))
	b.WriteString("\n  Hash table size: ")
	b.WriteString(strconv.Itoa(HashTableSize))
	b.WriteString("\n")
	return b.String()
}
