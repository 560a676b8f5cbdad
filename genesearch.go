package swiftamr

import (
	"container/heap"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/RoaringBitmap/roaring"
	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/unicode/norm"
)

// BM25 parameters, matching the values this stack's own BM25 index uses.
const (
	bm25K1 = 1.2
	bm25B  = 0.75
)

// geneSearchIndex is a BM25-ranked full-text index over gene header
// descriptions, keyed by the gene's dense id. Unlike a general-purpose
// document index, it is append-only: gene tables in this engine never
// mutate in place (invariant I5 tears down the whole Index on rebuild), so
// there is no remove/update path to support.
type geneSearchIndex struct {
	postings    map[string]*roaring.Bitmap // term -> gene ids
	tf          map[string]map[uint32]int  // term -> gene id -> term frequency
	docLengths  map[uint32]int             // gene id -> token count
	totalTokens int
	numDocs     int
}

func newGeneSearchIndex() *geneSearchIndex {
	return &geneSearchIndex{
		postings:   make(map[string]*roaring.Bitmap),
		tf:         make(map[string]map[uint32]int),
		docLengths: make(map[uint32]int),
	}
}

// searchHeapPool pools the min-heap used to keep the top-k results, in the
// style of this stack's BM25 text search.
var searchHeapPool = sync.Pool{
	New: func() any {
		h := &geneResultHeap{}
		heap.Init(h)
		return h
	},
}

func normalizeText(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}

func tokenizeText(s string) []string {
	toks := words.FromString(s)
	var out []string
	for toks.Next() {
		out = append(out, toks.Value())
	}
	return out
}

// add indexes description under geneID. It is only ever called once per
// gene, from Index.addGene.
func (ix *geneSearchIndex) add(geneID uint32, description string) {
	tokens := tokenizeText(normalizeText(description))
	if len(tokens) == 0 {
		return
	}

	ix.docLengths[geneID] = len(tokens)
	ix.numDocs++
	ix.totalTokens += len(tokens)

	for _, t := range tokens {
		if ix.postings[t] == nil {
			ix.postings[t] = roaring.New()
		}
		ix.postings[t].Add(geneID)

		if ix.tf[t] == nil {
			ix.tf[t] = make(map[uint32]int)
		}
		ix.tf[t][geneID]++
	}
}

func (ix *geneSearchIndex) avgDocLength() float64 {
	if ix.numDocs == 0 {
		return 0
	}
	return float64(ix.totalTokens) / float64(ix.numDocs)
}

// GeneSearchResult is one ranked hit from Index.SearchGenes.
type GeneSearchResult struct {
	GeneID uint32
	Score  float64
}

// geneResultHeap is a min-heap of GeneSearchResults, used to keep only the
// top-k during a search.
type geneResultHeap []GeneSearchResult

func (h geneResultHeap) Len() int      { return len(h) }
func (h geneResultHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h geneResultHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	// Break ties toward larger gene id at the bottom of the min-heap, so
	// popping the heap in reverse yields ascending-id order among ties.
	return h[i].GeneID > h[j].GeneID
}

func (h *geneResultHeap) Push(x any) { *h = append(*h, x.(GeneSearchResult)) }
func (h *geneResultHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// SearchGenes tokenizes query with the same Unicode word segmentation and
// NFKC normalization used at ingest time, scores every gene whose
// description shares a term with the query using BM25, and returns the top
// k results ordered by descending score, ties broken by ascending gene id.
// k <= 0 returns all scored results. An Index with no genes, or a query
// that matches nothing, returns an empty, non-nil result slice.
func (ix *Index) SearchGenes(query string, k int) ([]GeneSearchResult, error) {
	si := ix.search
	terms := tokenizeText(normalizeText(query))
	if len(terms) == 0 || si.numDocs == 0 {
		return []GeneSearchResult{}, nil
	}

	avgLen := si.avgDocLength()
	scores := make(map[uint32]float64)

	for _, term := range terms {
		docs := si.postings[term]
		if docs == nil || docs.IsEmpty() {
			continue
		}
		idf := idf(si.numDocs, int(docs.GetCardinality()))
		it := docs.Iterator()
		for it.HasNext() {
			geneID := it.Next()
			tf := float64(si.tf[term][geneID])
			docLen := float64(si.docLengths[geneID])
			denom := tf + bm25K1*(1-bm25B+bm25B*(docLen/avgLen))
			scores[geneID] += idf * (tf * (bm25K1 + 1) / denom)
		}
	}

	if len(scores) == 0 {
		return []GeneSearchResult{}, nil
	}

	if k <= 0 || k >= len(scores) {
		results := make([]GeneSearchResult, 0, len(scores))
		for id, score := range scores {
			results = append(results, GeneSearchResult{GeneID: id, Score: score})
		}
		sortGeneResults(results)
		return results, nil
	}

	h := searchHeapPool.Get().(*geneResultHeap)
	*h = (*h)[:0]
	defer func() {
		*h = (*h)[:0]
		searchHeapPool.Put(h)
	}()

	for id, score := range scores {
		if h.Len() < k {
			heap.Push(h, GeneSearchResult{GeneID: id, Score: score})
		} else if better(GeneSearchResult{GeneID: id, Score: score}, (*h)[0]) {
			heap.Pop(h)
			heap.Push(h, GeneSearchResult{GeneID: id, Score: score})
		}
	}

	results := make([]GeneSearchResult, h.Len())
	for i := len(results) - 1; i >= 0; i-- {
		results[i] = heap.Pop(h).(GeneSearchResult)
	}
	return results, nil
}

// better reports whether a should displace the current heap minimum b:
// strictly higher score, or equal score and a smaller gene id (since a
// smaller id should survive over a larger one at equal score).
func better(a, b GeneSearchResult) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.GeneID < b.GeneID
}

func sortGeneResults(results []GeneSearchResult) {
	sort.Slice(results, func(i, j int) bool { return better(results[i], results[j]) })
}

func idf(numDocs, docFreq int) float64 {
	return math.Log((float64(numDocs)-float64(docFreq)+0.5)/(float64(docFreq)+0.5) + 1)
}
