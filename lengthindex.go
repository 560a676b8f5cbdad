package swiftamr

import (
	"github.com/RoaringBitmap/roaring"
	bsi "github.com/RoaringBitmap/roaring/BitSliceIndexing"
)

// geneLengthIndex is a bit-sliced numeric index over Gene.length, built
// incrementally as genes are added. It supports the range queries a QC pass
// over a freshly built database wants (e.g. "which genes are too short to
// be reliably discriminated by K=16 k-mers") without a linear scan of the
// gene table.
type geneLengthIndex struct {
	bsi *bsi.BSI
}

func newGeneLengthIndex() *geneLengthIndex {
	return &geneLengthIndex{bsi: bsi.NewBSI(bsi.Min64BitSigned, bsi.Max64BitSigned)}
}

func (li *geneLengthIndex) add(geneID uint32, length int) {
	li.bsi.SetValue(uint64(geneID), int64(length))
}

// GenesByLengthRange returns, in ascending order, the ids of every gene
// whose length lies in [min, max] inclusive. min > max returns an empty
// slice, not an error.
func (ix *Index) GenesByLengthRange(min, max int) ([]uint32, error) {
	if min > max {
		return []uint32{}, nil
	}
	bitmap := ix.lengths.bsi.CompareValue(0, bsi.RANGE, int64(min), int64(max), nil)
	return bitmapToIDs(bitmap), nil
}

// GenesShorterThan returns, in ascending order, the ids of every gene whose
// length is strictly less than n.
func (ix *Index) GenesShorterThan(n int) ([]uint32, error) {
	bitmap := ix.lengths.bsi.CompareValue(0, bsi.LT, int64(n), 0, nil)
	return bitmapToIDs(bitmap), nil
}

// GenesLongerThan returns, in ascending order, the ids of every gene whose
// length is strictly greater than n.
func (ix *Index) GenesLongerThan(n int) ([]uint32, error) {
	bitmap := ix.lengths.bsi.CompareValue(0, bsi.GT, int64(n), 0, nil)
	return bitmapToIDs(bitmap), nil
}

func bitmapToIDs(bitmap *roaring.Bitmap) []uint32 {
	ids := bitmap.ToArray()
	if ids == nil {
		return []uint32{}
	}
	return ids
}
