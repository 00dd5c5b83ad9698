// Package batch tracks the slice bounds of consecutive mini-batches over a
// data set and counts completed passes.
package batch

// Helper hands out [start, end) bounds of consecutive batches. It is not
// safe for concurrent use.
type Helper struct {
	nData      int
	batchSize  int
	current    int
	iterations int
}

// New returns a Helper over nData elements. A batchSize <= 0 means a single
// batch covering all data.
func New(nData, batchSize int) *Helper {
	if batchSize <= 0 {
		batchSize = nData
	}
	return &Helper{nData: nData, batchSize: batchSize}
}

// Next returns the bounds of the next batch. The batch that reaches the end
// of the data also completes an iteration, and the following call starts
// again at 0.
func (h *Helper) Next() (start, end int) {
	start = h.current
	end = min(h.current+h.batchSize, h.nData)
	if end >= h.nData {
		h.current = 0
		h.iterations++
	} else {
		h.current = end
	}
	return start, end
}

// Iterations returns the number of completed passes over the data.
func (h *Helper) Iterations() int { return h.iterations }

// BatchSize returns the effective batch size.
func (h *Helper) BatchSize() int { return h.batchSize }

// Reset rewinds to the first batch and clears the iteration count.
func (h *Helper) Reset() {
	h.current = 0
	h.iterations = 0
}
