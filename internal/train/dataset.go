package train

import (
	"fmt"
	"math/rand"

	"github.com/flint-ml/flint/internal/tensor"
)

// Batch is one unit of training data: a [batch_size, features] input
// tensor and one integer class label per row.
type Batch struct {
	Inputs *tensor.Tensor[float32]
	Labels []int
}

// Source supplies batches for one epoch at a time.
//
// A Source is lazy, finite, and restartable: Next returns batches until
// the epoch is exhausted, and Reset rewinds it for the next epoch.
type Source interface {
	// Reset rewinds the source to the start of a new epoch.
	Reset()

	// Next returns the next batch. ok is false once the epoch is exhausted.
	Next() (batch Batch, ok bool)
}

// Sample is a single labeled example.
type Sample struct {
	Features []float32
	Label    int
}

// SliceSource serves batches from an in-memory sample slice, reshuffling
// with a seeded source on every Reset so epochs stay reproducible.
//
// The final batch of an epoch may be short; it is emitted, not dropped.
type SliceSource struct {
	samples   []Sample
	features  int
	batchSize int
	rng       *rand.Rand
	order     []int
	cursor    int
}

// NewSliceSource creates a source over the given samples.
// All samples must have the same feature width.
func NewSliceSource(samples []Sample, batchSize int, seed int64) (*SliceSource, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("slice source: no samples provided")
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("slice source: batch size must be > 0, got %d", batchSize)
	}
	features := len(samples[0].Features)
	for i, s := range samples {
		if len(s.Features) != features {
			return nil, fmt.Errorf("slice source: sample %d has %d features, want %d",
				i, len(s.Features), features)
		}
	}

	src := &SliceSource{
		samples:   samples,
		features:  features,
		batchSize: batchSize,
		rng:       rand.New(rand.NewSource(seed)),
		order:     make([]int, len(samples)),
	}
	src.Reset()
	return src, nil
}

// Reset reshuffles the sample order and rewinds the cursor.
func (s *SliceSource) Reset() {
	for i := range s.order {
		s.order[i] = i
	}
	s.rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
	s.cursor = 0
}

// Next assembles the next batch from the shuffled order.
func (s *SliceSource) Next() (Batch, bool) {
	if s.cursor >= len(s.order) {
		return Batch{}, false
	}

	end := s.cursor + s.batchSize
	if end > len(s.order) {
		end = len(s.order)
	}
	indices := s.order[s.cursor:end]
	s.cursor = end

	inputs := tensor.Zeros[float32](tensor.Shape{len(indices), s.features})
	labels := make([]int, len(indices))
	data := inputs.Data()
	for row, idx := range indices {
		copy(data[row*s.features:(row+1)*s.features], s.samples[idx].Features)
		labels[row] = s.samples[idx].Label
	}

	return Batch{Inputs: inputs, Labels: labels}, true
}

// Len returns the number of samples in the source.
func (s *SliceSource) Len() int {
	return len(s.samples)
}
