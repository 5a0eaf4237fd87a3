package train

import (
	"fmt"
	"math/rand"
)

// BlobsConfig describes a synthetic Gaussian-blob classification dataset.
type BlobsConfig struct {
	Samples  int     // Total number of samples across all classes
	Classes  int     // Number of blob centers / class labels
	Features int     // Dimensionality of each sample
	Spread   float64 // Standard deviation of each blob
	Seed     int64   // Random seed for centers and noise
}

// Blobs generates a small, separable synthetic dataset: one Gaussian blob
// per class, centers spaced on a coarse grid so small spreads keep the
// classes linearly separable. Useful for end-to-end training checks
// without an external data dependency.
func Blobs(cfg BlobsConfig) ([]Sample, error) {
	if cfg.Samples <= 0 || cfg.Classes <= 0 || cfg.Features <= 0 {
		return nil, fmt.Errorf("blobs: samples, classes, and features must be > 0 (got %d, %d, %d)",
			cfg.Samples, cfg.Classes, cfg.Features)
	}
	if cfg.Spread < 0 {
		return nil, fmt.Errorf("blobs: spread must be >= 0, got %f", cfg.Spread)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	// One center per class. Coordinates drawn from {-4, 0, 4}-ish grid
	// points keep the blobs well apart for typical spreads <= 1.
	centers := make([][]float64, cfg.Classes)
	for c := range centers {
		centers[c] = make([]float64, cfg.Features)
		for f := range centers[c] {
			centers[c][f] = float64(rng.Intn(3)-1) * 4.0
		}
		// Offset the first coordinate by class so centers never coincide.
		centers[c][0] += float64(c) * 8.0
	}

	samples := make([]Sample, cfg.Samples)
	for i := range samples {
		label := i % cfg.Classes
		features := make([]float32, cfg.Features)
		for f := range features {
			features[f] = float32(centers[label][f] + rng.NormFloat64()*cfg.Spread)
		}
		samples[i] = Sample{Features: features, Label: label}
	}

	return samples, nil
}
