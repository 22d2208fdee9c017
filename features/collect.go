package features

import (
	"context"
	"fmt"
)

// Set is a samples×dim feature matrix stored row-major.
type Set struct {
	Kind  Kind
	Split string
	Rows  int
	Dim   int
	Data  []float32
}

// Row returns the feature vector of sample i.
func (s *Set) Row(i int) []float32 {
	return s.Data[i*s.Dim : (i+1)*s.Dim]
}

// Collect encodes every sample of ds with model and returns the features.
//
// Stages:
//  1. Validate kind (only Encoder).
//  2. Scan: read every batch once, record the largest C, H, W and the split.
//  3. Encode: read every batch again, pad each image to C×H×W, encode and
//     copy the rows into the Set in dataset order.
//  4. Check that exactly ds.Len() rows were written.
func Collect(ctx context.Context, model Model, ds Dataset, kind Kind) (*Set, error) {
	if kind != Encoder {
		return nil, fmt.Errorf("collect %s: %w", kind, ErrUnsupportedKind)
	}
	total := ds.Len()
	if total <= 0 {
		return nil, ErrEmptyDataset
	}

	// Stage 2: scan shapes
	var maxC, maxH, maxW int
	var split string
	for b := 0; b < ds.NumBatches(); b++ {
		batch, err := ds.Batch(ctx, b)
		if err != nil {
			return nil, fmt.Errorf("features: batch %d: %w", b, err)
		}
		for k, im := range batch.Images {
			if err = im.validate(); err != nil {
				return nil, fmt.Errorf("features: batch %d image %d: %w", b, k, err)
			}
			maxC = max(maxC, im.Channels)
			maxH = max(maxH, im.Height)
			maxW = max(maxW, im.Width)
		}
		split = batch.Split
	}

	// Stage 3: encode padded batches
	set := &Set{Kind: kind, Split: split}
	for b := 0; b < ds.NumBatches(); b++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		batch, err := ds.Batch(ctx, b)
		if err != nil {
			return nil, fmt.Errorf("features: batch %d: %w", b, err)
		}
		if len(batch.Images) == 0 {
			continue
		}

		padded := make([]Image, len(batch.Images))
		for k, im := range batch.Images {
			if padded[k], err = im.Pad(maxC, maxH, maxW); err != nil {
				return nil, fmt.Errorf("features: batch %d image %d: %w", b, k, err)
			}
		}

		rows, err := model.Encode(ctx, padded)
		if err != nil {
			return nil, fmt.Errorf("features: encode batch %d: %w", b, err)
		}
		if len(rows) != len(padded) {
			return nil, fmt.Errorf("features: batch %d: %d rows for %d images: %w",
				b, len(rows), len(padded), ErrFeatureShape)
		}
		if err = set.append(rows, total); err != nil {
			return nil, fmt.Errorf("features: batch %d: %w", b, err)
		}
	}

	// Stage 4
	if set.Rows != total {
		return nil, fmt.Errorf("features: %d rows for %d samples: %w", set.Rows, total, ErrSampleCount)
	}

	return set, nil
}

// append copies rows into s, fixing Dim on the first row and allocating
// room for total rows.
func (s *Set) append(rows [][]float32, total int) error {
	for _, row := range rows {
		if s.Data == nil {
			if len(row) == 0 {
				return fmt.Errorf("empty feature row: %w", ErrFeatureShape)
			}
			s.Dim = len(row)
			s.Data = make([]float32, 0, total*s.Dim)
		}
		if len(row) != s.Dim {
			return fmt.Errorf("row width %d, want %d: %w", len(row), s.Dim, ErrFeatureShape)
		}
		if s.Rows == total {
			return fmt.Errorf("more than %d rows: %w", total, ErrSampleCount)
		}
		s.Data = append(s.Data, row...)
		s.Rows++
	}

	return nil
}
