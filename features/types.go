package features

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedKind indicates a feature kind that cannot be collected.
	ErrUnsupportedKind = errors.New("features: unsupported feature kind")

	// ErrImageShape indicates image data that does not match its shape, or
	// an image larger than the padding target.
	ErrImageShape = errors.New("features: bad image shape")

	// ErrFeatureShape indicates the model returned rows of varying width or
	// a row count different from the batch size.
	ErrFeatureShape = errors.New("features: inconsistent feature shape")

	// ErrSampleCount indicates the batches did not add up to Dataset.Len.
	ErrSampleCount = errors.New("features: sample count mismatch")

	// ErrEmptyDataset indicates a dataset without samples.
	ErrEmptyDataset = errors.New("features: empty dataset")
)

// Kind selects which model output is collected.
type Kind string

const (
	// Encoder collects the encoder output.
	Encoder Kind = "encoder"

	// Logits would collect decoder logits; not supported.
	Logits Kind = "logits"
)

// ParseKind validates s as a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Encoder, Logits:
		return k, nil
	default:
		return "", fmt.Errorf("kind %q: %w", s, ErrUnsupportedKind)
	}
}

// Image is a channels×height×width image stored channel-major
// (Data[(c*Height+h)*Width+w]).
type Image struct {
	Channels, Height, Width int
	Data                    []float32
}

// validate checks len(Data) against the shape.
func (im Image) validate() error {
	if im.Channels <= 0 || im.Height <= 0 || im.Width <= 0 {
		return fmt.Errorf("shape %dx%dx%d: %w", im.Channels, im.Height, im.Width, ErrImageShape)
	}
	if len(im.Data) != im.Channels*im.Height*im.Width {
		return fmt.Errorf("shape %dx%dx%d with %d values: %w",
			im.Channels, im.Height, im.Width, len(im.Data), ErrImageShape)
	}

	return nil
}

// Pad returns im zero-padded to channels×height×width. The original pixels
// keep their coordinates.
func (im Image) Pad(channels, height, width int) (Image, error) {
	if err := im.validate(); err != nil {
		return Image{}, err
	}
	if im.Channels > channels || im.Height > height || im.Width > width {
		return Image{}, fmt.Errorf("pad %dx%dx%d to %dx%dx%d: %w",
			im.Channels, im.Height, im.Width, channels, height, width, ErrImageShape)
	}
	if im.Channels == channels && im.Height == height && im.Width == width {
		return im, nil
	}

	out := Image{Channels: channels, Height: height, Width: width, Data: make([]float32, channels*height*width)}
	var c, h int
	for c = 0; c < im.Channels; c++ {
		for h = 0; h < im.Height; h++ {
			src := im.Data[(c*im.Height+h)*im.Width : (c*im.Height+h+1)*im.Width]
			copy(out.Data[(c*height+h)*width:], src)
		}
	}

	return out, nil
}

// Batch is a group of samples from one dataset split.
type Batch struct {
	Images []Image
	Split  string
}

// Dataset yields batches of images.
type Dataset interface {
	// Len returns the total number of samples.
	Len() int
	// NumBatches returns the number of batches.
	NumBatches() int
	// Batch returns batch i, 0 <= i < NumBatches().
	Batch(ctx context.Context, i int) (Batch, error)
}

// Model encodes images into feature vectors.
type Model interface {
	// Encode returns one flattened feature row per image.
	Encode(ctx context.Context, images []Image) ([][]float32, error)
}
