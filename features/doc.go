// Package features collects encoder feature vectors from an OMR model over
// a dataset and stores them as a 2-D .npy array for clustering.
//
// The model and the dataset are capabilities supplied by the caller:
//
//	type Model interface   { Encode(ctx, []Image) ([][]float32, error) }
//	type Dataset interface { Len() int; NumBatches() int; Batch(ctx, i) (Batch, error) }
//
// Collect runs two passes over the dataset. The first finds the largest
// channel, height and width over all images so every sample can be encoded
// at one shape; the second zero-pads each image to that shape (padding goes
// after the image on every axis), encodes it and stores one flattened row
// per sample.
//
// Only encoder features are supported: logits of an autoregressive decoder
// have no fixed width (ErrUnsupportedKind).
//
// Output files are named "<dataset>-<kind>-<split>.npy".
package features
