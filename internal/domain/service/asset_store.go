package service

import "context"

// AssetStore uploads a raw image to durable object storage and returns its
// permanent URL. This is the only pipeline side effect that cannot be rolled
// back, which is why the pipeline validates and geocodes before storing and
// stores before classifying.
type AssetStore interface {
	// Upload writes the image and returns the permanent URL it will be
	// served from.
	Upload(ctx context.Context, image []byte, mediaType string) (string, error)
}
