// Package service defines interfaces for domain services provided by the
// infrastructure layer, mostly clients for external collaborators.
package service

import "context"

// Prediction is the outcome of the external binary image classifier: the
// class label it matched and its confidence in [0, 1].
type Prediction struct {
	Label      string
	Confidence float64
}

// ImageValidator answers "is this a usable house-exterior photo?" by calling
// an external image classification model. The confidence threshold is
// applied by the pipeline, not here.
type ImageValidator interface {
	// Validate classifies the raw image and returns the prediction for the
	// usable-photo class.
	Validate(ctx context.Context, image []byte, mediaType string) (*Prediction, error)
}
