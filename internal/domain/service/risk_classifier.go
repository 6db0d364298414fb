package service

import "context"

// RiskClassifier sends a stored image URL to a multimodal vision model with
// a fixed rubric prompt. The model is an opaque external classifier; it
// returns free text that the pipeline parses for a risk keyword.
type RiskClassifier interface {
	// Classify analyzes the image at imageURL against the rubric prompt and
	// returns the model's raw textual response.
	Classify(ctx context.Context, imageURL string, prompt string) (string, error)
}
