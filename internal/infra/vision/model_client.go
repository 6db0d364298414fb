// Package vision provides the client for the external image-validity model.
// The model is a small binary classifier served over HTTP that answers
// whether an uploaded photo is a usable house exterior.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"firetrace/config"
	"firetrace/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 15 * time.Second

type modelClient struct {
	httpClient *http.Client
	endpoint   string
	validLabel string
}

// NewModelClient creates an ImageValidator backed by the configured model
// server.
func NewModelClient(cfg *config.Config) (service.ImageValidator, error) {
	if cfg.Vision == nil || cfg.Vision.Endpoint == "" {
		return nil, errors.New("vision model endpoint must be configured")
	}

	timeout := cfg.Vision.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	validLabel := "valid"
	if cfg.Scan != nil && cfg.Scan.ValidLabel != "" {
		validLabel = cfg.Scan.ValidLabel
	}

	return &modelClient{
		endpoint:   cfg.Vision.Endpoint,
		validLabel: validLabel,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type predictRequest struct {
	Image     string `json:"image"` // base64-encoded raw image
	MediaType string `json:"mediaType"`
}

type predictResponse struct {
	Predictions []struct {
		ClassName   string  `json:"className"`
		Probability float64 `json:"probability"`
	} `json:"predictions"`
}

// Validate submits the image and returns the prediction for the usable-photo
// class. When the model reports no usable-photo class at all, the top
// prediction is returned so the pipeline's threshold check fails naturally
// on its label.
func (c *modelClient) Validate(ctx context.Context, image []byte, mediaType string) (*service.Prediction, error) {
	body, err := json.Marshal(predictRequest{
		Image:     base64.StdEncoding.EncodeToString(image),
		MediaType: mediaType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal predict request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create predict request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "image validity request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("image validity model returned status %d: %s", resp.StatusCode, string(payload))
	}

	var parsed predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode predict response")
	}
	if len(parsed.Predictions) == 0 {
		return nil, errors.New("image validity model returned no predictions")
	}

	best := parsed.Predictions[0]
	for _, p := range parsed.Predictions {
		if strings.Contains(strings.ToLower(p.ClassName), strings.ToLower(c.validLabel)) {
			return &service.Prediction{Label: p.ClassName, Confidence: p.Probability}, nil
		}
		if p.Probability > best.Probability {
			best = p
		}
	}

	return &service.Prediction{Label: best.ClassName, Confidence: best.Probability}, nil
}
