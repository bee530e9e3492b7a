package captcha

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"time"
)

const remoteTimeout = 30 * time.Second

// Remote delegates recognition to an OCR web service. The service receives
// the challenge as base64 PNG and answers with its reading:
//
//	POST {"image": "<base64>"}  ->  {"text": "A1B2C", "confidence": 0.87}
type Remote struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewRemote creates a driver for the OCR service at endpoint. apiKey may be
// empty for unauthenticated services.
func NewRemote(endpoint, apiKey string) *Remote {
	return &Remote{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: remoteTimeout},
	}
}

// Solve submits the raw challenge and returns the service's cleaned reading.
func (r *Remote) Solve(ctx context.Context, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode challenge: %w", err)
	}

	payload, err := json.Marshal(remoteRequest{
		Image: base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("ocr service HTTP %d: %s", resp.StatusCode, string(data[:min(200, len(data))]))
	}

	var out remoteResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("ocr service: %w", err)
	}
	return clean(out.Text), nil
}

type remoteRequest struct {
	Image string `json:"image"`
}

type remoteResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}
