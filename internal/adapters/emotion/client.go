// Package emotion provides an adapter for a remote facial-emotion service.
// It posts a JPEG to a DeepFace-compatible /analyze endpoint and returns the
// dominant emotion label of the first detected face.
package emotion

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/ewilliams-labs/moodmix/internal/core/ports"
)

const defaultTimeout = 20 * time.Second

// ErrNoFace indicates the service answered without a usable dominant emotion.
var ErrNoFace = errors.New("emotion: no face result")

var _ ports.EmotionEstimator = (*Client)(nil)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type analyzeRequest struct {
	Img              string   `json:"img"`
	Actions          []string `json:"actions"`
	EnforceDetection bool     `json:"enforce_detection"`
	DetectorBackend  string   `json:"detector_backend"`
}

type faceResult struct {
	DominantEmotion string `json:"dominant_emotion"`
}

type analyzeResponse struct {
	Results         []faceResult `json:"results"`
	DominantEmotion string       `json:"dominant_emotion"`
	Error           string       `json:"error,omitempty"`
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// DominantEmotion returns the lower-cased dominant emotion of the first face.
// Detection is not enforced, so a photo without a clear face may still yield a label.
func (c *Client) DominantEmotion(ctx context.Context, jpeg []byte) (string, error) {
	payload := analyzeRequest{
		Img:              "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpeg),
		Actions:          []string{"emotion"},
		EnforceDetection: false,
		DetectorBackend:  "opencv",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("emotion: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("emotion: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("emotion: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("emotion: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("emotion: unexpected status %d", resp.StatusCode)
	}

	label, err := parseDominant(raw)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(label)), nil
}

// parseDominant accepts {"results":[...]}, a bare list of faces, or a single face object.
func parseDominant(raw []byte) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", ErrNoFace
	}

	var faces []faceResult
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &faces); err != nil {
			return "", fmt.Errorf("emotion: decode response: %w", err)
		}
	} else {
		var parsed analyzeResponse
		if err := json.Unmarshal(trimmed, &parsed); err != nil {
			return "", fmt.Errorf("emotion: decode response: %w", err)
		}
		if parsed.Error != "" {
			return "", fmt.Errorf("emotion: %s", parsed.Error)
		}
		faces = parsed.Results
		if len(faces) == 0 && parsed.DominantEmotion != "" {
			faces = []faceResult{{DominantEmotion: parsed.DominantEmotion}}
		}
	}

	if len(faces) == 0 || strings.TrimSpace(faces[0].DominantEmotion) == "" {
		return "", ErrNoFace
	}
	return faces[0].DominantEmotion, nil
}
