package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// RunnerConfig is the fixed inference configuration sent with every request.
type RunnerConfig struct {
	BaseSize  int
	ImageSize int
	CropMode  bool
}

// HTTPRunner talks to the resident DeepSeek runner over its localhost API.
// The runner holds the model on the accelerator; this client only stages
// requests against it. The HTTP client carries no timeout: an inference runs
// to completion or failure, and the runner is trusted to fail eventually.
type HTTPRunner struct {
	baseURL string
	cfg     RunnerConfig
	client  *http.Client
}

func NewHTTPRunner(baseURL string, cfg RunnerConfig) *HTTPRunner {
	return &HTTPRunner{
		baseURL: baseURL,
		cfg:     cfg,
		client:  &http.Client{},
	}
}

type inferRequest struct {
	ImagePath  string `json:"image_path"`
	OutputPath string `json:"output_path"`
	BaseSize   int    `json:"base_size"`
	ImageSize  int    `json:"image_size"`
	CropMode   bool   `json:"crop_mode"`
}

type runnerError struct {
	Error string `json:"error"`
}

// Infer asks the runner to render imagePath into outputDir. The runner
// writes ResultFile there on success.
func (r *HTTPRunner) Infer(ctx context.Context, imagePath, outputDir string) error {
	payload, err := json.Marshal(inferRequest{
		ImagePath:  imagePath,
		OutputPath: outputDir,
		BaseSize:   r.cfg.BaseSize,
		ImageSize:  r.cfg.ImageSize,
		CropMode:   r.cfg.CropMode,
	})
	if err != nil {
		return fmt.Errorf("encode inference request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/infer", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("deepseek runner: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var re runnerError
		if json.Unmarshal(body, &re) == nil && re.Error != "" {
			return fmt.Errorf("deepseek runner: %s", re.Error)
		}
		return fmt.Errorf("deepseek runner returned status %d", resp.StatusCode)
	}
	return nil
}

// PurgeCache asks the runner to drop cached accelerator memory. Failures are
// ignored; the next inference purges again.
func (r *HTTPRunner) PurgeCache(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/purge", nil)
	if err != nil {
		return
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}

// Ping checks the runner health endpoint.
func (r *HTTPRunner) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("runner health returned status %d", resp.StatusCode)
	}
	return nil
}
