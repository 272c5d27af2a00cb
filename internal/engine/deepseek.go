package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/AlirezaFazli29/ocr-app/internal/scratch"
)

// ResultFile is the markdown file the runner writes into the output
// directory of each inference.
const ResultFile = "result.mmd"

// Runner is the resident model process behind the DeepSeek adapter. The
// model and its GPU memory live in the runner; this interface is what the
// mutual-exclusion and memory-purge policy is tested against.
type Runner interface {
	// Infer renders imagePath to markdown and writes ResultFile into
	// outputDir.
	Infer(ctx context.Context, imagePath, outputDir string) error
	// PurgeCache drops cached accelerator memory. Best effort.
	PurgeCache(ctx context.Context)
	// Ping reports whether the runner is up with the model loaded.
	Ping(ctx context.Context) error
}

// DeepSeek is the process-wide handle for the transformer backend. At most
// one inference executes at a time; callers queue on the gate in arrival
// order. The handle is created once at startup and lives for the process
// lifetime.
type DeepSeek struct {
	runner Runner
	mu     sync.Mutex
}

// LoadDeepSeek verifies the runner is reachable with the model loaded. A
// failure here is fatal for the service; it must not start serving.
func LoadDeepSeek(ctx context.Context, r Runner) (*DeepSeek, error) {
	if err := r.Ping(ctx); err != nil {
		return nil, fmt.Errorf("deepseek runner not ready: %w", err)
	}
	return &DeepSeek{runner: r}, nil
}

// Infer runs one inference against the staged image file and returns the
// produced markdown. Accelerator memory is purged before and after the call
// to bound peak usage across successive requests. The output directory is
// private to the call and removed on every path.
func (d *DeepSeek) Infer(ctx context.Context, imagePath string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.runner.PurgeCache(ctx)
	defer d.runner.PurgeCache(ctx)

	outDir, cleanup, err := scratch.Dir("deepseek-out-")
	if err != nil {
		return "", err
	}
	defer cleanup()

	if err := d.runner.Infer(ctx, imagePath, outDir); err != nil {
		return "", err
	}
	raw, err := os.ReadFile(filepath.Join(outDir, ResultFile))
	if err != nil {
		return "", fmt.Errorf("read inference result: %w", err)
	}
	return string(raw), nil
}
