package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func newRunnerServer(t *testing.T, inferStatus int, inferBody string) (*httptest.Server, *inferRequest) {
	t.Helper()
	var got inferRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/purge", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/infer", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if inferStatus != http.StatusOK {
			w.WriteHeader(inferStatus)
			w.Write([]byte(inferBody))
			return
		}
		if err := os.WriteFile(filepath.Join(got.OutputPath, ResultFile), []byte("# ok"), 0o600); err != nil {
			t.Errorf("write result: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestHTTPRunnerInferSendsFixedConfig(t *testing.T) {
	srv, got := newRunnerServer(t, http.StatusOK, "")
	runner := NewHTTPRunner(srv.URL, RunnerConfig{BaseSize: 1024, ImageSize: 640, CropMode: true})

	outDir := t.TempDir()
	if err := runner.Infer(context.Background(), "/tmp/page.png", outDir); err != nil {
		t.Fatal(err)
	}
	if got.ImagePath != "/tmp/page.png" || got.OutputPath != outDir {
		t.Errorf("paths not forwarded: %+v", got)
	}
	if got.BaseSize != 1024 || got.ImageSize != 640 || !got.CropMode {
		t.Errorf("fixed config not forwarded: %+v", got)
	}
	if _, err := os.Stat(filepath.Join(outDir, ResultFile)); err != nil {
		t.Errorf("result file missing: %v", err)
	}
}

func TestHTTPRunnerInferSurfacesRunnerError(t *testing.T) {
	srv, _ := newRunnerServer(t, http.StatusInternalServerError, `{"error":"model crashed"}`)
	runner := NewHTTPRunner(srv.URL, RunnerConfig{})

	err := runner.Infer(context.Background(), "/tmp/page.png", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "model crashed") {
		t.Fatalf("want runner error text surfaced, got %v", err)
	}
}

func TestHTTPRunnerInferStatusOnlyError(t *testing.T) {
	srv, _ := newRunnerServer(t, http.StatusServiceUnavailable, "busy")
	runner := NewHTTPRunner(srv.URL, RunnerConfig{})

	err := runner.Infer(context.Background(), "/tmp/page.png", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Fatalf("want status in error, got %v", err)
	}
}

func TestHTTPRunnerPing(t *testing.T) {
	srv, _ := newRunnerServer(t, http.StatusOK, "")
	runner := NewHTTPRunner(srv.URL, RunnerConfig{})
	if err := runner.Ping(context.Background()); err != nil {
		t.Fatal(err)
	}

	runner = NewHTTPRunner("http://127.0.0.1:1", RunnerConfig{})
	if err := runner.Ping(context.Background()); err == nil {
		t.Fatal("expected ping failure against closed port")
	}
}
