// SPDX-License-Identifier: EPL-2.0

package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func staticServer(t *testing.T) http.Handler {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"index.html":        "<html>app</html>",
		"static/js/main.js": "console.log('hi')",
	}
	for name, body := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(filepath.Dir(dir), "secret.txt"), []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.StaticDir = dir
	return newTestServer(cfg, &fakeMixer{}, nil)
}

func TestStatic(t *testing.T) {
	t.Parallel()

	h := staticServer(t)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, "<html>app</html>"},
		{"/static/js/main.js", http.StatusOK, "console.log('hi')"},
		{"/studio/brand-kit", http.StatusOK, "<html>app</html>"},
		{"/static", http.StatusOK, "<html>app</html>"},
		{"/../secret.txt", http.StatusNotFound, `{"error":"Not found."}`},
		{"/api/unknown", http.StatusNotFound, `{"error":"Not found."}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			w := serve(h, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tt.wantBody {
				t.Errorf("body = %q, want %q", got, tt.wantBody)
			}
		})
	}
}

func TestStatic_NoBuild(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.StaticDir = filepath.Join(t.TempDir(), "missing")
	h := newTestServer(cfg, &fakeMixer{}, nil)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestStatic_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := staticServer(t)
	w := serve(h, httptest.NewRequest(http.MethodPost, "/studio", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}
