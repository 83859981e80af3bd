package home

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/campushub/campushub/internal/app/system/apperr"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// Handler serves the bundled single-page frontend from a dist directory.
// When Dist is empty the service runs API-only and the root route answers
// with a plain liveness line instead.
type Handler struct {
	Dist string
	Log  *zap.Logger
}

func NewHandler(dist string, logger *zap.Logger) *Handler {
	return &Handler{
		Dist: dist,
		Log:  logger,
	}
}

// ServeRoot handles GET / and every path no API route claimed. Real files
// under the dist directory are served as-is; anything else falls back to
// index.html so client-side routing keeps working after a refresh.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	if h.Dist == "" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("campushub is running\n"))
		return
	}

	if _, err := os.Stat(h.Dist); err != nil {
		h.Log.Error("home: dist directory unavailable", zap.String("dist", h.Dist), zap.Error(err))
		httpjson.WriteError(w, apperr.New(apperr.Internal, "Static folder not found"))
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/")
	if name != "" {
		// filepath.Clean plus the prefix check keeps ../ escapes inside dist.
		full := filepath.Join(h.Dist, filepath.Clean("/"+name))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			http.ServeFile(w, r, full)
			return
		}
	}

	index := filepath.Join(h.Dist, "index.html")
	if _, err := os.Stat(index); err != nil {
		h.Log.Error("home: index.html missing", zap.String("dist", h.Dist), zap.Error(err))
		httpjson.WriteError(w, apperr.New(apperr.Internal, "Static folder not found"))
		return
	}
	http.ServeFile(w, r, index)
}
