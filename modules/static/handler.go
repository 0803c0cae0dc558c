package static

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
)

// EntryFile - SPA 진입 파일
const EntryFile = "index.html"

// Handler serves the single-page app and the assets next to it from one directory.
type Handler struct {
	dir string
}

func NewHandler(dir string) *Handler {
	return &Handler{dir: dir}
}

// RegisterRoutes must run after the API routes; the asset route matches every
// non-API path.
//
// notAPI has to be the first matcher: a successful path match clears a method
// mismatch recorded by an earlier API route, which would turn its 405 into a 404.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.Index).Methods(http.MethodGet, http.MethodHead)
	r.MatcherFunc(notAPI).
		PathPrefix("/").
		Methods(http.MethodGet, http.MethodHead).
		Handler(http.FileServer(assetDir{http.Dir(h.dir)}))
}

// Index - GET /, 진입 파일 반환 (없으면 404)
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.dir, EntryFile)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

func notAPI(r *http.Request, _ *mux.RouteMatch) bool {
	return r.URL.Path != "/api" && !strings.HasPrefix(r.URL.Path, "/api/")
}

// assetDir - 디렉토리 목록은 노출하지 않음
type assetDir struct {
	fs http.FileSystem
}

func (d assetDir) Open(name string) (http.File, error) {
	f, err := d.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
