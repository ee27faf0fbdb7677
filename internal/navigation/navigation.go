// Package navigation maps request paths to the pages of the browser shell.
package navigation

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/mood-recall/internal/logger"
)

// HomePath is where unknown paths are sent.
const HomePath = "/"

// Page is one entry of the bottom navigation bar.
// swagger:model Page
type Page struct {
	Path    string `json:"path"`
	Label   string `json:"label"`
	Primary bool   `json:"primary,omitempty"`
	Active  bool   `json:"active"`
}

var pages = []Page{
	{Path: "/", Label: "Home"},
	{Path: "/profile", Label: "Profile"},
	{Path: "/new-entry", Label: "New Entry", Primary: true},
	{Path: "/ai-insights", Label: "AI Insights"},
	{Path: "/settings", Label: "Settings"},
}

// Pages returns the navigation bar in display order.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// Resolve returns the page for path. Unknown paths resolve to the home page with ok=false.
func Resolve(path string) (Page, bool) {
	if path != HomePath {
		path = strings.TrimSuffix(path, "/")
	}
	for _, p := range pages {
		if p.Path == path {
			return p, true
		}
	}
	return pages[0], false
}

// Menu returns the navigation bar with the page for path marked active.
func Menu(path string) []Page {
	active, _ := Resolve(path)
	out := Pages()
	for i := range out {
		out[i].Active = out[i].Path == active.Path
	}
	return out
}

// Shell serves index.html and the assets of the browser shell from a static directory.
type Shell struct {
	staticDir string
}

// NewShell creates a Shell over staticDir.
func NewShell(staticDir string) *Shell {
	return &Shell{staticDir: staticDir}
}

// Register mounts the page routes, the static assets and the fallback on r.
func (s *Shell) Register(r chi.Router) {
	fileServer := http.FileServer(http.Dir(s.staticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	for _, p := range pages {
		r.Get(p.Path, s.serveIndex)
	}

	r.NotFound(s.notFound)
}

func (s *Shell) serveIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.staticDir, "index.html"))
}

func (s *Shell) notFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
		return
	}

	logger.Log.Debugw("unknown page, redirecting home", "path", r.URL.Path)
	http.Redirect(w, r, HomePath, http.StatusFound)
}

// NewMenuHandler returns an HTTP handler for the navigation bar.
// @Summary Navigation bar
// @Description Return the pages of the navigation bar with the page for the given path marked active. Unknown paths mark home.
// @Tags navigation
// @Produce json
// @Param path query string false "Current page path"
// @Success 200 {array} navigation.Page "Navigation bar"
// @Router /navigation [get]
func NewMenuHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Menu(r.URL.Query().Get("path")))
	}
}
