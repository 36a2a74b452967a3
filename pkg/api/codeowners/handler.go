// Package codeowners provides the HTTP query API over a scanned project.
package codeowners

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ownerscan/codeowners/pkg/codeowners"
)

// Handler answers ownership queries over HTTP (§13.1).
type Handler struct {
	engine *codeowners.Engine
}

// NewHandler wraps an already-scanned Engine.
func NewHandler(engine *codeowners.Engine) *Handler {
	return &Handler{engine: engine}
}

// Routes mounts the handler's endpoints onto r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/owners/file/{path}", h.ownerForFile)
	r.Get("/owners/team/{name}", h.filesForTeam)
	r.Get("/crosscheck", h.crosscheck)
}

func (h *Handler) ownerForFile(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "path")
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}
	owners := h.engine.OwnersForFile(path)

	type owner struct {
		Team    string   `json:"team"`
		Sources []string `json:"sources"`
	}
	out := make([]owner, 0, len(owners))
	for _, fo := range owners {
		var sources []string
		for _, src := range fo.Sources {
			sources = append(sources, src.Kind.String())
		}
		out = append(out, owner{Team: fo.Team.Name, Sources: sources})
	}

	writeJSON(w, http.StatusOK, map[string]any{"path": path, "owners": out})
}

func (h *Handler) filesForTeam(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	files := h.engine.FilesForTeam(name)
	writeJSON(w, http.StatusOK, map[string]any{"team": name, "files": files, "count": len(files)})
}

func (h *Handler) crosscheck(w http.ResponseWriter, r *http.Request) {
	mismatches := h.engine.Crosscheck()
	writeJSON(w, http.StatusOK, map[string]any{"mismatches": mismatches, "count": len(mismatches)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
