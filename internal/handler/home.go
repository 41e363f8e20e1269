package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/lifefinance/navigator/internal/ctxkeys"
	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/ui"
	"github.com/lifefinance/navigator/internal/ui/pages"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type homeHandler struct {
	db       pinger
	personas []model.Persona
}

func NewHomeHandler(db pinger, personas []model.Persona) *homeHandler {
	return &homeHandler{db: db, personas: personas}
}

// Root sends signed-in users to their results and everyone else to login.
func (h *homeHandler) Root(w http.ResponseWriter, r *http.Request) {
	if ctxkeys.User(r.Context()) != nil {
		http.Redirect(w, r, "/results", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *homeHandler) Personas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.personas)
}

func (h *homeHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	err := h.db.PingContext(ctx)
	if err != nil {
		slog.Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *homeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
}
