package home

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/prometheustube/internal/ui"
	"github.com/bornholm/prometheustube/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "index", "PrometheusTube")
}

func (h *Handler) serveForgotPassword(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "forgot-password", "Forgot password")
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, name string, title string) {
	ctx := r.Context()

	navbar, err := ui.RenderHTML(ctx, h.newNavigationBar(r))
	if err != nil {
		slog.ErrorContext(ctx, "could not render navigation bar", log.Error(errors.WithStack(err)))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := PageTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: title,
		},
		Navbar: navbar,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)), slog.String("template", name))
		return
	}
}
