package home

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/prometheustube/internal/ui"
	"github.com/bornholm/prometheustube/pkg/log"
	"github.com/pkg/errors"
)

// serveNavbarEvent applies a navbar event and answers with the login overlay
// in its new state, for HTMX to swap in place, along with the avatar swapped
// out of band.
func (h *Handler) serveNavbarEvent(w http.ResponseWriter, r *http.Request) {
	ctx := log.WithAttrs(r.Context(), slog.String("event", r.PathValue("event")))

	event, err := ui.ParseEvent(r.PathValue("event"))
	if err != nil {
		slog.DebugContext(ctx, "unknown navbar event", log.Error(err))
		http.NotFound(w, r)
		return
	}

	// Without HTMX the whole page is rendered in the resulting state
	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, eventRedirectURL(r, event), http.StatusSeeOther)
		return
	}

	navbar := h.newNavigationBar(r)

	if err := navbar.HandleEvent(event); err != nil {
		slog.ErrorContext(ctx, "could not handle navbar event", log.Error(errors.WithStack(err)))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.DebugContext(ctx, "navbar modal state changed", slog.String("state", navbar.ModalState().String()))

	var buff bytes.Buffer
	if err := navbar.RenderOverlay(ctx, &buff); err != nil {
		slog.ErrorContext(ctx, "could not render overlay", log.Error(errors.WithStack(err)))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := navbar.RenderAvatar(ctx, &buff, true); err != nil {
		slog.ErrorContext(ctx, "could not render avatar", log.Error(errors.WithStack(err)))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := buff.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "could not write overlay", log.Error(errors.WithStack(err)))
	}
}

// eventRedirectURL returns the page the event was triggered from, with the
// modal query parameter matching the event outcome. Only same-origin referers
// are followed.
func eventRedirectURL(r *http.Request, event ui.Event) string {
	redirect := &url.URL{Path: "/"}

	if referer, err := url.Parse(r.Referer()); err == nil && isLocalPage(r, referer) {
		redirect.Path = referer.Path
		redirect.RawQuery = referer.RawQuery
	}

	query := redirect.Query()

	if event == ui.EventAvatarClick {
		query.Set(QueryModal, QueryModalLogin)
	} else {
		query.Del(QueryModal)
	}

	redirect.RawQuery = query.Encode()

	return redirect.String()
}

func isLocalPage(r *http.Request, referer *url.URL) bool {
	if referer.Host != "" && referer.Host != r.Host {
		return false
	}

	if referer.Host == "" && referer.Scheme != "" {
		return false
	}

	path := referer.Path

	if strings.HasPrefix(path, componentsPrefix) {
		return false
	}

	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//") && !strings.HasPrefix(path, "/\\")
}
