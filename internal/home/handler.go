package home

import (
	"fmt"
	"net/http"

	"github.com/bornholm/prometheustube/internal/ui"
)

const (
	QueryModal      = "modal"
	QueryModalLogin = "login"

	componentsPrefix = "/components/"
)

type Handler struct {
	mux           *http.ServeMux
	navbarOptions []ui.NavigationBarOptionFunc
	// fragments wraps the component fragment routes, i.e. rate limiting.
	fragments func(http.Handler) http.Handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	handler := &Handler{
		mux:           &http.ServeMux{},
		navbarOptions: opts.NavigationBar,
		fragments:     opts.FragmentMiddleware,
	}

	handler.mux.HandleFunc("GET /{$}", handler.serveIndex)
	handler.mux.HandleFunc(fmt.Sprintf("GET %s", ui.DefaultForgotPasswordURL), handler.serveForgotPassword)
	handler.mux.Handle("GET /components/navbar/events/{event}", handler.fragments(http.HandlerFunc(handler.serveNavbarEvent)))

	return handler
}

// newNavigationBar creates the navbar for the current request. Its modal
// state is taken from the request, never from the server.
func (h *Handler) newNavigationBar(r *http.Request) *ui.NavigationBar {
	state := ui.ModalClosed
	if r.URL.Query().Get(QueryModal) == QueryModalLogin {
		state = ui.ModalOpen
	}

	funcs := make([]ui.NavigationBarOptionFunc, 0, len(h.navbarOptions)+2)
	funcs = append(funcs, h.navbarOptions...)
	funcs = append(funcs,
		func(opts *ui.NavigationBarOptions) {
			if opts.Avatar.IsZero() {
				opts.Avatar = ui.GetAction(navbarEventURL(ui.EventAvatarClick), "")
			}

			if opts.Dismiss.IsZero() {
				opts.Dismiss = ui.GetAction(navbarEventURL(ui.EventModalDismiss), "")
			}
		},
		ui.WithModalState(state),
	)

	return ui.NewNavigationBar(funcs...)
}

func navbarEventURL(event ui.Event) string {
	return fmt.Sprintf("%snavbar/events/%s", componentsPrefix, event)
}

var _ http.Handler = &Handler{}
