package pprof

import (
	"expvar"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/pprof"
)

// AllowFunc decides whether a request may reach the profiling endpoints.
type AllowFunc func(r *http.Request) bool

// LoopbackOnly allows requests coming from the local host.
func LoopbackOnly(r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return false
	}

	ip := net.ParseIP(host)

	return ip != nil && ip.IsLoopback()
}

type Handler struct {
	mux   *http.ServeMux
	allow AllowFunc
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.allow != nil && !h.allow(r) {
		slog.WarnContext(r.Context(), "rejected profiling request", slog.String("remoteAddr", r.RemoteAddr))
		http.NotFound(w, r)
		return
	}

	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string, allow AllowFunc) *Handler {
	mux := &http.ServeMux{}

	mux.HandleFunc(fmt.Sprintf("%s/", prefix), pprof.Index)
	mux.HandleFunc(fmt.Sprintf("%s/cmdline", prefix), pprof.Cmdline)
	mux.HandleFunc(fmt.Sprintf("%s/profile", prefix), pprof.Profile)
	mux.HandleFunc(fmt.Sprintf("%s/symbol", prefix), pprof.Symbol)
	mux.HandleFunc(fmt.Sprintf("%s/trace", prefix), pprof.Trace)
	mux.Handle(fmt.Sprintf("%s/vars", prefix), expvar.Handler())

	mux.HandleFunc(fmt.Sprintf("%s/{name}", prefix), func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		pprof.Handler(name).ServeHTTP(w, r)
	})

	return &Handler{mux: mux, allow: allow}
}

var _ http.Handler = &Handler{}
